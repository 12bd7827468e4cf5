package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rockbind/rock2cmake/pkgs/cmakegen"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List recognized platform identifiers",
	Long:  `Platforms lists every platform identifier a manifest may use, with the CMake condition each one translates to.`,
	Args:  cobra.NoArgs,
	Run:   runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) {
	for _, id := range cmakegen.Platforms() {
		cond, _ := cmakegen.Translate(id)
		fmt.Printf("%-10s %s\n", id, cond)
	}
}
