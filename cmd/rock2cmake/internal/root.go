package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rock2cmake",
	Short: "rock2cmake generates CMake scripts from package build manifests",
	Long: `rock2cmake reads a declarative package build manifest (platform support,
build variables, script and native module targets) and emits a CMake script
that builds and installs the package.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
