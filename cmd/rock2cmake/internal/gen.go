package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/rockbind/rock2cmake/internal/manifest"
	"github.com/rockbind/rock2cmake/pkgs/cmakegen"
)

var genOutput string
var genVerbose bool

var genCmd = &cobra.Command{
	Use:   "gen <manifest>",
	Short: "Generate a CMake script from a build manifest",
	Long: `Gen reads the given build manifest and writes the corresponding CMake
script. Configuration problems (unknown platforms, unknown module types) do
not fail generation; they become message(FATAL_ERROR) directives so the
problem surfaces when the script is actually run.`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output path ('-' for stdout, default CMakeLists.txt next to the manifest)")
	genCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genVerbose {
		log.SetOutputLevel(log.Ldebug)
	}
	manifestPath := args[0]

	f, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	cfg := cmakegen.New(f.Package.Name)
	manifest.Apply(f, filepath.Dir(manifestPath), cfg)
	for _, msg := range cfg.Errors() {
		log.Debugf("deferred to generated script: %s", msg)
	}

	script := cfg.Render()
	out := outputPath(manifestPath, genOutput)
	if out == "-" {
		fmt.Print(script)
		return nil
	}
	if err := os.WriteFile(out, []byte(script), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Debugf("wrote %s for package %s", out, f.Package.Name)
	return nil
}

// outputPath resolves the destination for the generated script. An empty
// flag places CMakeLists.txt next to the manifest; "-" selects stdout.
func outputPath(manifestPath, flag string) string {
	if flag != "" {
		return flag
	}
	return filepath.Join(filepath.Dir(manifestPath), "CMakeLists.txt")
}
