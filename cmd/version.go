package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags on release builds; source builds fall
// back to module info from the build.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the verbo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("verbo", resolveVersion())
	},
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
