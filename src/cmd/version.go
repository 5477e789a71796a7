package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/apimgr/searchconv/src/engines"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := current.out
		if p.format == "json" {
			return p.JSON(map[string]any{
				"name":    ProjectName,
				"version": Version,
				"commit":  CommitID,
				"date":    BuildDate,
				"go":      runtime.Version(),
				"engines": engines.Count(),
			})
		}

		p.Printf("%s v%s (%s) built %s\n", getBinaryName(), Version, CommitID, BuildDate)
		p.Printf("\nBuild Info:\n")
		p.Printf("  Go: %s\n", runtime.Version())
		p.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		p.Printf("  Engines: %d\n", engines.Count())
		return nil
	},
}
