package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display the version, build time, git commit, and runtime information of ringtail",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ringtail\n")
			fmt.Fprintf(out, "  Version:    %s\n", version)
			fmt.Fprintf(out, "  Build Time: %s\n", buildTime)
			fmt.Fprintf(out, "  Git Commit: %s\n", gitCommit)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
