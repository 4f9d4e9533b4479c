package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kobzarvs/qvi/internal/app"
	"github.com/kobzarvs/qvi/internal/logger"
)

// Version info (set by ldflags)
var version = "dev"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "qvi <file>",
		Short:         "Modal terminal text editor",
		Long:          "qvi opens one file for editing. Set QVI_DEBUG=1 to log at debug level.",
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(logger.DebugFromEnv()); err != nil {
				fmt.Fprintln(os.Stderr, "qvi: logging disabled:", err)
			}
			defer logger.Close()
			return app.New(args[0]).Run()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qvi:", err)
		os.Exit(1)
	}
}
