package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"agrow/config"
	"agrow/pkg/logging"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var cfg config.AppConfig
	var logger *slog.Logger

	root := &cobra.Command{
		Use:           "agrow",
		Short:         "AGROW Lens leaf diagnosis service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			logger = logging.Init(cfg.LogFormat, cfg.LogLevel)
		},
	}

	serve := serveCommand(&cfg, &logger)
	root.RunE = serve.RunE
	root.AddCommand(serve, kbCommand(&cfg), modelsCommand(&cfg))
	return root
}
