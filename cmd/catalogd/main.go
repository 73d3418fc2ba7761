package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"calcbox/internal/app"
)

var version = "dev"

func main() {
	var configPath, home string

	cmd := &cobra.Command{
		Use:          "catalogd",
		Short:        "Serve the calcbox catalog and calculators over HTTP",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = os.Getenv("CALCBOX_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".calcbox")
			}
			cfg, err := app.LoadConfig(configPath, home, os.Getenv)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			defer w.Close()
			return w.Serve(cmd.Context(), version)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $CALCBOX_CONFIG or <home>/config.yaml)")
	cmd.Flags().StringVar(&home, "home", "", "data dir (default $CALCBOX_HOME or ~/.calcbox)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Printf("catalogd: %v", err)
		stop()
		os.Exit(1)
	}
}
