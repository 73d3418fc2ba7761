package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"calcbox/internal/app"
)

// version is set at build time with -ldflags "-X calcbox/cmd/calcbox/commands.version=...".
var version = "dev"

var (
	home       string
	configPath string
	locale     string
	serverURL  string
	jsonOut    bool

	wire   *app.Wire
	appCtx *app.App
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeWire()
	return newRootCmd().ExecuteContext(ctx)
}

func closeWire() {
	if wire != nil {
		_ = wire.Close()
		wire = nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calcbox",
		Short:        "Calculators and converters for the command line",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := home
			if dir == "" {
				userHome, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				dir = filepath.Join(userHome, ".calcbox")
			}

			cfg, err := app.LoadConfig(configPath, dir, os.Getenv)
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if locale != "" {
				cfg.Locale = locale
			}
			if serverURL != "" {
				cfg.RemoteURL = serverURL
			}

			wire, err = app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = wire.App()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.calcbox)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CALCBOX_CONFIG or <home>/config.yaml)")
	root.PersistentFlags().StringVar(&locale, "locale", "", "display locale, e.g. en or de")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "run against a calcbox server (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print the full outcome as JSON")

	root.AddCommand(
		// converters
		convertCmd(), tempCmd(), baseCmd(), sciCmd(), romanCmd(), wordsCmd(),
		// date and time
		dateCmd(), countdownCmd(),
		// math
		gcdCmd(), primeCmd(), factorialCmd(), statsCmd(), quadraticCmd(), triangleCmd(),
		// finance and health
		emiCmd(), bmiCmd(), bmrCmd(), bodyfatCmd(), idealweightCmd(),
		textCmd(),
		// catalog, history and surfaces
		toolsCmd(), runCmd(), historyCmd(), prefsCmd(), replCmd(), serveCmd(), mcpCmd(),
	)
	return root
}
