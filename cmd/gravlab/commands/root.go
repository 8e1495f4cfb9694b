package commands

import (
	"os"

	"github.com/spf13/cobra"

	"gravlab/internal/app"
	"gravlab/internal/config"
	"gravlab/internal/logging"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	outDir   string
	logLevel string
	quiet    bool
	appCtx   *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "gravlab",
		Short:         "Massive-graviton toolkit: dRGT expansion and GW dispersion",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadOrDefault()
			if outDir != "" {
				cfg.Output.Dir = outDir
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			log := logging.NewNop()
			if !quiet {
				var err error
				log, err = logging.New(logging.Config{
					Level:       cfg.Logging.Level,
					Development: cfg.Logging.Development,
				})
				if err != nil {
					return err
				}
			}

			if err := os.MkdirAll(cfg.Output.Dir, 0o700); err != nil {
				return err
			}

			appCtx = app.NewWire(app.Config{
				OutDir:    cfg.Output.Dir,
				FigureDPI: cfg.Output.FigureDPI,
				Version:   Version,
				Log:       log,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&outDir, "out", "", "artifact directory (default \".\", env GRAVLAB_OUT_DIR)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env GRAVLAB_LOG_LEVEL)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable logging")

	root.AddCommand(deriveCmd(), deriveFullCmd(), dispersionCmd())
	return root.Execute()
}
