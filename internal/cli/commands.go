package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/docmap/internal/version"
	"github.com/arthur-debert/docmap/pkg/config"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/style"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// App holds state shared by all commands of one invocation.
type App struct {
	verbosity  int
	configPath string
	color      string

	// Config is loaded before any subcommand runs
	Config *config.Config
}

// Printer returns a printer for w, styled when w is a terminal.
func (a *App) Printer(w io.Writer) *style.Printer {
	return style.NewPrinter(w, a.mode(w))
}

// mode resolves the --color flag against w.
func (a *App) mode(w io.Writer) style.Mode {
	mode, err := style.ParseMode(a.color)
	if err != nil {
		mode = style.ModeAuto
	}
	if f, ok := w.(*os.File); ok {
		mode = mode.Resolve(f)
	}
	return mode
}

// NewRootCmd creates and returns the root command
func NewRootCmd() (*cobra.Command, *App) {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "docmap",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Keep config loading quiet until the real level is known
			zerolog.SetGlobalLevel(logging.LevelForVerbosity(app.verbosity))

			cfg, err := config.Load(config.Options{
				Path:      app.configPath,
				Overrides: flagOverrides(cmd, app),
			})
			if err != nil {
				return err
			}
			app.Config = cfg

			style.ConfigureOutput(app.mode(cmd.OutOrStdout()))
			logging.SetupLogger(cfg.Logging.Verbosity)
			log.Debug().
				Str("command", cmd.Name()).
				Str("config", cfg.Source).
				Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&app.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&app.color, "color", "auto", MsgFlagColor)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMatchCmd(app))
	rootCmd.AddCommand(newResolveCmd(app))
	rootCmd.AddCommand(newRenderCmd(app))
	rootCmd.AddCommand(newProcessCmd(app))
	rootCmd.AddCommand(newVarsCmd(app))

	return rootCmd, app
}

// flagOverrides turns explicitly set flags into config overrides.
func flagOverrides(cmd *cobra.Command, app *App) map[string]interface{} {
	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("verbose") {
		overrides["logging.verbosity"] = app.verbosity
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		overrides["render.strict"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides["render.format"] = f.Value.String()
	}
	return overrides
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "docmap version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
