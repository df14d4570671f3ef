package cli

import (
	"fmt"

	"github.com/arthur-debert/docmap/pkg/catalog"
	"github.com/arthur-debert/docmap/pkg/engine"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/rules"
	"github.com/spf13/cobra"
)

func newMatchCmd(app *App) *cobra.Command {
	var (
		rulesPath string
		group     bool
	)

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: MsgMatchShort,
		Example: `  docmap match src/core/db.py --rules rules.toml
  docmap match src/core/db.py --rules rules.toml --group`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.match")

			set, matcher, err := loadRules(rulesPath, app.Config)
			if err != nil {
				return err
			}

			matches := rules.NewResolver(matcher).MatchRules(args[0], set)
			if group {
				matches = rules.ResolveGroup(matches)
				rules.SortMatches(matches)
			}

			logger.Info().
				Str("path", args[0]).
				Int("matches", len(matches)).
				Msg("Matched rules")

			return app.Printer(cmd.OutOrStdout()).Matches(args[0], matches)
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", MsgFlagRules)
	cmd.Flags().BoolVar(&group, "group", false, MsgFlagGroup)
	return cmd
}

func newResolveCmd(app *App) *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:     "resolve <path>",
		Short:   MsgResolveShort,
		Example: `  docmap resolve src/core/db.py --rules rules.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, matcher, err := loadRules(rulesPath, app.Config)
			if err != nil {
				return err
			}

			rule, err := rules.NewResolver(matcher).Resolve(args[0], set)
			if err != nil {
				return err
			}
			return app.Printer(cmd.OutOrStdout()).Target(args[0], rule)
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", MsgFlagRules)
	return cmd
}

func newProcessCmd(app *App) *cobra.Command {
	var (
		rulesPath   string
		catalogPath string
		varsPath    string
		group       bool
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "process <path>",
		Short: MsgProcessShort,
		Example: `  docmap process src/core/db.py --rules rules.toml --catalog templates.toml --vars symbol.yaml
  docmap process src/core/db.py -r rules.toml -c templates.toml --group --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config

			set, matcher, err := loadRules(rulesPath, cfg)
			if err != nil {
				return err
			}

			cat := catalog.New(cfg.Render.DefaultFormat())
			if catalogPath != "" {
				cat, err = catalog.LoadFile(catalogPath, cfg.Render.DefaultFormat())
				if err != nil {
					return err
				}
			}

			vars, err := loadVars(varsPath)
			if err != nil {
				return err
			}

			eng := engine.New(cat, engine.WithResolver(rules.NewResolver(matcher)))
			req := engine.Request{
				Path:    args[0],
				Rules:   set,
				Context: vars,
				Strict:  cfg.Render.Strict,
			}

			var results []engine.Result
			if group {
				results, err = eng.ProcessGroup(req)
			} else {
				var result engine.Result
				result, err = eng.Process(req)
				results = []engine.Result{result}
			}
			if err != nil {
				return err
			}

			printer := app.Printer(cmd.OutOrStdout())
			if group {
				if err := printer.Title(fmt.Sprintf(MsgGroupTitle, results[0].Rule.Priority, len(results))); err != nil {
					return err
				}
			}
			for _, result := range results {
				if err := printer.Target(args[0], result.Rule); err != nil {
					return err
				}
				if !result.Rendered {
					continue
				}
				if err := printer.Output(result.Output, result.Template.Format, pretty); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", MsgFlagRules)
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", MsgFlagCatalog)
	cmd.Flags().StringVar(&varsPath, "vars", "", MsgFlagVars)
	cmd.Flags().BoolVar(&group, "group", false, MsgFlagGroup)
	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	cmd.Flags().String("format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&pretty, "pretty", false, MsgFlagPretty)
	return cmd
}
