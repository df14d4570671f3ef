package cli

import (
	"sort"
	"strings"

	"github.com/arthur-debert/docmap/pkg/render"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		source   templateSource
		varsPath string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: MsgRenderShort,
		Example: `  docmap render --template overview.md --vars symbol.yaml
  docmap render --catalog templates.toml --id 3 --vars symbol.yaml --strict
  docmap render --template panel.xml --format storage --vars symbol.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := source.load(app.Config)
			if err != nil {
				return err
			}

			vars, err := loadVars(varsPath)
			if err != nil {
				return err
			}

			var opts []render.Option
			if tmpl.ID != 0 {
				opts = append(opts, render.WithTemplateID(tmpl.ID))
			}
			out, err := render.NewRenderer().Render(tmpl.Body, tmpl.Format, vars, app.Config.Render.Strict, opts...)
			if err != nil {
				return err
			}
			return app.Printer(cmd.OutOrStdout()).Output(out, tmpl.Format, pretty)
		},
	}

	addTemplateFlags(cmd, &source)
	cmd.Flags().StringVar(&varsPath, "vars", "", MsgFlagVars)
	cmd.Flags().String("format", "", MsgFlagFormat)
	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	cmd.Flags().BoolVar(&pretty, "pretty", false, MsgFlagPretty)
	return cmd
}

func newVarsCmd(app *App) *cobra.Command {
	var (
		source   templateSource
		skeleton bool
	)

	cmd := &cobra.Command{
		Use:   "vars",
		Short: MsgVarsShort,
		Example: `  docmap vars --template overview.md
  docmap vars --catalog templates.toml --id 3 --yaml > symbol.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := source.load(app.Config)
			if err != nil {
				return err
			}

			vars := render.ExtractVariables(tmpl.Body)
			if !skeleton {
				return app.Printer(cmd.OutOrStdout()).Variables(vars)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(variablesSkeleton(vars)); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	addTemplateFlags(cmd, &source)
	cmd.Flags().BoolVar(&skeleton, "yaml", false, MsgFlagYAML)
	return cmd
}

func addTemplateFlags(cmd *cobra.Command, source *templateSource) {
	cmd.Flags().StringVarP(&source.file, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVarP(&source.catalog, "catalog", "c", "", MsgFlagCatalog)
	cmd.Flags().Int64Var(&source.id, "id", 0, MsgFlagID)
}

// variablesSkeleton nests placeholder paths into a YAML document whose
// leaves are the variable descriptions. A path that is both a leaf and a
// parent keeps the parent.
func variablesSkeleton(vars map[string]render.VariableInfo) *yaml.Node {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		node := root
		segments := strings.Split(name, ".")
		for i, segment := range segments {
			last := i == len(segments)-1
			child := mappingChild(node, segment)
			if child == nil {
				child = &yaml.Node{Kind: yaml.MappingNode}
				if last {
					child = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ""}
					child.LineComment = "# " + vars[name].Description
				}
				node.Content = append(node.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: segment}, child)
			}
			if child.Kind != yaml.MappingNode {
				if last {
					break
				}
				// An earlier leaf becomes a parent
				*child = yaml.Node{Kind: yaml.MappingNode}
			}
			node = child
		}
	}
	return root
}

func mappingChild(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
