package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/wirekit"
)

func schemasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the type id of every schema in the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, id := range a.reg.TypeIDs() {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}

func jsonSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "jsonschema TYPE_ID",
		Short: "Print the JSON Schema of a registered type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.reg.JSONSchema(args[0])
			if err != nil {
				return err
			}
			var data []byte
			if a.format == wirekit.FormatYAML {
				raw, err := json.Marshal(s)
				if err != nil {
					return err
				}
				// JSON is a YAML subset.
				var v any
				if err := yaml.Unmarshal(raw, &v); err != nil {
					return err
				}
				data, err = yaml.Marshal(v)
				if err != nil {
					return err
				}
			} else {
				data, err = json.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				data = append(data, '\n')
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
