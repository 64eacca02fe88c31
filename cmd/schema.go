package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/inline"
	"github.com/vscope-cli/vscope/preview"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("preview", "p", false, "Generate the JSON Schema of preview output")
	schemaCmd.Flags().BoolP("departments", "d", false, "Generate the JSON Schema of the department tree")
	schemaCmd.MarkFlagsMutuallyExclusive("preview", "departments")
}

// schemaCmd generates JSON schemas for structured outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "group", "output", "view", "field", "action", "node":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("preview")):
			schema = reflector.Reflect(&preview.View{})
		case lo.Must(cmd.Flags().GetBool("departments")):
			schema = reflector.Reflect(&catalog.Node{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
