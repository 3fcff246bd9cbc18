package main

import (
	"maps"

	"github.com/spf13/cobra"
)

// flagEnv maps command line flags to the variables they override.
var flagEnv = []struct {
	name, env, usage string
}{
	{"format", "ROWCHECK_FORMAT", "report format: text or json"},
	{"comma", "ROWCHECK_COMMA", "field delimiter"},
	{"null", "ROWCHECK_NULL_VALUE", "cell text read as null"},
	{"start", "VALIDATION_ROW_INDEX_STARTS_AT", "number of the first data row"},
	{"lang", "VALIDATION_LANGUAGE", "message language, e.g. fr"},
	{"locale", "VALIDATION_LOCALE", "number format of decimal values, e.g. fr-FR"},
}

func newRootCmd(environ map[string]string, code *int) *cobra.Command {
	values := make(map[string]*string, len(flagEnv))

	cmd := &cobra.Command{
		Use:   "rowcheck [file.csv]",
		Short: "Validate a CSV price list",
		Long: `rowcheck reads a price list export (Key, DateTimeValue, DecimalValue,
Status, Code) and reports every rule failure, one line per failing field.

The file is read from stdin when no argument or "-" is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := maps.Clone(environ)
			if env == nil {
				env = make(map[string]string)
			}
			for _, f := range flagEnv {
				if cmd.Flags().Changed(f.name) {
					env[f.env] = *values[f.name]
				}
			}

			s, err := loadSettings(env)
			if err != nil {
				return err
			}

			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			*code = execute(cmd.Context(), s, path, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}

	for _, f := range flagEnv {
		values[f.name] = cmd.Flags().String(f.name, "", f.usage+" (env "+f.env+")")
	}
	return cmd
}
