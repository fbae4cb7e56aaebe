package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"qljs/internal/config"
	"qljs/internal/globals"
)

// printConfigPayload is print-config's JSON output shape: the resolved
// VarOptions plus a count of the globals in scope, without dumping every
// global name (the base strict-mode set alone is large, and per-file
// config overrides rarely add more than a handful on top of it).
type printConfigPayload struct {
	ConfigFile             string `json:"config_file,omitempty"`
	TypeScript             bool   `json:"typescript"`
	JSX                    bool   `json:"jsx"`
	AllowDeclareClass      bool   `json:"allow_declare_class"`
	LegacyFunctionHoisting bool   `json:"legacy_function_hoisting"`
	GlobalCount            int    `json:"global_count"`
}

var printConfigCmd = &cobra.Command{
	Use:   "print-config <file>",
	Short: "Resolve and print the configuration that applies to a file path",
	Long: `print-config walks the ancestor directories of <file> for
quick-lint-js.config (§6.4) the same way the batch lint run's Configuration
Loader does, and prints the resulting VarOptions and global count as JSON —
useful for confirming which config a given file actually picks up.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader(globals.StrictMode(), nil)
		cfg, err := loader.Load(args[0])
		if err != nil {
			return err
		}

		payload := printConfigPayload{
			TypeScript:             cfg.VarOptions.TypeScript,
			JSX:                    cfg.VarOptions.JSX,
			AllowDeclareClass:      cfg.VarOptions.AllowDeclareClass,
			LegacyFunctionHoisting: cfg.VarOptions.LegacyFunctionHoisting,
			GlobalCount:            cfg.Globals.Len(),
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	},
}
