package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samajseva/trust-console/modules/member/importer"
)

func newTemplateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the import template spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(output) == "" {
				return withCode(exitUsage, fmt.Errorf("--output is required"))
			}
			data, err := importer.Template()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return withCode(exitUsage, fmt.Errorf("write %s: %w", output, err))
			}
			return writeJSONLine(map[string]string{"status": "ok", "output": output})
		},
	}

	cmd.Flags().StringVar(&output, "output", "member-import-template.xlsx", "Output path for the template")
	return cmd
}
