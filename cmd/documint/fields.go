package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

var fieldsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields <template.docx>",
	Short: "List the placeholder fields discovered in a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runFields,
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "emit the field list as JSON")
}

func runFields(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}

	insp, err := orch.Inspect(cmd.Context(), docxtpl.SourceFromFile(args[0]))
	if err != nil {
		return err
	}
	if errors.Is(insp.Warning, docxtpl.ErrNoPlaceholders) {
		fmt.Fprintln(os.Stderr, "warning: template contains no placeholders")
	}

	if fieldsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(insp.Model.Fields)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tEDITABLE\tNOTE")
	for _, f := range insp.Model.Fields {
		editable := "yes"
		if f.ReadOnly {
			editable = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Kind, editable, f.Note)
	}
	return tw.Flush()
}
