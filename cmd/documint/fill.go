package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

var (
	fillOutput string
	fillValues []string
	fillData   string
)

var fillCmd = &cobra.Command{
	Use:   "fill <template.docx>",
	Short: "Fill a template with values supplied on the command line",
	Long: `Fill substitutes the given field values into the template. Derived
fields are recomputed from their bases, so passing an amount also fills its
words companion.

Example:
  documint fill contract.docx --set total_am=1500 --set director_name="Иванов И. И." -o filled.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVarP(&fillOutput, "output", "o", "", "output path (default generated_<template>.docx)")
	fillCmd.Flags().StringArrayVar(&fillValues, "set", nil, "field value in name=value form, repeatable")
	fillCmd.Flags().StringVar(&fillData, "data", "", "yaml file with field values, overridden by --set")
}

func loadDataFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	values := make(map[string]string)
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return values, nil
}

func runFill(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}

	values := make(map[string]string, len(fillValues))
	if fillData != "" {
		values, err = loadDataFile(fillData)
		if err != nil {
			return err
		}
	}
	for _, pair := range fillValues {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --set value %q, want name=value", pair)
		}
		values[name] = value
	}

	source := docxtpl.SourceFromFile(args[0])
	insp, err := orch.Inspect(cmd.Context(), source)
	if err != nil {
		return err
	}
	insp.State.Seed(values)

	if missing := insp.State.Missing(); len(missing) > 0 {
		logger.Warn("fields left empty", zap.Strings("fields", missing))
	}

	out, err := orch.Fill(cmd.Context(), insp.Document, insp.State)
	if err != nil {
		return err
	}

	output := fillOutput
	if output == "" {
		output = insp.Document.OutputName()
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Document written to %s\n", output)
	return nil
}
