package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

var promptOutput string

var promptCmd = &cobra.Command{
	Use:   "prompt <template.docx>",
	Short: "Fill a template interactively, field by field",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrompt,
}

func init() {
	promptCmd.Flags().StringVarP(&promptOutput, "output", "o", "", "output path (default generated_<template>.docx)")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}

	insp, err := orch.Inspect(cmd.Context(), docxtpl.SourceFromFile(args[0]))
	if err != nil {
		return err
	}
	if !insp.Model.Editable() {
		return errors.New("template has no editable fields, nothing to prompt for")
	}

	for _, f := range insp.Model.Fields {
		if f.ReadOnly {
			continue
		}
		var answer string
		prompt := &survey.Input{Message: f.Label + ":"}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}
		if err := insp.State.Set(f.Name, answer); err != nil {
			return err
		}
		// Show derived companions as soon as their base is known.
		for _, d := range insp.Model.Fields {
			if d.Base == f.Name {
				if v, ok := insp.State.Get(d.Name); ok && v != "" {
					fmt.Printf("  %s = %s\n", d.Name, v)
				}
			}
		}
	}

	out, err := orch.Fill(cmd.Context(), insp.Document, insp.State)
	if err != nil {
		return err
	}

	output := promptOutput
	if output == "" {
		output = insp.Document.OutputName()
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Document written to %s\n", output)
	return nil
}
