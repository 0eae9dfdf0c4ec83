package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mirsardor-ktng/documint/pkg/conventions"
	"github.com/mirsardor-ktng/documint/pkg/orchestrator"
)

var (
	verbose     bool
	profilePath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "documint",
	Short: "Fill .docx templates through auto-discovered form fields",
	Long: `documint inspects .docx templates for {placeholder} tokens, classifies
them into editable and derived fields, and fills the document with values
you supply. Derived fields (amounts in words, genitive names) are computed
automatically from their base fields.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "path to a YAML naming conventions profile")

	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
}

// newOrchestrator builds the pipeline, applying the profile flag when set.
func newOrchestrator() (*orchestrator.Orchestrator, error) {
	var opts []orchestrator.Option
	if profilePath != "" {
		profile, err := conventions.Load(profilePath)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		opts = append(opts, orchestrator.WithProfile(profile))
	}
	return orchestrator.New(opts...), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
