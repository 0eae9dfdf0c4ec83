package model

import (
	internalfields "github.com/mirsardor-ktng/documint/internal/fields"
	"github.com/mirsardor-ktng/documint/pkg/conventions"
)

// Builder converts the scanner's ordered placeholder list into a form model.
type Builder interface {
	Build(template string, tokens []string) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	profile *conventions.Profile
	labeler func(string) string
}

// WithProfile overrides the naming conventions used for classification.
func WithProfile(profile conventions.Profile) BuilderOption {
	return func(opts *builderOptions) {
		opts.profile = &profile
	}
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := internalfields.Options{Profile: conventions.Default()}
	if cfg.profile != nil {
		internalOpts.Profile = *cfg.profile
	}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}

	return internalfields.New(internalOpts)
}
