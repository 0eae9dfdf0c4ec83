package fields

import (
	"fmt"

	"github.com/mirsardor-ktng/documint/pkg/conventions"
)

// Options configures the builder.
type Options struct {
	// Profile supplies the naming conventions used for classification.
	Profile conventions.Profile

	// Labeler maps a field name to its display label. Defaults to the raw
	// placeholder name, matching what template authors typed.
	Labeler func(string) string
}

// Builder turns the scanner's ordered token list into a classified, ordered
// form model.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	if options.Labeler == nil {
		options.Labeler = func(name string) string { return name }
	}
	return &Builder{opts: options}
}

// Build classifies every token, resolves dependency edges, and orders the
// result so each derived field immediately follows its base. Tokens arrive
// deduplicated in first-appearance order; that order is preserved for
// independent and base fields. A derived field whose base is absent from the
// token set degrades to an independent field and is never auto-computed.
func (b *Builder) Build(template string, tokens []string) (FormModel, error) {
	if err := b.opts.Profile.Validate(); err != nil {
		return FormModel{}, fmt.Errorf("fields: invalid profile: %w", err)
	}

	present := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		present[token] = struct{}{}
	}

	classified := make(map[string]Field, len(tokens))
	for _, token := range tokens {
		classified[token] = b.classify(token, present)
	}

	// Independent and base fields keep first-seen order; each base field is
	// immediately followed by its derived companions when those were
	// discovered in the template.
	form := FormModel{Template: template, Fields: make([]Field, 0, len(tokens))}
	emitted := make(map[string]struct{}, len(tokens))

	emit := func(name string) {
		if _, done := emitted[name]; done {
			return
		}
		emitted[name] = struct{}{}
		form.Fields = append(form.Fields, classified[name])
	}

	for _, token := range tokens {
		field := classified[token]
		if field.Kind.Derived() {
			continue
		}
		emit(token)

		if field.Kind == KindAmountBase {
			companion := b.opts.Profile.WordsFieldFor(token)
			if companion != "" && isDerivedIn(classified, companion) {
				emit(companion)
			}
		}
		if token == b.opts.Profile.NameField {
			genitive := b.opts.Profile.GenitiveField
			if genitive != "" && isDerivedIn(classified, genitive) {
				emit(genitive)
			}
		}
	}

	// Derived fields whose base appeared later than themselves are already
	// emitted above; anything still pending was discovered but never paired,
	// which cannot happen after degradation. Keep the sweep anyway so no
	// discovered token is ever dropped from the form.
	for _, token := range tokens {
		emit(token)
	}

	return form, nil
}

func (b *Builder) classify(name string, present map[string]struct{}) Field {
	profile := b.opts.Profile
	field := Field{Name: name, Kind: KindIndependent, Label: b.opts.Labeler(name)}

	switch {
	case profile.IsGenitiveField(name):
		base := profile.NameField
		if _, ok := present[base]; !ok {
			break
		}
		field.Kind = KindNameGenitive
		field.Base = base
		field.ReadOnly = true
		field.Note = fmt.Sprintf("Automatically generated genitive case of {%s}.", base)

	case profile.IsWordsField(name):
		base := profile.AmountBaseFor(name)
		if base == "" {
			break
		}
		if _, ok := present[base]; !ok {
			break
		}
		field.Kind = KindAmountWords
		field.Base = base
		field.ReadOnly = true
		field.Note = fmt.Sprintf("Automatically generated words for {%s}.", base)

	case profile.IsAmountField(name):
		field.Kind = KindAmountBase
	}

	return field
}

func isDerivedIn(classified map[string]Field, name string) bool {
	field, ok := classified[name]
	return ok && field.Kind.Derived()
}
