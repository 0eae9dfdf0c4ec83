// Package form tracks user-entered values for a template form and keeps the
// derived fields in sync with the independent ones.
package form

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mirsardor-ktng/documint/pkg/conventions"
	"github.com/mirsardor-ktng/documint/pkg/currency"
	"github.com/mirsardor-ktng/documint/pkg/model"
	"github.com/mirsardor-ktng/documint/pkg/morph"
	"github.com/mirsardor-ktng/documint/pkg/words"
)

// State holds the current value of every field in a form model. Writes to an
// amount or name field immediately recompute their derived companions, so
// reads always observe a consistent form.
type State struct {
	mu        sync.RWMutex
	model     model.FormModel
	profile   conventions.Profile
	converter words.Converter
	formatter currency.Formatter
	values    map[string]string
}

// StateOption configures state construction.
type StateOption func(*State)

// WithProfile overrides the naming conventions profile.
func WithProfile(profile conventions.Profile) StateOption {
	return func(s *State) {
		s.profile = profile
	}
}

// WithConverter overrides the amount-to-words converter. By default the
// converter for the profile's words locale is used.
func WithConverter(converter words.Converter) StateOption {
	return func(s *State) {
		s.converter = converter
	}
}

// NewState builds an empty state for the given form model.
func NewState(m model.FormModel, opts ...StateOption) (*State, error) {
	s := &State{
		model:   m,
		profile: conventions.Default(),
		values:  make(map[string]string, len(m.Fields)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.converter == nil {
		converter, err := words.ForLocale(s.profile.WordsLocale)
		if err != nil {
			return nil, fmt.Errorf("form: %w", err)
		}
		s.converter = converter
	}
	s.formatter = currency.New(currency.WithSuffix(s.profile.CurrencySuffix))

	for _, f := range m.Fields {
		s.values[f.Name] = ""
	}
	return s, nil
}

// Model returns the form model the state was built for.
func (s *State) Model() model.FormModel {
	return s.model
}

// Set stores a value for an editable field and refreshes any derived
// companions. Derived fields reject direct writes.
func (s *State) Set(name, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.model.FieldByName(name)
	if !ok {
		return fmt.Errorf("form: unknown field %q", name)
	}
	if f.Kind.Derived() {
		return fmt.Errorf("form: field %q is derived and cannot be set directly", name)
	}

	if f.Kind == model.KindAmountBase {
		raw = currency.Strip(raw)
	}
	s.values[name] = raw
	s.refresh(f, raw)
	return nil
}

// Seed loads initial values for editable fields, ignoring entries that do
// not correspond to a field, then recomputes the derived fields.
func (s *State) Seed(initial map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, raw := range initial {
		f, ok := s.model.FieldByName(name)
		if !ok || f.Kind.Derived() {
			continue
		}
		if f.Kind == model.KindAmountBase {
			raw = currency.Strip(raw)
		}
		s.values[name] = raw
		s.refresh(f, raw)
	}
}

// refresh recomputes the derived companions of an editable field. Caller
// holds the write lock.
func (s *State) refresh(f model.Field, raw string) {
	switch f.Kind {
	case model.KindAmountBase:
		companion := s.profile.WordsFieldFor(f.Name)
		if _, ok := s.values[companion]; ok {
			s.values[companion] = words.FromRaw(s.converter, raw)
		}
	case model.KindIndependent:
		if f.Name == s.profile.NameField {
			if _, ok := s.values[s.profile.GenitiveField]; ok {
				s.values[s.profile.GenitiveField] = morph.Genitive(raw)
			}
		}
	}
}

// Get returns the current value of a field.
func (s *State) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[name]
	return v, ok
}

// Values returns a copy of the current state, raw and unformatted.
func (s *State) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Payload returns the substitution map for document generation. Amount
// fields are rendered in display form, everything else passes through as
// stored.
func (s *State) Payload() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for _, f := range s.model.Fields {
		v := s.values[f.Name]
		if f.Kind == model.KindAmountBase && v != "" {
			v = s.formatter.Format(v)
		}
		out[f.Name] = v
	}
	return out
}

// Missing lists the editable fields still holding empty values, sorted by
// name.
func (s *State) Missing() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for _, f := range s.model.Fields {
		if !f.Kind.Derived() && s.values[f.Name] == "" {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Reset clears every field back to empty.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name := range s.values {
		s.values[name] = ""
	}
}
