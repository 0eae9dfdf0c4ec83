// Package conventions describes the naming contract between a template author
// and the generated form: which placeholder names denote amounts, which denote
// the spelled-out companion of an amount, and which reserved pair carries the
// genitive form of a person's name. A profile can be loaded from YAML so
// deployments can adjust the markers without recompiling.
package conventions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile holds the naming markers and locale defaults used during field
// classification and derivation.
type Profile struct {
	// AmountMarker flags a field as a numeric amount when its name contains
	// this substring (and does not carry WordsSuffix).
	AmountMarker string `yaml:"amount_marker"`

	// WordsSuffix flags a field as the spelled-out companion of an amount.
	// The base field name is obtained by swapping this suffix for
	// AmountMarker.
	WordsSuffix string `yaml:"words_suffix"`

	// NameField is the reserved base field holding a person's name in the
	// nominative case.
	NameField string `yaml:"name_field"`

	// GenitiveField is the reserved derived field recomputed from NameField.
	GenitiveField string `yaml:"genitive_field"`

	// WordsLocale selects the number-to-words converter ("en" or "ru").
	WordsLocale string `yaml:"words_locale"`

	// CurrencySuffix is appended to formatted amount values.
	CurrencySuffix string `yaml:"currency_suffix"`
}

// Default returns the profile matching the stock template contract:
// {amount_am} / {amount_words} pairs and the {director_name} /
// {director_name_genitive} reserved pair, rendered in Russian with sum
// currency.
func Default() Profile {
	return Profile{
		AmountMarker:   "_am",
		WordsSuffix:    "_words",
		NameField:      "director_name",
		GenitiveField:  "director_name_genitive",
		WordsLocale:    "ru",
		CurrencySuffix: "сум",
	}
}

// Load reads a YAML profile from disk, layering it over the defaults so a
// partial file only overrides the keys it names.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("conventions: open profile: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader decodes a YAML profile from a reader, layered over the defaults.
func LoadReader(r io.Reader) (Profile, error) {
	profile := Default()
	if err := yaml.NewDecoder(r).Decode(&profile); err != nil {
		if err == io.EOF {
			return profile, nil
		}
		return Profile{}, fmt.Errorf("conventions: decode profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Validate rejects profiles whose markers would make classification
// ambiguous.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.AmountMarker) == "" {
		return fmt.Errorf("conventions: amount_marker is required")
	}
	if strings.TrimSpace(p.WordsSuffix) == "" {
		return fmt.Errorf("conventions: words_suffix is required")
	}
	if p.AmountMarker == p.WordsSuffix {
		return fmt.Errorf("conventions: amount_marker and words_suffix must differ")
	}
	if strings.TrimSpace(p.GenitiveField) != "" && strings.TrimSpace(p.NameField) == "" {
		return fmt.Errorf("conventions: genitive_field requires name_field")
	}
	return nil
}

// IsWordsField reports whether the name denotes a spelled-out amount
// companion.
func (p Profile) IsWordsField(name string) bool {
	return strings.HasSuffix(name, p.WordsSuffix)
}

// IsAmountField reports whether the name denotes a numeric amount base.
func (p Profile) IsAmountField(name string) bool {
	return strings.Contains(name, p.AmountMarker) && !p.IsWordsField(name)
}

// IsGenitiveField reports whether the name is the reserved genitive field.
func (p Profile) IsGenitiveField(name string) bool {
	return p.GenitiveField != "" && name == p.GenitiveField
}

// AmountBaseFor returns the amount field a words field derives from, swapping
// the words suffix for the amount marker ("total_words" -> "total_am").
func (p Profile) AmountBaseFor(wordsField string) string {
	if !p.IsWordsField(wordsField) {
		return ""
	}
	return strings.TrimSuffix(wordsField, p.WordsSuffix) + p.AmountMarker
}

// WordsFieldFor returns the spelled-out companion name of an amount field
// ("total_am" -> "total_words"), or empty when the name does not end with the
// amount marker.
func (p Profile) WordsFieldFor(amountField string) string {
	if !strings.HasSuffix(amountField, p.AmountMarker) {
		return ""
	}
	return strings.TrimSuffix(amountField, p.AmountMarker) + p.WordsSuffix
}
