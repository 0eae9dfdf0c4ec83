package words

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Converter spells a monetary amount out in a target locale. Implementations
// must be pure: the same amount always yields the same string, and no
// conversion ever fails. Out-of-range or non-finite input degrades to an
// empty string instead of an error.
type Converter interface {
	Locale() string
	Words(amount float64) string
}

// DefaultLocale is used by callers that do not configure a locale explicitly.
const DefaultLocale = "ru"

// maxSpellable is one past the largest amount the scale tables can name, a
// thousand trillion. Amounts at or beyond it degrade to an empty string the
// same way non-finite input does.
const maxSpellable = 1e15

var (
	registryMu sync.RWMutex
	registry   = map[string]Converter{}
)

func init() {
	MustRegister(NewEnglish())
	MustRegister(NewRussian())
}

// Register adds a converter keyed by its Locale(). Duplicate locales return an
// error so wiring mistakes surface early.
func Register(converter Converter) error {
	if converter == nil {
		return fmt.Errorf("words: converter is required")
	}
	locale := converter.Locale()
	if locale == "" {
		return fmt.Errorf("words: converter locale is required")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[locale]; exists {
		return fmt.Errorf("words: locale %q already registered", locale)
	}
	registry[locale] = converter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister(converter Converter) {
	if err := Register(converter); err != nil {
		panic(err)
	}
}

// ForLocale retrieves a registered converter by locale tag.
func ForLocale(locale string) (Converter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	converter, ok := registry[locale]
	if !ok {
		return nil, fmt.Errorf("words: locale %q not registered", locale)
	}
	return converter, nil
}

// Locales returns the sorted locale tags currently registered.
func Locales() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FromRaw parses a raw numeric string (digits and at most one decimal point)
// and converts it. Non-numeric or empty input yields an empty string, which is
// the contract form state relies on when an amount field holds garbage.
func FromRaw(converter Converter, raw string) string {
	if converter == nil {
		return ""
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return ""
	}
	return converter.Words(amount)
}

// capitalize upper-cases the first rune, leaving the rest untouched. Works on
// Cyrillic as well as Latin input.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
