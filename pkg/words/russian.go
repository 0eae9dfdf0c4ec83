package words

import (
	"fmt"
	"math"
	"strings"
)

var (
	russianOnes = []string{
		"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
	}
	// Feminine ones are required when counting thousands: одна тысяча, две тысячи.
	russianOnesFeminine = []string{
		"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
	}
	russianTeens = []string{
		"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
	}
	russianTens = []string{
		"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто",
	}
	russianHundreds = []string{
		"", "сто", "двести", "триста", "четыреста", "пятьсот",
		"шестьсот", "семьсот", "восемьсот", "девятьсот",
	}
)

// declension holds the three noun forms agreeing with a numeral: the form used
// after 1 (сум), after 2-4 (сума), and the default (сумов).
type declension struct {
	one  string
	few  string
	many string
}

// pick applies the standard Russian plural rule: 11-19 always take the "many"
// form, otherwise the last digit decides.
func (d declension) pick(n int64) string {
	n = n % 100
	if n >= 11 && n <= 19 {
		return d.many
	}
	switch n % 10 {
	case 1:
		return d.one
	case 2, 3, 4:
		return d.few
	default:
		return d.many
	}
}

var (
	russianScales = []struct {
		noun     declension
		feminine bool
	}{
		{},
		{noun: declension{"тысяча", "тысячи", "тысяч"}, feminine: true},
		{noun: declension{"миллион", "миллиона", "миллионов"}},
		{noun: declension{"миллиард", "миллиарда", "миллиардов"}},
		{noun: declension{"триллион", "триллиона", "триллионов"}},
	}
	russianSum   = declension{"сум", "сума", "сумов"}
	russianTiyin = declension{"тийин", "тийина", "тийинов"}
)

// Russian converts amounts into Russian words with Uzbek sum currency units,
// e.g. 1250.50 -> "Одна тысяча двести пятьдесят сумов 50 тийинов". The tiyin
// part is always rendered as a two-digit numeral with its declined noun, never
// spelled out.
type Russian struct{}

// NewRussian constructs the Russian sum/tiyin converter.
func NewRussian() Russian {
	return Russian{}
}

func (Russian) Locale() string {
	return "ru"
}

// Words spells the amount out with grammatical agreement between every noun
// and its numeral. A fractional rounding carry of exactly 100 tiyin bumps the
// integer sum before rendering so 1.995 reads as two sum, zero tiyin.
func (r Russian) Words(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) >= maxSpellable {
		return ""
	}
	if amount < 0 {
		return capitalize("минус " + lowerFirst(r.Words(math.Abs(amount))))
	}

	integer := int64(math.Floor(amount))
	tiyin := int64(math.Round((amount - float64(integer)) * 100))
	if tiyin == 100 {
		integer++
		tiyin = 0
	}

	text := fmt.Sprintf("%s %s %02d %s",
		russianInteger(integer),
		russianSum.pick(integer),
		tiyin,
		russianTiyin.pick(tiyin),
	)
	return capitalize(text)
}

// russianInteger spells a non-negative integer, joining base-1000 chunks with
// their declined scale nouns and omitting zero chunks.
func russianInteger(n int64) string {
	if n == 0 {
		return "ноль"
	}

	var parts []string
	remaining := n
	for scale := 0; remaining > 0 && scale < len(russianScales); scale++ {
		chunk := remaining % 1000
		remaining /= 1000
		if chunk == 0 {
			continue
		}

		entry := russianScales[scale]
		segment := russianChunk(int(chunk), entry.feminine)
		if scale > 0 {
			segment += " " + entry.noun.pick(chunk)
		}
		parts = append([]string{segment}, parts...)
	}
	return strings.Join(parts, " ")
}

// russianChunk renders 1..999; feminine selects одна/две for thousand counts.
func russianChunk(n int, feminine bool) string {
	ones := russianOnes
	if feminine {
		ones = russianOnesFeminine
	}

	var parts []string
	if n >= 100 {
		parts = append(parts, russianHundreds[n/100])
		n %= 100
	}

	switch {
	case n >= 20:
		parts = append(parts, russianTens[n/10])
		if n%10 > 0 {
			parts = append(parts, ones[n%10])
		}
	case n >= 10:
		parts = append(parts, russianTeens[n-10])
	case n > 0:
		parts = append(parts, ones[n])
	}

	return strings.Join(parts, " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToLower(string(runes[0])) + string(runes[1:])
}
