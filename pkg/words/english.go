package words

import (
	"math"
	"strings"
)

var (
	englishOnes = []string{
		"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	}
	englishTeens = []string{
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen",
	}
	englishTens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	englishScales = []string{"", "thousand", "million", "billion", "trillion"}
)

// English converts amounts into English words with a cents clause, e.g.
// 1250.50 -> "One thousand two hundred fifty and fifty cents".
type English struct{}

// NewEnglish constructs the English converter.
func NewEnglish() English {
	return English{}
}

func (English) Locale() string {
	return "en"
}

// Words spells the amount out. The fractional part is rounded to cents and
// appended as "and <words> cent(s)" when nonzero; a zero integer part with a
// nonzero fraction produces only the cents clause.
func (e English) Words(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) >= maxSpellable {
		return ""
	}
	if amount == 0 {
		return "Zero"
	}
	if amount < 0 {
		return capitalize("minus " + strings.ToLower(e.Words(math.Abs(amount))))
	}

	integer := int64(math.Floor(amount))
	cents := int64(math.Round((amount - float64(integer)) * 100))

	var integerWords string
	if !(integer == 0 && cents > 0) {
		remaining := integer
		for scale := 0; remaining > 0 || scale == 0; scale++ {
			chunk := remaining % 1000
			if chunk != 0 {
				part := englishChunk(int(chunk))
				if englishScales[scale] != "" {
					part += " " + englishScales[scale]
				}
				if integerWords != "" {
					part += " " + integerWords
				}
				integerWords = part
			}
			remaining /= 1000
			if remaining == 0 {
				break
			}
		}
	}

	var centsWords string
	if cents > 0 {
		if cents == 1 {
			centsWords = " and one cent"
		} else {
			centsWords = " and " + englishChunk(int(cents)) + " cents"
		}
	}

	return capitalize(strings.TrimSpace(integerWords + centsWords))
}

// englishChunk renders 1..999, hyphenating compound tens ("forty-two").
func englishChunk(n int) string {
	if n == 0 {
		return ""
	}

	var b strings.Builder
	if n >= 100 {
		b.WriteString(englishOnes[n/100])
		b.WriteString(" hundred")
		n %= 100
		if n > 0 {
			b.WriteString(" ")
		}
	}

	switch {
	case n >= 20:
		b.WriteString(englishTens[n/10])
		if n%10 > 0 {
			b.WriteString("-")
			b.WriteString(englishOnes[n%10])
		}
	case n >= 10:
		b.WriteString(englishTeens[n-10])
	case n > 0:
		b.WriteString(englishOnes[n])
	}

	return b.String()
}
