package finance

import (
	"strings"
	"unicode"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts for display using locale-aware digit grouping.
// It performs no conversion.
type Formatter struct {
	locale     language.Tag
	symbols    numberSymbols
	currencies domain.CurrencyCatalog
}

// numberSymbols are the separators and group sizes of a locale. A zero primary size
// disables grouping.
type numberSymbols struct {
	group     string
	decimal   string
	primary   int
	secondary int
}

var defaultSymbols = numberSymbols{group: ",", decimal: ".", primary: 3, secondary: 3}

// NewFormatter creates a Formatter for locale. Symbols are looked up in currencies; an
// unknown currency is rendered with its code.
func NewFormatter(locale language.Tag, currencies ...domain.Currency) *Formatter {
	return &Formatter{
		locale:     locale,
		symbols:    localeSymbols(locale),
		currencies: domain.NewCurrencyCatalog(currencies),
	}
}

// ParseLocale parses a BCP 47 tag, falling back to domain.DefaultLocale.
func ParseLocale(tag string) language.Tag {
	if parsed, err := language.Parse(tag); err == nil {
		return parsed
	}
	return language.MustParse(domain.DefaultLocale)
}

// Format rounds amount half away from zero to exactly decimalPlaces digits and renders it
// as "<sign><symbol> <grouped digits>", e.g. "$ 1,306.80" or "-US$ 10.00". The digits come
// from the rounded decimal itself, so they always match FormatPlain.
func (f *Formatter) Format(amount decimal.Decimal, currencyCode string, decimalPlaces int) string {
	places := clampPlaces(decimalPlaces)
	rounded := Round(amount, places)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	plain := rounded.Abs().StringFixed(int32(places))
	intPart, fracPart, _ := strings.Cut(plain, ".")
	digits := groupDigits(intPart, f.symbols)
	if fracPart != "" {
		digits += f.symbols.decimal + fracPart
	}

	return sign + f.currencies.Symbol(currencyCode) + " " + digits
}

// localeSymbols reads the separators and group sizes of locale off a sample rendered by
// x/text. The sample has three integer groups so secondary grouping (e.g. 12,34,567.5)
// shows up.
func localeSymbols(locale language.Tag) numberSymbols {
	sample := message.NewPrinter(locale).Sprint(number.Decimal(1234567.5, number.Scale(1)))

	var digitRuns, sepRuns []string
	var cur strings.Builder
	inDigits := true
	for _, r := range sample {
		if unicode.IsDigit(r) != inDigits {
			if inDigits {
				digitRuns = append(digitRuns, cur.String())
			} else {
				sepRuns = append(sepRuns, cur.String())
			}
			cur.Reset()
			inDigits = !inDigits
		}
		cur.WriteRune(r)
	}
	if !inDigits || len(sepRuns) == 0 {
		return defaultSymbols
	}
	digitRuns = append(digitRuns, cur.String())

	// The last run is the fraction "5"; everything before the last separator is the integer part.
	intRuns := digitRuns[:len(digitRuns)-1]
	syms := numberSymbols{decimal: sepRuns[len(sepRuns)-1]}
	if len(intRuns) > 1 {
		syms.group = sepRuns[0]
		syms.primary = len([]rune(intRuns[len(intRuns)-1]))
		syms.secondary = syms.primary
		if len(intRuns) > 2 {
			syms.secondary = len([]rune(intRuns[len(intRuns)-2]))
		}
	}
	return syms
}

// groupDigits inserts the group separator into an ASCII digit string.
func groupDigits(intPart string, syms numberSymbols) string {
	if syms.primary <= 0 || len(intPart) <= syms.primary {
		return intPart
	}

	var groups []string
	end := len(intPart)
	size := syms.primary
	for end > size {
		groups = append(groups, intPart[end-size:end])
		end -= size
		size = syms.secondary
	}
	groups = append(groups, intPart[:end])

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, syms.group)
}
