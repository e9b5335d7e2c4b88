package finance

import (
	"strings"
	"testing"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatter_Format(t *testing.T) {
	currencies := []domain.Currency{
		{CurrencyCode: "ARS", Symbol: "$"},
		{CurrencyCode: "USD", Symbol: "US$"},
		{CurrencyCode: "EUR", Symbol: "€"},
	}
	en := NewFormatter(language.AmericanEnglish, currencies...)
	de := NewFormatter(language.German, currencies...)

	tests := []struct {
		name   string
		f      *Formatter
		amount string
		code   string
		places int
		want   string
	}{
		{"grouping and padding", en, "1306.8", "ARS", 2, "$ 1,306.80"},
		{"negative", en, "-10", "USD", 2, "-US$ 10.00"},
		{"half away from zero", en, "2.345", "USD", 2, "US$ 2.35"},
		{"negative half away from zero", en, "-2.345", "USD", 2, "-US$ 2.35"},
		{"no decimals", en, "1306.5", "ARS", 0, "$ 1,307"},
		{"unknown currency uses code", en, "5", "BRL", 2, "BRL 5.00"},
		{"german separators", de, "1234567.891", "EUR", 2, "€ 1.234.567,89"},
		{"rounds to zero without sign", en, "-0.001", "ARS", 2, "$ 0.00"},
		{"beyond float precision", en, "1234567890123456.78", "ARS", 2, "$ 1,234,567,890,123,456.78"},
		{"small integer part", de, "999.5", "EUR", 1, "€ 999,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Format(dec(tt.amount), tt.code, tt.places))
		})
	}
}

func TestFormatter_DigitsMatchFormatPlain(t *testing.T) {
	f := NewFormatter(language.AmericanEnglish, domain.Currency{CurrencyCode: "ARS", Symbol: "$"})
	for _, amount := range []string{"1234567890123456.78", "98765432109876543.215", "-0.125", "7"} {
		formatted := f.Format(dec(amount), "ARS", 2)
		digits := strings.NewReplacer("$ ", "", ",", "").Replace(formatted)
		assert.Equal(t, FormatPlain(dec(amount), 2), digits, amount)
	}
}

func TestLocaleSymbols(t *testing.T) {
	assert.Equal(t, numberSymbols{group: ",", decimal: ".", primary: 3, secondary: 3}, localeSymbols(language.AmericanEnglish))
	assert.Equal(t, numberSymbols{group: ".", decimal: ",", primary: 3, secondary: 3}, localeSymbols(language.German))
}

func TestGroupDigits(t *testing.T) {
	western := numberSymbols{group: ",", decimal: ".", primary: 3, secondary: 3}
	indian := numberSymbols{group: ",", decimal: ".", primary: 3, secondary: 2}

	assert.Equal(t, "0", groupDigits("0", western))
	assert.Equal(t, "999", groupDigits("999", western))
	assert.Equal(t, "1,000", groupDigits("1000", western))
	assert.Equal(t, "1,234,567", groupDigits("1234567", western))
	assert.Equal(t, "12,34,567", groupDigits("1234567", indian))
	assert.Equal(t, "1234567", groupDigits("1234567", numberSymbols{decimal: "."}))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "1306.80", FormatPlain(dec("1306.8"), 2))
	assert.Equal(t, "0.13", FormatPlain(dec("0.125"), 2))
	assert.Equal(t, "-0.13", FormatPlain(dec("-0.125"), 2))
	assert.Equal(t, "3", FormatPlain(dec("2.5"), -1))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.MustParse("de-DE"), ParseLocale("de-DE"))
	assert.Equal(t, language.MustParse(domain.DefaultLocale), ParseLocale("not a locale!"))
}
