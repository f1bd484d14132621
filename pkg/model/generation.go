package model

import (
	"errors"
	"fmt"
	"strings"
)

type Generation struct {
	ID    int
	Name  string
	Types []TypeRef
}

var ErrGenerationName = errors.New("malformed generation name")

const generationPrefix = "generation-"

// ParseGenerationName converts names like "generation-iv" to their number.
func ParseGenerationName(name string) (int, error) {
	numeral, ok := strings.CutPrefix(name, generationPrefix)
	if !ok {
		return 0, fmt.Errorf("%q has no %q prefix: %w", name, generationPrefix, ErrGenerationName)
	}

	n, err := parseRoman(strings.ToUpper(numeral))
	if err != nil {
		return 0, fmt.Errorf("could not parse %q: %w", name, err)
	}

	return n, nil
}

var romanValues = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

func parseRoman(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty numeral: %w", ErrGenerationName)
	}

	total := 0
	for i := 0; i < len(s); i++ {
		v, ok := romanValues[s[i]]
		if !ok {
			return 0, fmt.Errorf("invalid numeral %q: %w", s, ErrGenerationName)
		}
		if i+1 < len(s) && v < romanValues[s[i+1]] {
			total -= v
		} else {
			total += v
		}
	}

	// reject non-canonical forms such as "IIII" or "VX"
	if formatRoman(total) != s {
		return 0, fmt.Errorf("non-canonical numeral %q: %w", s, ErrGenerationName)
	}

	return total, nil
}

var romanSymbols = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

func formatRoman(n int) string {
	var b strings.Builder
	for _, rs := range romanSymbols {
		for n >= rs.value {
			b.WriteString(rs.symbol)
			n -= rs.value
		}
	}

	return b.String()
}
