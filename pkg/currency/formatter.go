package currency

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders "<amount> <code>" with the shortest decimal form of
// amount, the same digits the document itself carries (1234.5, not 1234.50).
func FormatAmount(amount float64, code string) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + code
}

// FormatGrouped renders amount rounded to two decimals with thousands
// separators: FormatGrouped(1234567.5, "USD") == "USD 1,234,567.50".
func FormatGrouped(amount float64, code string) string {
	rounded := math.Round(amount*100) / 100

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	formatted := addThousandsSeparator(intPart, ",") + "." + fracPart

	result := code + " " + formatted
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
