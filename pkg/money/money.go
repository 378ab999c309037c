package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converte um valor monetário digitado pelo usuário em float64.
// Aceita tanto "1.250,50" quanto "1250.50" e tolera o prefixo "R$".
// Entrada malformada vira 0.0 — nunca propaga erro para o chamador.
func Parse(raw string) float64 {
	if raw == "" {
		return 0.0
	}

	clean := strings.ReplaceAll(raw, "R$", "")
	clean = strings.ReplaceAll(clean, " ", "")

	hasDot := strings.Contains(clean, ".")
	hasComma := strings.Contains(clean, ",")

	switch {
	case hasDot && hasComma:
		// "1.250,50" -> "1250.50"
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasComma:
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0.0
	}

	return value
}

// Format renderiza um valor no padrão brasileiro: "R$ 1.250,50".
func Format(value float64) string {
	fixed := decimal.NewFromFloat(value).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + decPart
	if negative {
		out = "R$ -" + grouped.String() + "," + decPart
	}

	return out
}

// Round arredonda para duas casas decimais (centavos).
func Round(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// ToCell formata um valor para persistência na planilha ("80.00").
func ToCell(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
