package formatter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatarValorMonetario renders valor in the Brazilian monetary convention:
// "R$ " prefix, dot-grouped thousands, comma decimal separator, always two
// decimal places.
func FormatarValorMonetario(valor decimal.Decimal) string {
	fixo := valor.Round(2).StringFixed(2)

	negativo := strings.HasPrefix(fixo, "-")
	fixo = strings.TrimPrefix(fixo, "-")

	partes := strings.SplitN(fixo, ".", 2)
	inteiro, centavos := partes[0], partes[1]

	var b strings.Builder
	b.WriteString("R$ ")
	if negativo {
		b.WriteString("-")
	}
	b.WriteString(agruparMilhares(inteiro))
	b.WriteString(",")
	b.WriteString(centavos)

	return b.String()
}

// FormatarValorMonetarioTexto is the defensive variant for raw form values:
// blank input becomes "R$ 0,00" and non-numeric input is returned unchanged
// rather than producing an error.
func FormatarValorMonetarioTexto(valor string) string {
	if strings.TrimSpace(valor) == "" {
		return "R$ 0,00"
	}

	quantia, err := decimal.NewFromString(strings.TrimSpace(valor))
	if err != nil {
		return valor
	}

	return FormatarValorMonetario(quantia)
}

// InterpretarValorMonetario parses a Brazilian monetary string ("R$
// 1.234,50") into a decimal. The second return is false for blank input or
// anything that does not parse.
func InterpretarValorMonetario(texto string) (decimal.Decimal, bool) {
	if strings.TrimSpace(texto) == "" {
		return decimal.Decimal{}, false
	}

	convertido := strings.NewReplacer("R$", "", " ", "", ".", "").Replace(texto)
	convertido = strings.ReplaceAll(convertido, ",", ".")

	quantia, err := decimal.NewFromString(convertido)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return quantia, true
}

// agruparMilhares inserts a dot every three digits, right to left. The input
// must be an unsigned digit string.
func agruparMilhares(inteiro string) string {
	if len(inteiro) <= 3 {
		return inteiro
	}

	var grupos []string
	for len(inteiro) > 3 {
		grupos = append([]string{inteiro[len(inteiro)-3:]}, grupos...)
		inteiro = inteiro[:len(inteiro)-3]
	}
	grupos = append([]string{inteiro}, grupos...)

	return strings.Join(grupos, ".")
}
