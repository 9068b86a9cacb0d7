// Package formatter converts values between the three textual conventions in
// play: what the operator types (DD/MM/YY or DD/MM/YYYY), what the API
// expects (DD/MM/YYYY) and what the database stores (YYYY-MM-DD). Parsing
// accepts many layouts, formatting produces exactly one per target, so
// format drift stays confined to this package.
package formatter

import (
	"strings"
	"time"
)

// Date layout sets per boundary. Ordering matters: the first layout that
// parses wins.
var (
	// FormatosGUI are the layouts accepted from manual form entry.
	FormatosGUI = []string{"02/01/06", "02/01/2006"}
	// FormatosAPI are the layouts the API may emit.
	FormatosAPI = []string{"02/01/2006", "02/01/06", "2006-01-02"}
	// FormatosDB are the layouts a persistence layer may emit.
	FormatosDB = []string{"2006-01-02", "02/01/2006", "02/01/06"}
)

const (
	// FormatoExibicao is the single layout shown to the operator.
	FormatoExibicao = "02/01/2006"
	// FormatoSaidaAPI is the single layout sent to the API.
	FormatoSaidaAPI = "02/01/2006"
	// FormatoSaidaDB is the single layout sent to a database boundary.
	FormatoSaidaDB = "2006-01-02"
)

// formatosCombinados is the union of all boundary layouts, tried in order
// when InterpretarData is called without an explicit list.
var formatosCombinados = []string{"02/01/2006", "02/01/06", "2006-01-02"}

// InterpretarData tries each candidate layout in order and returns the first
// successful parse. The second return is false when texto is blank or no
// layout matches; no error is ever produced.
func InterpretarData(texto string, formatos ...string) (time.Time, bool) {
	valor := strings.TrimSpace(texto)
	if valor == "" {
		return time.Time{}, false
	}

	candidatos := formatos
	if len(candidatos) == 0 {
		candidatos = formatosCombinados
	}
	for _, formato := range candidatos {
		if dt, err := time.Parse(formato, valor); err == nil {
			return dt, true
		}
	}

	return time.Time{}, false
}

// FormatarDataParaDB renders texto as YYYY-MM-DD. When texto cannot be
// parsed it is returned unchanged — the caller decides what an unparsable
// date means at its boundary.
func FormatarDataParaDB(texto string) string {
	dt, ok := InterpretarData(texto, append(append([]string{}, FormatosGUI...), FormatosAPI...)...)
	if !ok {
		return texto
	}

	return dt.Format(FormatoSaidaDB)
}

// NormalizarDataParaAPI renders texto in the DD/MM/YYYY convention the API
// requires, falling back to the original text when unparsable.
func NormalizarDataParaAPI(texto string) string {
	dt, ok := InterpretarData(texto, append(append([]string{}, FormatosGUI...), FormatosDB...)...)
	if !ok {
		return texto
	}

	return dt.Format(FormatoSaidaAPI)
}

// FormatarDataParaExibicao renders texto as DD/MM/YYYY for the operator.
// Blank input yields "" (not the original text); unparsable non-blank input
// is returned unchanged.
func FormatarDataParaExibicao(texto string) string {
	if strings.TrimSpace(texto) == "" {
		return ""
	}

	dt, ok := InterpretarData(texto, append(append([]string{}, FormatosDB...), FormatosAPI...)...)
	if !ok {
		return texto
	}

	return dt.Format(FormatoExibicao)
}

// FormatarCPF renders an 11-digit CPF as XXX.XXX.XXX-XX; any other length is
// returned digits-only.
func FormatarCPF(cpf string) string {
	digitos := RemoverFormatacao(cpf)
	if len(digitos) != 11 {
		return digitos
	}

	return digitos[:3] + "." + digitos[3:6] + "." + digitos[6:9] + "-" + digitos[9:]
}

// FormatarCEP renders an 8-digit CEP as XXXXX-XXX; any other length is
// returned digits-only.
func FormatarCEP(cep string) string {
	digitos := RemoverFormatacao(cep)
	if len(digitos) != 8 {
		return digitos
	}

	return digitos[:5] + "-" + digitos[5:]
}

// RemoverFormatacao keeps only the digits of valor.
func RemoverFormatacao(valor string) string {
	var b strings.Builder
	for _, r := range valor {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
