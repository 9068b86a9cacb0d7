// Package validator contains the input-validation predicates applied to form
// values before they reach the API: CPF check digits, CEP grouping, e-mail
// shape, calendar dates and required fields. Every function is total — bad
// input yields false (or an unchanged string), never a panic or an error.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	cepDigitos   = regexp.MustCompile(`^\d{8}$`)
	cepComHifen  = regexp.MustCompile(`^\d{5}-\d{3}$`)
	sqlKeywords  = regexp.MustCompile(`(?i)\b(drop|union|select|insert|delete|update|alter|create|truncate)\b`)
)

// somenteDigitos strips every non-digit rune.
func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ValidarCPF reports whether cpf is a valid CPF, with or without punctuation.
//
// After stripping non-digits the value must have exactly 11 digits, must not
// be a repeated-digit sequence (000..., 111..., which pass the checksum but
// are rejected by business rule), and both check digits must match the
// weighted modulo-11 sums over the preceding digits.
func ValidarCPF(cpf string) bool {
	digitos := somenteDigitos(cpf)
	if len(digitos) != 11 {
		return false
	}

	if strings.Count(digitos, digitos[:1]) == 11 {
		return false
	}

	d := make([]int, 11)
	for i, r := range digitos {
		d[i] = int(r - '0')
	}

	soma := 0
	for i := 0; i < 9; i++ {
		soma += d[i] * (10 - i)
	}
	dv1 := 0
	if resto := soma % 11; resto >= 2 {
		dv1 = 11 - resto
	}
	if d[9] != dv1 {
		return false
	}

	soma = 0
	for i := 0; i < 10; i++ {
		soma += d[i] * (11 - i)
	}
	dv2 := 0
	if resto := soma % 11; resto >= 2 {
		dv2 = 11 - resto
	}

	return d[10] == dv2
}

// ValidarEmail reports whether email has the shape local@domain.tld. The
// pattern is anchored at both ends, so embedded spaces or a second @ fail.
func ValidarEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidarCEP reports whether cep is a valid CEP: exactly 8 digits, raw
// ("12345678") or grouped ("12345-678").
func ValidarCEP(cep string) bool {
	valor := strings.TrimSpace(cep)

	return cepDigitos.MatchString(valor) || cepComHifen.MatchString(valor)
}

// FormatosDataPadrao is the candidate list ValidarData tries when the caller
// provides none: two-digit year first, matching the GUI entry convention.
var FormatosDataPadrao = []string{"02/01/06", "02/01/2006"}

// ValidarData reports whether data denotes a real calendar date in any of
// the candidate layouts (FormatosDataPadrao when none are given). Leap-year
// correctness comes from the strict time.Parse: 29/02 only parses in years
// divisible by 4 and not by 100 unless by 400.
func ValidarData(data string, formatos ...string) bool {
	valor := strings.TrimSpace(data)
	if valor == "" {
		return false
	}

	candidatos := formatos
	if len(candidatos) == 0 {
		candidatos = FormatosDataPadrao
	}
	for _, formato := range candidatos {
		if _, err := time.Parse(formato, valor); err == nil {
			return true
		}
	}

	return false
}

// ValidarDataCadastral is the domain-facing date rule used on registration
// forms: DD/MM/YYYY (preferred) or DD/MM/YY, and the year must be 1900 or
// later. It is deliberately stricter than ValidarData, which has no year
// floor.
func ValidarDataCadastral(data string) bool {
	valor := strings.TrimSpace(data)
	if valor == "" {
		return false
	}

	for _, formato := range []string{"02/01/2006", "02/01/06"} {
		if dt, err := time.Parse(formato, valor); err == nil {
			return dt.Year() >= 1900
		}
	}

	return false
}

// CampoObrigatorio reports whether valor is present: nil and blank strings
// fail, any other stringifiable value passes.
func CampoObrigatorio(valor any) bool {
	if valor == nil {
		return false
	}

	return strings.TrimSpace(fmt.Sprint(valor)) != ""
}

// SanitizarEntrada removes comment and statement tokens commonly seen in
// injection attempts and trims the result. This is the light sanitizer used
// on free-text search terms.
func SanitizarEntrada(texto string) string {
	for _, token := range []string{"--", ";", "/*", "*/", "xp_", "sp_"} {
		texto = strings.ReplaceAll(texto, token, "")
	}

	return strings.TrimSpace(texto)
}

// SanitizarSQLInjection hardens a UI value against common SQL-injection
// patterns: quotes are doubled, comment/terminator tokens dropped and a fixed
// keyword denylist removed as whole words, case-insensitively.
//
// This is UI-layer hardening only; the real protection is parameterized
// queries at the API's database boundary.
func SanitizarSQLInjection(texto string) string {
	texto = strings.ReplaceAll(texto, "'", "''")
	texto = strings.ReplaceAll(texto, `"`, `""`)

	for _, token := range []string{"--", ";", "/*", "*/"} {
		texto = strings.ReplaceAll(texto, token, "")
	}

	texto = sqlKeywords.ReplaceAllString(texto, "")

	return strings.TrimSpace(texto)
}
