package validators

import (
	"net/mail"
	"strings"
	"unicode"
)

// IsEmailValid faz apenas a checagem sintática; vazio é aceito (campo opcional).
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

// DigitsOnly remove tudo que não for dígito ("(11) 98888-7777" -> "11988887777").
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsBlank trata strings só com espaços como vazias.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
