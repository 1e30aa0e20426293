package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid is a syntactic check only; registration must not depend
// on DNS being reachable.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts "Name <a@b>" forms; only bare addresses
	// are valid here.
	if addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	return strings.Contains(email[at+1:], ".")
}
