package entity

import "strings"

// IdentifierKind tells which login field an identifier refers to.
type IdentifierKind int

const (
	// IdentifierEmail means the identifier should be matched against User.Email.
	IdentifierEmail IdentifierKind = iota
	// IdentifierPhone means the identifier should be matched against User.Phone.
	IdentifierPhone
)

// ClassifyIdentifier decides whether a login identifier is an email address
// or a phone number. An identifier is an email if and only if it contains
// the '@' character. This is deliberately not an RFC validation: the rule
// has to stay stable because clients rely on it to log in with either field
// through the same input box.
func ClassifyIdentifier(identifier string) IdentifierKind {
	if strings.Contains(identifier, "@") {
		return IdentifierEmail
	}

	return IdentifierPhone
}
