package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidDNI       = errors.New("invalid document number")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidShirtSize = errors.New("invalid shirt size")
	ErrPasswordTooWeak  = errors.New("password must be at least 8 characters long")
	ErrEmptyIdentifier  = errors.New("identifier cannot be empty")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	dniRegex   = regexp.MustCompile(`^[0-9]{6,10}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// DNI is the national document number volunteers register with. It doubles
// as a login identifier alongside email.
type DNI struct {
	value string
}

func NewDNI(s string) (DNI, error) {
	s = strings.TrimSpace(s)
	if !dniRegex.MatchString(s) {
		return DNI{}, ErrInvalidDNI
	}
	return DNI{value: s}, nil
}

func (d DNI) Value() string {
	return d.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Identifier is what the login form accepts: a DNI or an email, resolved to
// the account's email before the credential check.
type Identifier struct {
	value string
}

func NewIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Identifier{}, ErrEmptyIdentifier
	}
	return Identifier{value: s}, nil
}

func (i Identifier) Value() string {
	return i.value
}

func (i Identifier) IsEmail() bool {
	return strings.Contains(i.value, "@")
}

// Credentials pairs a login identifier with a raw password.
type Credentials struct {
	identifier Identifier
	password   Password
}

func NewCredentials(identifier, password string) (Credentials, error) {
	id, err := NewIdentifier(identifier)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{identifier: id, password: pw}, nil
}

func (c Credentials) Identifier() Identifier { return c.identifier }
func (c Credentials) Password() Password     { return c.password }
