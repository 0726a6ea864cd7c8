package booking

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxGuestFieldLength = 255

type Guest struct {
	name     string
	phone    string
	email    string
	idNumber string
	address  string
}

func NewGuest(name, phone, email, idNumber, address string) (Guest, error) {
	g := Guest{
		name:     strings.TrimSpace(name),
		phone:    strings.TrimSpace(phone),
		email:    strings.TrimSpace(email),
		idNumber: strings.TrimSpace(idNumber),
		address:  strings.TrimSpace(address),
	}

	if g.name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	if g.phone == "" {
		return Guest{}, ErrEmptyGuestPhone
	}
	if g.email != "" && !emailRegex.MatchString(g.email) {
		return Guest{}, ErrInvalidGuestEmail
	}
	for _, v := range []string{g.name, g.phone, g.email, g.idNumber, g.address} {
		if len(v) > maxGuestFieldLength {
			return Guest{}, ErrGuestFieldTooLong
		}
	}
	return g, nil
}

func (g Guest) Name() string     { return g.name }
func (g Guest) Phone() string    { return g.phone }
func (g Guest) Email() string    { return g.email }
func (g Guest) IDNumber() string { return g.idNumber }
func (g Guest) Address() string  { return g.address }
