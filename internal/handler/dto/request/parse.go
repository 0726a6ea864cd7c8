package request

import (
	"time"

	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate   = errs.New("dates must be formatted as YYYY-MM-DD")
	ErrInvalidAmount = errs.New("amounts must be non-negative decimals with at most two fraction digits")
	ErrInvalidID     = errs.New("invalid id")
)

// ParseDate reads a calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return t, nil
}

func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseCents(s string) (int64, error) {
	m, err := money.Parse(s)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidAmount)
	}
	return m.Cents(), nil
}

func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidID)
	}
	return id, nil
}
