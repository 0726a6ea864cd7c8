package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errors.New("transaction type must be income or expense")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrEmptyCategory     = errors.New("category cannot be empty")
	ErrMissingDate       = errors.New("transaction date is required")
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type Transaction struct {
	id          uuid.UUID
	kind        Type
	amount      money.Money
	category    string
	description string
	date        time.Time
	bookingID   *uuid.UUID
	recordedBy  *uuid.UUID
	createdAt   time.Time
}

func NewTransaction(kind Type, amount money.Money, category, description string, date time.Time, recordedBy *uuid.UUID) (*Transaction, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	return &Transaction{
		id:          uuid.New(),
		kind:        kind,
		amount:      amount,
		category:    category,
		description: strings.TrimSpace(description),
		date:        booking.NormalizeDate(date),
		recordedBy:  recordedBy,
	}, nil
}

// NewRoomRevenue posts the income of a checked-in stay, dated on its check-in day.
func NewRoomRevenue(b *booking.Booking, category, roomNumber, typeName string) (*Transaction, error) {
	desc := fmt.Sprintf("Room %s (%s) - %s, %d night(s)", roomNumber, typeName, b.Guest().Name(), b.Nights())
	receivedBy := b.ReceivedBy()

	tx, err := NewTransaction(TypeIncome, b.TotalPrice(), category, desc, b.CheckInDate(), &receivedBy)
	if err != nil {
		return nil, err
	}
	id := b.ID()
	tx.bookingID = &id
	return tx, nil
}

func ReconstructTransaction(
	id uuid.UUID,
	kind Type,
	amount money.Money,
	category, description string,
	date time.Time,
	bookingID, recordedBy *uuid.UUID,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		kind:        kind,
		amount:      amount,
		category:    category,
		description: description,
		date:        date,
		bookingID:   bookingID,
		recordedBy:  recordedBy,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID          { return t.id }
func (t *Transaction) Type() Type             { return t.kind }
func (t *Transaction) Amount() money.Money    { return t.amount }
func (t *Transaction) Category() string       { return t.category }
func (t *Transaction) Description() string    { return t.description }
func (t *Transaction) Date() time.Time        { return t.date }
func (t *Transaction) BookingID() *uuid.UUID  { return t.bookingID }
func (t *Transaction) RecordedBy() *uuid.UUID { return t.recordedBy }
func (t *Transaction) CreatedAt() time.Time   { return t.createdAt }
