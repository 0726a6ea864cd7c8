package response

import (
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Amount      string     `json:"amount" copier:"AmountCents"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	RecordedBy  *uuid.UUID `json:"recordedBy,omitempty"`
	CreatedAt   int64      `json:"createdAt"`
}

func FromTransactionList(items []*queries.TransactionView) ([]*TransactionResponse, error) {
	out := make([]*TransactionResponse, 0, len(items))
	if err := copyInto(&out, items); err != nil {
		return nil, err
	}
	return out, nil
}
