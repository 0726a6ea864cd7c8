package request

import (
	"hotel-frontdesk/internal/usecase/commands"
)

type RecordTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=income expense"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"required"`
}

func (r *RecordTransactionRequest) ToCommand() (commands.RecordTransactionRequest, error) {
	cents, err := parseCents(r.Amount)
	if err != nil {
		return commands.RecordTransactionRequest{}, err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return commands.RecordTransactionRequest{}, err
	}
	return commands.RecordTransactionRequest{
		Type:        r.Type,
		AmountCents: cents,
		Category:    r.Category,
		Description: r.Description,
		Date:        date,
	}, nil
}
