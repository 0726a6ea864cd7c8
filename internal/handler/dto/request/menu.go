package request

import (
	"hotel-frontdesk/internal/usecase/commands"
)

type MenuItemRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,oneof=food beverage other"`
	Price       string `json:"price" binding:"required"`
	Available   *bool  `json:"available"`
	Description string `json:"description" binding:"max=500"`
}

// ToCommand defaults a missing availability flag to true.
func (r *MenuItemRequest) ToCommand() (commands.MenuItemRequest, error) {
	cents, err := parseCents(r.Price)
	if err != nil {
		return commands.MenuItemRequest{}, err
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return commands.MenuItemRequest{
		Name:        r.Name,
		Category:    r.Category,
		PriceCents:  cents,
		Available:   available,
		Description: r.Description,
	}, nil
}
