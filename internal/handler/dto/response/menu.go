package response

import (
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       string    `json:"price" copier:"PriceCents"`
	Available   bool      `json:"available"`
	Description string    `json:"description"`
	UpdatedAt   int64     `json:"updatedAt"`
}

func FromMenuItem(v *queries.MenuItemView) (*MenuItemResponse, error) {
	var out MenuItemResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromMenuList(items []*queries.MenuItemView) ([]*MenuItemResponse, error) {
	out := make([]*MenuItemResponse, 0, len(items))
	if err := copyInto(&out, items); err != nil {
		return nil, err
	}
	return out, nil
}
