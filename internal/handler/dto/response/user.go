package response

import (
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	LastLogin *string   `json:"lastLogin"`
	CreatedAt int64     `json:"createdAt"`
}

func FromUserList(items []*queries.UserView) ([]*UserResponse, error) {
	out := make([]*UserResponse, 0, len(items))
	if err := copyInto(&out, items); err != nil {
		return nil, err
	}
	return out, nil
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
