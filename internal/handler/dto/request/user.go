package request

import (
	"hotel-frontdesk/internal/usecase/commands"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=viewer staff owner"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
		Role:     r.Role,
	}
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer staff owner"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
