// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"discprofile_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=160"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin recruiter viewer"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		Name:      m.UserName,
		Email:     m.UserEmail,
		Role:      m.UserRole,
		CreatedAt: m.UserCreatedAt,
	}
}

func ToUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToUserResponse(&rows[i]))
	}
	return out
}
