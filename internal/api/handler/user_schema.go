package handler

import "github.com/spendbook/expenses-api/internal/core/domain"

type createUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// userResponse is the transport-owned user contract, kept separate from the
// domain type so internal changes never leak into the JSON surface.
type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name}
}
