package response

import "balancestore/internal/usecase/readmodel"

type UserResponse struct {
	Username       string `json:"username"`
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

func NewUserResponse(user readmodel.AuthUserRM) UserResponse {
	return UserResponse{
		Username:       user.Username,
		NombreCompleto: user.NombreCompleto,
		Email:          user.Email,
	}
}
