package dto

import (
	"strings"

	authModel "apgi_backend/internals/features/admins/auth/model"
)

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Valid: username di-trim, password dipakai apa adanya.
func (r *LoginRequest) Valid() bool {
	r.Username = strings.TrimSpace(r.Username)
	return r.Username != "" && r.Password != ""
}

type AdminDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	Admin   AdminDTO `json:"admin"`
}

func ToAdminDTO(m *authModel.AdminModel) AdminDTO {
	return AdminDTO{ID: m.ID, Username: m.Username, Email: m.Email}
}
