package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UserResponse is what login, register and /auth/me reveal about a
// user. The password hash never leaves the service layer.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
