package request

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}
