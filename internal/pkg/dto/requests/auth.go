package requests

type Login struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}
