package requests

type CreateUser struct {
	UserID     string `json:"userId" validate:"required"`
	Firstname  string `json:"firstname" validate:"required"`
	Lastname   string `json:"lastname" validate:"required"`
	Middlename string `json:"middlename"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=admin program_chairperson instructor"`
	Department string `json:"department" validate:"omitempty,oneof=BSCS BSED-English BSED-SS BEED BSBA-HR"`
}

type UpdateUser struct {
	Firstname  *string `json:"firstname" validate:"omitempty,min=1"`
	Lastname   *string `json:"lastname" validate:"omitempty,min=1"`
	Middlename *string `json:"middlename"`
	Password   *string `json:"password" validate:"omitempty,min=8"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin program_chairperson instructor"`
	Department *string `json:"department" validate:"omitempty,oneof=BSCS BSED-English BSED-SS BEED BSBA-HR"`
	IsActive   *bool   `json:"isActive"`
}
