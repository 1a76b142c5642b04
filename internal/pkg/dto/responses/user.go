package responses

type User struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Middlename string `json:"middlename,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	IsActive   bool   `json:"isActive"`
}
