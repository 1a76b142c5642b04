package models

import (
	"registrar-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type User struct {
	ID         string `bson:"_id,omitempty"`
	UserID     string `bson:"userId"`
	Firstname  string `bson:"firstname"`
	Lastname   string `bson:"lastname"`
	Middlename string `bson:"middlename,omitempty"`
	Password   string `bson:"password"`
	Role       string `bson:"role"`
	Department string `bson:"department,omitempty"`
	IsActive   bool   `bson:"isActive"`
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"userId":     u.UserID,
		"firstname":  u.Firstname,
		"lastname":   u.Lastname,
		"middlename": u.Middlename,
		"password":   u.Password,
		"role":       u.Role,
		"department": u.Department,
		"isActive":   u.IsActive,
	}
}

func (u *User) ConvertToResponse() *responses.User {
	return &responses.User{
		ID:         u.ID,
		UserID:     u.UserID,
		Firstname:  u.Firstname,
		Lastname:   u.Lastname,
		Middlename: u.Middlename,
		Role:       u.Role,
		Department: u.Department,
		IsActive:   u.IsActive,
	}
}
