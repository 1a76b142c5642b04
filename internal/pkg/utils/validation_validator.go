package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock_time", validateClockTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := ParseClockTime(fl.Field().String())
	return err == nil
}
