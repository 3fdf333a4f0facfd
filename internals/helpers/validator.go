package helper

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct menjalankan validasi tag `validate` pada request DTO.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
