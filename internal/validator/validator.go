package validator

import (
	"github.com/go-playground/validator/v10"
)

var genders = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

// IsGender 是一个自定义的校验函数，用于验证性别取值
func IsGender(fl validator.FieldLevel) bool {
	return genders[fl.Field().String()]
}
