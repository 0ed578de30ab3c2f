package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidationMessage turns a validator error into the message the API
// returns. Missing required fields keep the historical wording.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return "Please include all fields"
			}
		}
		if len(verrs) > 0 {
			return fmt.Sprintf("Invalid value for %s", strings.ToLower(verrs[0].Field()))
		}
	}
	return "Invalid request"
}
