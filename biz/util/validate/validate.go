package validate

import (
	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into Hertz's BindAndValidate so
// request DTOs can use the standard `validate` tags.
type Validator struct {
	engine *validator.Validate
}

func New() *Validator {
	return &Validator{engine: validator.New()}
}

func (v *Validator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	return v.engine.Struct(obj)
}

func (v *Validator) Engine() interface{} {
	return v.engine
}

func (v *Validator) ValidateTag() string {
	return "validate"
}
