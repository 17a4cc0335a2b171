package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateUserRequest struct {
	Name string `json:"name"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
	)
}
