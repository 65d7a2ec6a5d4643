package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida del validador de structs (tags `validate`).
var validate = validator.New()
