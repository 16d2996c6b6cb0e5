// Package validation contains custom validation functions for the application to use for input validation.
//
// Request bodies pass three gates before they reach a store: a JSON Schema
// check of the field types, the struct tag rules on the request commands, and
// the deadline normalization. Failures from every gate are collected into a
// single *Error so a client can render all of them at once.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"KanbanWebService/models"
)

// StatusValidator is a validation function that checks the field holds one of the task statuses.
func StatusValidator(fl validator.FieldLevel) bool {
	return models.Status(fl.Field().String()).Valid()
}

// FieldValidator is a validation function that checks if the field value is empty.
// It returns true if the field value is not empty or whitespace, and false otherwise.
func FieldValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
