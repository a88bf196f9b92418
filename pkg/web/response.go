// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response envelope for all APIs.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Error wraps the given err into a json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// Confirm wraps a confirmation message into a json friendly response.
func Confirm(msg string) Response {
	return Response{Message: msg}
}

// GetErrorMsg returns a human readable message for the first field
// validation error.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "datetime":
		return field.Field() + " must be a valid " + field.Param() + " date"
	case "min":
		return field.Field() + " must be at least " + field.Param()
	case "max":
		return field.Field() + " must be at most " + field.Param()
	default:
		return field.Field() + " is invalid"
	}
}
