package helper

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeConflict   Code = "CONFLICT"
	CodeNotFound   Code = "NOT_FOUND"
	CodeState      Code = "STATE"
	CodeInternal   Code = "INTERNAL"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrValidation(msg string) *AppError { return &AppError{Code: CodeValidation, Message: msg} }
func ErrConflict(msg string) *AppError   { return &AppError{Code: CodeConflict, Message: msg} }
func ErrNotFound(msg string) *AppError   { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrState(msg string) *AppError      { return &AppError{Code: CodeState, Message: msg} }
func ErrInternal(msg string) *AppError   { return &AppError{Code: CodeInternal, Message: msg} }

func HTTPStatus(err error) int {
	var app *AppError
	if errors.As(err, &app) {
		switch app.Code {
		case CodeValidation:
			return http.StatusBadRequest
		case CodeState:
			return http.StatusForbidden
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}
