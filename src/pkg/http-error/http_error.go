package httpError

import "net/http"

// CommonError is the error shape carried from usecases to the delivery layer.
// Code keeps the failure kind (validation, not-found, conflict, unexpected)
// so callers can branch without parsing messages.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    http.StatusBadRequest,
		Message: "bad request",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    http.StatusNotFound,
		Message: "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    http.StatusConflict,
		Message: "conflict",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:    http.StatusUnauthorized,
		Message: "unauthorized",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	}
}
