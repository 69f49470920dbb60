package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrConflict
	ErrForbidden
	ErrStorage
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorize:    "unauthorize request",
	ErrValidation:     "validation failed",
	ErrConflict:       "record was modified by someone else, reload and try again",
	ErrForbidden:      "you are not allowed to modify this record",
	ErrStorage:        "storage unavailable",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorize:    http.StatusUnauthorized,
	ErrValidation:     http.StatusBadRequest,
	ErrConflict:       http.StatusConflict,
	ErrForbidden:      http.StatusForbidden,
	ErrStorage:        http.StatusServiceUnavailable,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorize:    "0004",
	ErrValidation:     "0005",
	ErrConflict:       "0006",
	ErrForbidden:      "0007",
	ErrStorage:        "0008",
}
