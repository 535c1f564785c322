package model

import "errors"

// Standard error codes
const (
	ErrCodeInvalidProduct          = "INVALID_PRODUCT"
	ErrCodeUnrecognizedVariant     = "UNRECOGNIZED_VARIANT"
	ErrCodeUnimplementedCapability = "UNIMPLEMENTED_CAPABILITY"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidProduct          = NewDomainError(ErrCodeInvalidProduct, "creator returned no product")
	ErrUnrecognizedVariant     = NewDomainError(ErrCodeUnrecognizedVariant, "unrecognized variant")
	ErrUnimplementedCapability = NewDomainError(ErrCodeUnimplementedCapability, "capability not implemented")
)

// CodeOf returns the code of the first DomainError in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
