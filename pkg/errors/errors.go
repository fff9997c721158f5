package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeMissingReference Code = "MISSING_REFERENCE_VALUES"
	CodeUnitNameMissing  Code = "UNIT_NAME_MISSING"
	CodePieceEconomics   Code = "PIECE_ECONOMICS_INVALID"
	CodeMissingMainCat   Code = "MISSING_MAIN_CATEGORY"
	CodeMissingCategory  Code = "MISSING_CATEGORY_SELECTION"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInternal         Code = "INTERNAL_ERROR"
)

type Metadata struct {
	Retryable      bool
	UserFacing     bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:      false,
		UserFacing:     true,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeMissingReference: {
		Retryable:      false,
		UserFacing:     true,
		PublicMessage:  "reference unit is missing a net cost or sale price",
		DetailsAllowed: true,
	},
	CodeUnitNameMissing: {
		Retryable:      false,
		UserFacing:     true,
		PublicMessage:  "one or more units are missing a name",
		DetailsAllowed: true,
	},
	CodePieceEconomics: {
		Retryable:      false,
		UserFacing:     true,
		PublicMessage:  "piece unit pricing is incomplete",
		DetailsAllowed: true,
	},
	CodeMissingMainCat: {
		Retryable:      false,
		UserFacing:     true,
		PublicMessage:  "a main category must be selected",
		DetailsAllowed: false,
	},
	CodeMissingCategory: {
		Retryable:      false,
		UserFacing:     true,
		PublicMessage:  "at least one category must be selected",
		DetailsAllowed: false,
	},
	CodeNotFound: {
		Retryable:      false,
		UserFacing:     false,
		PublicMessage:  "resource not found",
		DetailsAllowed: false,
	},
	CodeInternal: {
		Retryable:      true,
		UserFacing:     false,
		PublicMessage:  "internal error",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
