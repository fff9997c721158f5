package errors

import (
	"errors"
	"fmt"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	Details any `json:"details,omitempty"`
}

// Dump flattens an error into a loggable snapshot of its cause chain.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
		if MetadataFor(te.Code()).DetailsAllowed {
			d.Details = te.Details()
		}
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	return d
}
