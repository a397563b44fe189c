// Package fault defines the coded errors surfaced by the intake and
// generation flows.
package fault

import (
	"errors"
	"fmt"
)

// Code identifies a failure class.
type Code string

const (
	// Fatal to the active intake or generation attempt.
	CodeUnsupportedInputFormat    Code = "UNSUPPORTED_INPUT_FORMAT"
	CodeEmptyExtractableText      Code = "EMPTY_EXTRACTABLE_TEXT"
	CodeMalformedExtractionResult Code = "MALFORMED_EXTRACTION_RESULT"
	CodeMissingRequiredField      Code = "MISSING_REQUIRED_FIELD"

	// Never fatal: degrades to an "unable to verify" verdict.
	CodeSecondaryCheckFailure Code = "SECONDARY_CHECK_FAILURE"
)

// Error is a coded failure with a user-facing message.
type Error struct {
	Code    Code
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
}

func NewUnsupportedInputFormat(fileName string) *Error {
	return &Error{
		Code:    CodeUnsupportedInputFormat,
		Message: "Only PDF and Word documents are supported",
		Details: fileName,
	}
}

func NewEmptyExtractableText(fileName string) *Error {
	return &Error{
		Code:    CodeEmptyExtractableText,
		Message: "No selectable text could be read from the document; it may be a scanned image",
		Details: fileName,
	}
}

func NewMalformedExtractionResult(details string) *Error {
	return &Error{
		Code:    CodeMalformedExtractionResult,
		Message: "Extraction service returned a malformed record",
		Details: details,
	}
}

func NewMissingRequiredField(label string) *Error {
	return &Error{
		Code:    CodeMissingRequiredField,
		Message: fmt.Sprintf("Required field %q has no value", label),
	}
}

func NewSecondaryCheckFailure(err error) *Error {
	return &Error{
		Code:    CodeSecondaryCheckFailure,
		Message: "Document verification could not be completed",
		Details: err.Error(),
	}
}

// CodeOf extracts the fault code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// IsFatal reports whether err must abort the active attempt. Secondary
// check failures always degrade instead; everything else, coded or not,
// aborts.
func IsFatal(err error) bool {
	return CodeOf(err) != CodeSecondaryCheckFailure
}
