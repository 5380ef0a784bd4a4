package lsp

import "fmt"

// InvalidEnumValueError is returned when a numeric enum field carries an
// integer outside the set the protocol defines for it.
type InvalidEnumValueError struct {
	Type     string
	Value    int
	Expected string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s: expected value of %s, got %d", e.Type, e.Expected, e.Value)
}

// NoVariantMatchedError is returned when none of an untagged union's
// variants accepted the JSON value.
type NoVariantMatchedError struct {
	Type string
}

func (e *NoVariantMatchedError) Error() string {
	return fmt.Sprintf("%s: data did not match any variant", e.Type)
}

// InvalidFlagBitsError is returned when a bitflag integer has bits set
// outside the known flag set.
type InvalidFlagBitsError struct {
	Type  string
	Value int
}

func (e *InvalidFlagBitsError) Error() string {
	return fmt.Sprintf("invalid %s: unknown flag bits in %d", e.Type, e.Value)
}

// TokenBlobLengthError is returned when a base64 token string decodes to
// a byte length that is not a whole number of 8-byte records.
type TokenBlobLengthError struct {
	Length int
}

func (e *TokenBlobLengthError) Error() string {
	return fmt.Sprintf("semantic highlighting tokens: %d bytes is not a multiple of 8", e.Length)
}

// TokenArrayLengthError is returned when a flat semantic token array has
// a length that is not divisible by 5.
type TokenArrayLengthError struct {
	Length int
}

func (e *TokenArrayLengthError) Error() string {
	return fmt.Sprintf("semantic tokens: data length %d is not divisible by 5", e.Length)
}

// InvalidTagSupportShapeError is returned when a tagSupport capability
// field is neither a boolean, an object, nor absent.
type InvalidTagSupportShapeError struct{}

func (e *InvalidTagSupportShapeError) Error() string {
	return "tagSupport: expected boolean or object"
}

// UnknownMethodError is returned by the method registry for a method name
// it has no entry for.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q", e.Method)
}
