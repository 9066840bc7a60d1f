package parse

import "errors"

var (
	// ErrParse wraps every fatal parse failure: JSON text that does
	// not decode, or a markup tokenizer error. Inputs recognized as
	// neither format are not errors; Parse returns (nil, nil) for
	// those.
	ErrParse = errors.New("parse error")
)
