package parse

import "errors"

var (
	ErrParse        = errors.New("parse error")
	ErrTooDeep      = errors.New("document nesting too deep")
	ErrDuplicateKey = errors.New("duplicate object key")
)
