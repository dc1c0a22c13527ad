package markdown

import "errors"

var (
	// ErrHeaderLevel is returned by Header for levels outside [1, 6].
	ErrHeaderLevel = errors.New("markdown: header level out of range")
	// ErrListType is returned by List for an unrecognized ListType.
	ErrListType = errors.New("markdown: unknown list type")
)
