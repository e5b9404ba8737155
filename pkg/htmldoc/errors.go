package htmldoc

import "errors"

var (
	ErrParse           = errors.New("htmldoc: failed to parse document")
	ErrRender          = errors.New("htmldoc: failed to render document")
	ErrElementNotFound = errors.New("htmldoc: element not found")
)
