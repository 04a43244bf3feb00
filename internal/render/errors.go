package render

import "errors"

var errNoPages = errors.New("document has no pages")
