package word

import "errors"

var ErrNotFound = errors.New("word not found")
