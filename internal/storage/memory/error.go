package memory

import "errors"

var (
	ErrAlreadyLoaded = errors.New("catalog already loaded")
	ErrDuplicate     = errors.New("duplicate resort")
)
