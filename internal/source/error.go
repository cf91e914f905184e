package source

import (
	"errors"
	"fmt"
)

var (
	ErrSource        = errors.New("source error")
	ErrConfiguration = fmt.Errorf("%w configuration", ErrSource)
)
