package stats

import (
	"errors"
)

var (
	ErrEmpty   = errors.New("no finite values")
	ErrSamples = errors.New("not enough samples")
	ErrKernel  = errors.New("unknown kernel")
)
