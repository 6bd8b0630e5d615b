package charts

import (
	"errors"
)

var (
	ErrEmpty   = errors.New("no data to plot")
	ErrColumns = errors.New("not enough columns")
	ErrLength  = errors.New("columns length mismatch")
	ErrColor   = errors.New("invalid color")
	ErrStyle   = errors.New("invalid line style")
	ErrFormat  = errors.New("invalid data format")
)
