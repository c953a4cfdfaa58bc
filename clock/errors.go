package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidTime は入力時刻が不正であることを表す。以下のエラーはすべてこれをラップする。
var ErrInvalidTime = errors.New("invalid time, expected 24HH:MM:SS")

var (
	ErrEmptyInput      = fmt.Errorf("%w: input is empty", ErrInvalidTime)
	ErrMalformedFormat = fmt.Errorf("%w: malformed format", ErrInvalidTime)
	ErrOutOfRange      = fmt.Errorf("%w: value out of range", ErrInvalidTime)
)
