package internalerror

import (
	"errors"
)

var (
	InvalidRange = errors.New("Invalid address range")
	InvalidInput = errors.New("Invalid input")
)
