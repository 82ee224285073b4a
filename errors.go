package multiset

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrRecursiveNesting = errors.New("multiset contains itself")
)
