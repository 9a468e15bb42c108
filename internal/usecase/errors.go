package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")
	// ErrUpstream marks every failure that originates at the data provider.
	ErrUpstream = crerr.New("upstream error")
)
