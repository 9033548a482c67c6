package model

import "errors"

// ErrClosed is returned once the backing wallet has been closed.
var ErrClosed = errors.New("wallet is closed")
