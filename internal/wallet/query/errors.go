package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when requested transactions are absent.
var ErrNotFound = errors.New("not found")

// NotFoundError names the hashes that were requested but not found.
type NotFoundError struct {
	Hashes []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("txs %s: %s", ErrNotFound, strings.Join(e.Hashes, ", "))
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
