// Package pathlike defines the capability of values that can yield a
// filesystem path.
package pathlike

import (
	"errors"
	"fmt"
)

// ErrNotPathLike is returned by ToPath for values that are neither strings
// nor PathLike.
var ErrNotPathLike = errors.New("value is not path-like")

// PathLike is implemented by values that can produce a path string.
type PathLike interface {
	ToPath() string
}

// Responds reports whether v offers the PathLike capability.
func Responds(v any) bool {
	_, ok := v.(PathLike)
	return ok
}

// ToPath converts v to a path string. Strings are returned as they are and
// PathLike values are asked for their path.
func ToPath(v any) (string, error) {
	switch p := v.(type) {
	case string:
		return p, nil
	case PathLike:
		return p.ToPath(), nil
	}

	return "", fmt.Errorf("%w: %T", ErrNotPathLike, v)
}
