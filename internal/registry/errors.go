package registry

import (
	"errors"
	"fmt"
)

// ErrMissingIndex marks rustdoc JSON whose top-level index object is absent.
var ErrMissingIndex = errors.New("missing top-level index object")

// NotFoundError is returned when neither an exact lookup nor alias
// resolution finds a struct. It names the path the caller asked for.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("struct %q not found: provide the full module path (e.g. \"alloc::string::String\", \"std::collections::HashMap\")", e.Path)
}

// IsNotFound reports whether err is a lookup miss rather than a build
// failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
