package mcache

import "fmt"

// MissingResourceError indicates that the loader has no resource for a
// looked-up key. This means the metadata resources are incomplete or the
// file prefix is wrong, not that the key is invalid.
type MissingResourceError struct {
	// Resource is the name of the resource that could not be found.
	Resource string
}

func (e *MissingResourceError) Error() string {
	return "missing metadata resource: " + e.Resource
}

// CorruptResourceError indicates that a resource could not be read or
// decoded as a record collection. It wraps the underlying failure.
type CorruptResourceError struct {
	// Resource is the name of the resource that failed to decode.
	Resource string
	// Err is the read or decode failure.
	Err error
}

func (e *CorruptResourceError) Error() string {
	return fmt.Sprintf("cannot load metadata resource %s: %s", e.Resource, e.Err)
}

func (e *CorruptResourceError) Unwrap() error {
	return e.Err
}

// EmptyResourceError indicates that a resource decoded successfully but
// contained no records.
type EmptyResourceError struct {
	// Resource is the name of the empty resource.
	Resource string
}

func (e *EmptyResourceError) Error() string {
	return "empty metadata resource: " + e.Resource
}
