// Package resource supplies the raw bytes of named metadata resources to the
// metadata cache. A resource is one externally-supplied blob containing one
// encoded record collection, identified by name.
//
// Loaders are provided for file system trees (including metadata bundled
// with go:embed), HTTP metadata servers, and datastore-backed stores.
// Missing resources are reported with ErrNotFound so that callers can
// distinguish a deployment defect from a transient load failure.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrNotFound indicates that a loader has no resource with the requested
// name. Loaders wrap it with the resource name.
var ErrNotFound = errors.New("metadata resource not found")

// Loader loads named metadata resources. Ownership of the returned stream
// passes to the caller, which must close it.
type Loader interface {
	// Load returns the content of the named resource, or an error wrapping
	// ErrNotFound if no resource has that name.
	Load(ctx context.Context, name string) (io.ReadCloser, error)
	// String returns a description of the loader.
	String() string
}

// FSLoader loads metadata resources from a file system tree, such as an
// os.DirFS over a metadata directory or an embed.FS of bundled metadata.
type FSLoader struct {
	fsys fs.FS
}

var _ Loader = (*FSLoader)(nil)

// NewFSLoader creates a Loader that reads each resource from the file of the
// same name in fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

func (l *FSLoader) Load(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

func (l *FSLoader) String() string {
	return "fs"
}
