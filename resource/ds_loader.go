package resource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-datastore"
)

// DatastoreLoader loads metadata resources stored as values in a datastore,
// keyed by resource name. This allows metadata to be served out of any
// datastore-backed store shared with other components.
type DatastoreLoader struct {
	ds datastore.Datastore
}

var _ Loader = (*DatastoreLoader)(nil)

func NewDatastoreLoader(ds datastore.Datastore) *DatastoreLoader {
	return &DatastoreLoader{ds: ds}
}

func (l *DatastoreLoader) Load(ctx context.Context, name string) (io.ReadCloser, error) {
	val, err := l.ds.Get(ctx, datastore.NewKey(name))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(val)), nil
}

func (l *DatastoreLoader) String() string {
	return "datastore"
}
