package resource_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/ipfs/go-datastore"
	"github.com/numplan/go-phonemeta/resource"
	"github.com/stretchr/testify/require"
)

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"PhoneNumberMetadata_US": &fstest.MapFile{Data: []byte("us-metadata")},
	}
	loader := resource.NewFSLoader(fsys)

	rc, err := loader.Load(context.Background(), "PhoneNumberMetadata_US")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "us-metadata", string(data))

	_, err = loader.Load(context.Background(), "PhoneNumberMetadata_ZZ")
	require.ErrorIs(t, err, resource.ErrNotFound)
	require.ErrorContains(t, err, "PhoneNumberMetadata_ZZ")
}

func TestDatastoreLoader(t *testing.T) {
	ds := datastore.NewMapDatastore()
	err := ds.Put(context.Background(), datastore.NewKey("PhoneNumberMetadata_FR"), []byte("fr-metadata"))
	require.NoError(t, err)

	loader := resource.NewDatastoreLoader(ds)

	rc, err := loader.Load(context.Background(), "PhoneNumberMetadata_FR")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "fr-metadata", string(data))

	_, err = loader.Load(context.Background(), "PhoneNumberMetadata_DE")
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestHTTPLoader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		switch req.URL.Path {
		case "/metadata/PhoneNumberMetadata_GB":
			w.Write([]byte("gb-metadata"))
		case "/metadata/PhoneNumberMetadata_ZZ":
			http.Error(w, "no such region", http.StatusNotFound)
		default:
			http.Error(w, "metadata server unavailable", http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	loader, err := resource.NewHTTPLoader(server.URL+"/metadata", nil, 0)
	require.NoError(t, err)
	loader.AddHeader("Authorization", "Bearer test-token")

	rc, err := loader.Load(context.Background(), "PhoneNumberMetadata_GB")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "gb-metadata", string(data))
	require.Equal(t, "Bearer test-token", gotAuth)

	_, err = loader.Load(context.Background(), "PhoneNumberMetadata_ZZ")
	require.ErrorIs(t, err, resource.ErrNotFound)

	_, err = loader.Load(context.Background(), "PhoneNumberMetadata_XX")
	var statusErr *resource.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Status())
	require.ErrorContains(t, err, "metadata server unavailable")
}

func TestNewHTTPLoaderRejectsBadURL(t *testing.T) {
	_, err := resource.NewHTTPLoader("ftp://example.com/metadata", nil, 0)
	require.Error(t, err)
}
