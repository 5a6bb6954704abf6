package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultRetryWaitMin = time.Second
	defaultRetryWaitMax = 10 * time.Second
)

// HTTPLoader fetches metadata resources from an HTTP server that serves one
// encoded record collection at <base-url>/<resource-name>.
type HTTPLoader struct {
	url    *url.URL
	client *http.Client
	header http.Header
}

var _ Loader = (*HTTPLoader)(nil)

// NewHTTPLoader creates a Loader that fetches resources from the server at
// srcURL. If client is nil, http.DefaultClient is used. If retries is
// non-zero, transport failures and server errors are retried up to that many
// times with backoff before the load fails.
func NewHTTPLoader(srcURL string, client *http.Client, retries int) (*HTTPLoader, error) {
	u, err := url.Parse(srcURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url must have http or https scheme: %s", srcURL)
	}

	if client == nil {
		client = http.DefaultClient
	}
	if retries != 0 {
		rclient := &retryablehttp.Client{
			HTTPClient:   client,
			RetryWaitMin: defaultRetryWaitMin,
			RetryWaitMax: defaultRetryWaitMax,
			RetryMax:     retries,
			CheckRetry:   retryablehttp.DefaultRetryPolicy,
			Backoff:      retryablehttp.DefaultBackoff,
		}
		client = rclient.StandardClient()
	}

	return &HTTPLoader{
		url:    u,
		client: client,
	}, nil
}

// AddHeader adds an HTTP header sent with every load request.
func (l *HTTPLoader) AddHeader(key, value string) {
	if l.header == nil {
		l.header = make(map[string][]string)
	}
	l.header.Add(key, value)
}

func (l *HTTPLoader) Load(ctx context.Context, name string) (io.ReadCloser, error) {
	u := l.url.JoinPath(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for key, vals := range l.header {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, NewStatusError(nil, resp.StatusCode)
		}
		return nil, FromResponse(resp.StatusCode, body)
	}
	return resp.Body, nil
}

func (l *HTTPLoader) String() string {
	return l.url.String()
}
