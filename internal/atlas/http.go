package atlas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mongodb-forks/digest"

	"github.com/montumodi/mongodb-atlas-mcp-server/pkg/logging"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeGzip = "application/gzip"
)

// HTTPDoer talks to Atlas over HTTPS with digest authentication and retries.
type HTTPDoer struct {
	baseURL   string
	userAgent string
	client    *retryablehttp.Client
}

// NewHTTPDoer builds the production Doer from cfg.
func NewHTTPDoer(cfg Config) (*HTTPDoer, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", base)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.Logger = logging.NewRetryLogger("AtlasHTTP")
	// hand the final response back so the Atlas error body can be decoded
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = cfg.Timeout

	dt := digest.NewTransport(cfg.PublicKey, cfg.PrivateKey)
	dt.Transport = rc.HTTPClient.Transport
	rc.HTTPClient.Transport = dt

	ua := cfg.UserAgent
	if ua == "" {
		ua = "mongodb-atlas-mcp-server"
	}

	return &HTTPDoer{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: ua,
		client:    rc,
	}, nil
}

// Do implements Doer.
func (d *HTTPDoer) Do(ctx context.Context, r *Request) (any, error) {
	resp, err := d.send(ctx, r, mediaTypeJSON)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newErrorResponse(resp, body)
	}
	return decodeBody(body)
}

// Stream implements Doer.
func (d *HTTPDoer) Stream(ctx context.Context, r *Request) (io.ReadCloser, error) {
	resp, err := d.send(ctx, r, mediaTypeGzip)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, newErrorResponse(resp, body)
	}
	return resp.Body, nil
}

func (d *HTTPDoer) send(ctx context.Context, r *Request, accept string) (*http.Response, error) {
	target := d.baseURL + r.Path
	if q := encodeQuery(r.Query); q != "" {
		target += "?" + q
	}

	var body any
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", d.userAgent)
	if r.Body != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}

	logging.Debug("AtlasHTTP", "%s %s", r.Method, r.Path)
	return d.client.Do(req)
}

// decodeBody validates a 2xx body and returns it as raw JSON so the upstream key
// order survives re-serialization. An empty body becomes an empty object.
func decodeBody(body []byte) (any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("decoding response body: invalid JSON (%s)", truncate(string(trimmed), 80))
	}
	return json.RawMessage(trimmed), nil
}

// encodeQuery renders options as a stable query string, skipping HTTPOptionsKey
// and nil values. Slices repeat the key.
func encodeQuery(opts Options) string {
	if len(opts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		if k == HTTPOptionsKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		switch v := opts[k].(type) {
		case nil:
		case []any:
			for _, item := range v {
				values.Add(k, queryValue(item))
			}
		case []string:
			for _, item := range v {
				values.Add(k, item)
			}
		default:
			values.Add(k, queryValue(v))
		}
	}
	return values.Encode()
}

func queryValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case map[string]any, []any:
		// Nested values are sent as JSON.
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	default:
		return fmt.Sprint(t)
	}
}
