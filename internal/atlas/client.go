package atlas

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is used when Config.BaseURL is empty.
const DefaultBaseURL = "https://cloud.mongodb.com/api/atlas/v1.0"

// Config holds everything needed to talk to Atlas.
type Config struct {
	PublicKey  string
	PrivateKey string
	BaseURL    string
	ProjectID  string

	// RetryMax is the number of retries after the first attempt.
	RetryMax int
	// Timeout bounds each attempt, so with retries a call may take up to
	// (RetryMax+1)*Timeout plus backoff. Zero means no limit.
	Timeout   time.Duration
	UserAgent string
}

// Options are passed through as query parameters (pageNum, itemsPerPage,
// includeCount, envelope, pretty, ...).
type Options map[string]any

// HTTPOptionsKey is reserved for transport settings and never sent upstream.
const HTTPOptionsKey = "httpOptions"

// Request describes one upstream call. Path is relative to the base URL and
// already escaped.
type Request struct {
	Method string
	Path   string
	Query  Options
	Body   any
}

// Doer performs requests against the Atlas API.
type Doer interface {
	// Do performs a JSON request and returns the response body as JSON.
	Do(ctx context.Context, req *Request) (any, error)
	// Stream performs a request whose body is returned unread. The caller closes it.
	Stream(ctx context.Context, req *Request) (io.ReadCloser, error)
}

// Client is a read-only handle shared by every invocation.
type Client struct {
	projectID string
	doer      Doer

	Users               *UserService
	Clusters            *ClusterService
	CloudBackups        *CloudBackupService
	Projects            *ProjectService
	Organizations       *OrganizationService
	AccessList          *AccessListService
	Whitelist           *AccessListService
	Events              *EventService
	Search              *SearchService
	AtlasUsers          *AtlasUserService
	Alerts              *AlertService
	DataLakes           *DataLakeService
	CloudProviderAccess *CloudProviderAccessService
	CustomDBRoles       *CustomDBRoleService
}

// ClientOption customizes New.
type ClientOption func(*Client)

// WithDoer replaces the HTTP transport, typically with a test double.
func WithDoer(d Doer) ClientOption {
	return func(c *Client) {
		c.doer = d
	}
}

// New builds a Client. Unless WithDoer is given, requests go over HTTP with digest auth.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	c := &Client{projectID: cfg.ProjectID}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		d, err := NewHTTPDoer(cfg)
		if err != nil {
			return nil, err
		}
		c.doer = d
	}

	c.Users = &UserService{c}
	c.Clusters = &ClusterService{c}
	c.CloudBackups = &CloudBackupService{c}
	c.Projects = &ProjectService{c}
	c.Organizations = &OrganizationService{c}
	c.AccessList = &AccessListService{client: c, resource: "accessList"}
	c.Whitelist = &AccessListService{client: c, resource: "whitelist"}
	c.Events = &EventService{c}
	c.Search = &SearchService{c}
	c.AtlasUsers = &AtlasUserService{c}
	c.Alerts = &AlertService{c}
	c.DataLakes = &DataLakeService{c}
	c.CloudProviderAccess = &CloudProviderAccessService{c}
	c.CustomDBRoles = &CustomDBRoleService{c}
	return c, nil
}

// ProjectID returns the project all group-scoped calls target.
func (c *Client) ProjectID() string {
	return c.projectID
}

func (c *Client) do(ctx context.Context, method, path string, body any, opts Options) (any, error) {
	return c.doer.Do(ctx, &Request{Method: method, Path: path, Query: opts, Body: body})
}

func (c *Client) get(ctx context.Context, path string, opts Options) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *Client) delete(ctx context.Context, path string, opts Options) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// escapedPath joins segments into "/a/b/c", escaping each one so that values such
// as CIDR blocks ("10.0.0.0/24") stay a single segment.
func escapedPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// groupPath is escapedPath under /groups/{projectId}.
func (c *Client) groupPath(segments ...string) string {
	return escapedPath(append([]string{"groups", c.projectID}, segments...)...)
}
