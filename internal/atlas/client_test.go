package atlas

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDoer struct {
	requests []*Request
}

func (r *recordingDoer) Do(_ context.Context, req *Request) (any, error) {
	r.requests = append(r.requests, req)
	return map[string]any{"ok": true}, nil
}

func (r *recordingDoer) Stream(_ context.Context, req *Request) (io.ReadCloser, error) {
	r.requests = append(r.requests, req)
	return io.NopCloser(strings.NewReader("gz")), nil
}

func newTestClient(t *testing.T) (*Client, *recordingDoer) {
	t.Helper()
	doer := &recordingDoer{}
	c, err := New(Config{ProjectID: "p1"}, WithDoer(doer))
	require.NoError(t, err)
	return c, doer
}

func TestServiceRoutes(t *testing.T) {
	ctx := context.Background()
	body := map[string]any{"name": "x"}
	opts := Options{"pageNum": 2}

	tests := []struct {
		name   string
		call   func(c *Client) error
		method string
		path   string
		body   bool
	}{
		{"user get", func(c *Client) error { _, err := c.Users.Get(ctx, "alice", opts); return err }, http.MethodGet, "/groups/p1/databaseUsers/admin/alice", false},
		{"user update", func(c *Client) error { _, err := c.Users.Update(ctx, "alice", body, opts); return err }, http.MethodPatch, "/groups/p1/databaseUsers/admin/alice", true},
		{"cluster create", func(c *Client) error { _, err := c.Clusters.Create(ctx, body, opts); return err }, http.MethodPost, "/groups/p1/clusters", true},
		{"cluster processArgs", func(c *Client) error { _, err := c.Clusters.UpdateAdvancedConfiguration(ctx, "c0", body, opts); return err }, http.MethodPatch, "/groups/p1/clusters/c0/processArgs", true},
		{"cluster failover", func(c *Client) error { _, err := c.Clusters.TestPrimaryFailover(ctx, "c0", opts); return err }, http.MethodPost, "/groups/p1/clusters/c0/restartPrimaries", false},
		{"snapshot", func(c *Client) error { _, err := c.CloudBackups.GetSnapshot(ctx, "c0", "s1", opts); return err }, http.MethodGet, "/groups/p1/clusters/c0/backup/snapshots/s1", false},
		{"restore job", func(c *Client) error { _, err := c.CloudBackups.CreateRestoreJob(ctx, "c0", body, opts); return err }, http.MethodPost, "/groups/p1/clusters/c0/backup/restoreJobs", true},
		{"project by name", func(c *Client) error { _, err := c.Projects.GetByName(ctx, "my project", opts); return err }, http.MethodGet, "/groups/byName/my%20project", false},
		{"project remove user", func(c *Client) error { _, err := c.Projects.RemoveUser(ctx, "u1", opts); return err }, http.MethodDelete, "/groups/p1/users/u1", false},
		{"org projects", func(c *Client) error { _, err := c.Organizations.GetProjects(ctx, "o1", opts); return err }, http.MethodGet, "/orgs/o1/groups", false},
		{"access list cidr", func(c *Client) error { _, err := c.AccessList.Delete(ctx, "10.0.0.0/24", opts); return err }, http.MethodDelete, "/groups/p1/accessList/10.0.0.0%2F24", false},
		{"whitelist update", func(c *Client) error { _, err := c.Whitelist.Update(ctx, []any{body}, opts); return err }, http.MethodPost, "/groups/p1/whitelist", true},
		{"org event", func(c *Client) error { _, err := c.Events.GetByOrg(ctx, "o1", "e1", opts); return err }, http.MethodGet, "/orgs/o1/events/e1", false},
		{"search get all", func(c *Client) error { _, err := c.Search.GetAll(ctx, "c0", "db", "coll", opts); return err }, http.MethodGet, "/groups/p1/clusters/c0/fts/indexes/db/coll", false},
		{"search analyzers", func(c *Client) error { _, err := c.Search.UpsertAnalyzer(ctx, "c0", []any{body}, opts); return err }, http.MethodPut, "/groups/p1/clusters/c0/fts/analyzers", true},
		{"atlas user by name", func(c *Client) error { _, err := c.AtlasUsers.GetByName(ctx, "bob", opts); return err }, http.MethodGet, "/users/byName/bob", false},
		{"atlas users of project", func(c *Client) error { _, err := c.AtlasUsers.GetAll(ctx, opts); return err }, http.MethodGet, "/groups/p1/users", false},
		{"alert ack", func(c *Client) error { _, err := c.Alerts.Acknowledge(ctx, "a1", body, opts); return err }, http.MethodPatch, "/groups/p1/alerts/a1", true},
		{"datalake update", func(c *Client) error { _, err := c.DataLakes.Update(ctx, "lake", body, opts); return err }, http.MethodPatch, "/groups/p1/dataLakes/lake", true},
		{"cpa delete", func(c *Client) error { _, err := c.CloudProviderAccess.Delete(ctx, "AWS", "r1", opts); return err }, http.MethodDelete, "/groups/p1/cloudProviderAccess/AWS/r1", false},
		{"custom role", func(c *Client) error { _, err := c.CustomDBRoles.Get(ctx, "reader", opts); return err }, http.MethodGet, "/groups/p1/customDBRoles/roles/reader", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, doer := newTestClient(t)
			require.NoError(t, tt.call(c))
			require.Len(t, doer.requests, 1)

			req := doer.requests[0]
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, opts, req.Query)
			if tt.body {
				assert.NotNil(t, req.Body)
			} else {
				assert.Nil(t, req.Body)
			}
		})
	}
}

func TestDataLakeLogsStream(t *testing.T) {
	c, doer := newTestClient(t)

	rc, err := c.DataLakes.GetLogsStream(context.Background(), "lake", nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "gz", string(data))
	require.Len(t, doer.requests, 1)
	assert.Equal(t, "/groups/p1/dataLakes/lake/queryLogs.gz", doer.requests[0].Path)
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base URL")
}

func TestProjectID(t *testing.T) {
	c, _ := newTestClient(t)
	assert.Equal(t, "p1", c.ProjectID())
}
