package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLIClientWithEndpoint(t *testing.T) {
	endpoint := "http://localhost:8090/mcp"
	client := NewCLIClientWithEndpoint(endpoint)

	assert.NotNil(t, client)
	assert.Equal(t, endpoint, client.endpoint)
	assert.Nil(t, client.inProcess)
	assert.Equal(t, defaultTimeout, client.timeout)
}

func TestCLIClient_NotConnected(t *testing.T) {
	client := NewCLIClientWithEndpoint("http://localhost:8090/mcp")

	_, err := client.CallTool(context.Background(), "user_get_all", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")

	_, err = client.ListTools(context.Background())
	require.Error(t, err)
}

func TestCLIClient_Close(t *testing.T) {
	client := NewCLIClientWithEndpoint("http://localhost:8090/mcp")

	assert.NotPanics(t, func() {
		assert.NoError(t, client.Close())
	})
}

func TestCLIClient_Connect_InvalidEndpoint(t *testing.T) {
	client := NewCLIClientWithEndpoint("invalid-endpoint")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Connect(ctx)
	assert.Error(t, err)
	assert.Nil(t, client.client)
}

func TestCLIClient_InProcess(t *testing.T) {
	srv, doer := newInProcessServer(t, map[string]any{"results": []any{}, "totalCount": 0})
	client := NewInProcessCLIClient(srv)

	ctx := context.Background()
	require.NoError(t, client.Connect(ctx))
	defer client.Close()

	listed, err := client.ListTools(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, listed)

	out, err := client.CallToolJSON(ctx, "events_get_all", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"results": []interface{}{}, "totalCount": float64(0)}, out)
	assert.Equal(t, "/groups/p1/events", doer.paths[0])
}
