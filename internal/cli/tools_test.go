package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/tools"
)

func TestPrintToolListTable(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	reg := tools.NewRegistry()
	var out bytes.Buffer
	require.NoError(t, PrintToolList(&out, reg.Definitions(), OutputFormatTable))

	rendered := out.String()
	assert.Contains(t, rendered, "user_get_all")
	assert.Contains(t, rendered, "custom_db_role_delete")
	assert.Contains(t, rendered, "destroy")
	assert.Contains(t, rendered, "read")
	assert.Contains(t, rendered, "Total: 76")
}

func TestPrintToolListJSONKeepsOrder(t *testing.T) {
	reg := tools.NewRegistry()
	var out bytes.Buffer
	require.NoError(t, PrintToolList(&out, reg.Definitions(), OutputFormatJSON))

	var rows []toolSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, reg.Len())
	assert.Equal(t, reg.Names()[0], rows[0].Name)
	assert.Equal(t, reg.Names()[reg.Len()-1], rows[len(rows)-1].Name)

	lookup, _ := reg.Lookup("user_get")
	assert.Equal(t, lookup.Definition.Description, rows[0].Description)
	assert.True(t, rows[0].ReadOnly)
}

func TestPrintToolListYAML(t *testing.T) {
	reg := tools.NewRegistry()
	var out bytes.Buffer
	require.NoError(t, PrintToolList(&out, reg.Definitions()[:1], OutputFormatYAML))
	assert.Contains(t, out.String(), "name: user_get\n")
	assert.Contains(t, out.String(), "readOnly: true\n")
}

func TestDescribeTool(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	tool, ok := tools.NewRegistry().Lookup("atlas_search_get_all")
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, DescribeTool(&out, tool.Definition, OutputFormatTable))

	rendered := out.String()
	assert.Contains(t, rendered, "atlas_search_get_all")
	assert.Contains(t, rendered, "Arguments:")
	assert.Contains(t, rendered, "clusterName")
	assert.Contains(t, rendered, "collectionName")
	assert.Contains(t, rendered, "options")

	// Required arguments are listed before the optional options object.
	assert.Less(t, bytes.Index(out.Bytes(), []byte("clusterName")), bytes.Index(out.Bytes(), []byte("options")))
}

func TestDescribeToolJSON(t *testing.T) {
	tool, ok := tools.NewRegistry().Lookup("cluster_create")
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, DescribeTool(&out, tool.Definition, OutputFormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "cluster_create", decoded["name"])
	schema := decoded["inputSchema"].(map[string]any)
	assert.Contains(t, schema["required"], "body")
}
