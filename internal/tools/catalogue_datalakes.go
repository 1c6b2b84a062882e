package tools

import (
	"context"
	"encoding/base64"
	"io"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
)

func dataLakeTools() []entry {
	return []entry{
		{
			name:        "datalake_get",
			description: "Get details of a specific Data Lake",
			ids:         ids("dataLakeName", "Name of the Data Lake"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.DataLakes.Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "datalake_get_all",
			description: "Get all Data Lakes in the project",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.DataLakes.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "datalake_create",
			description: "Create a new Data Lake",
			body:        object("Data Lake configuration", map[string]any{"name": str()}, "name"),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.DataLakes.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "datalake_update",
			description: "Update an existing Data Lake",
			ids:         ids("dataLakeName", "Name of the Data Lake to update"),
			body:        object("Updated Data Lake configuration", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.DataLakes.Update(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "datalake_delete",
			description: "Delete a Data Lake",
			ids:         ids("dataLakeName", "Name of the Data Lake to delete"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.DataLakes.Delete(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "datalake_get_logs_stream",
			description: "Download the gzip-compressed query logs of a Data Lake as base64",
			ids:         ids("dataLakeName", "Name of the Data Lake"),
			options:     "Optional parameters such as startDate and endDate",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return encodeStream(c.DataLakes.GetLogsStream(ctx, in.ID(0), in.Options))
			},
		},
	}
}

// LogsStreamResult is the JSON shape returned for a compressed log download.
type LogsStreamResult struct {
	Data            string `json:"data"`
	Encoding        string `json:"encoding"`
	ContentEncoding string `json:"contentEncoding"`
}

// encodeStream drains rc fully and base64-encodes the raw gzip bytes.
func encodeStream(rc io.ReadCloser, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return LogsStreamResult{
		Data:            base64.StdEncoding.EncodeToString(data),
		Encoding:        "base64",
		ContentEncoding: "gzip",
	}, nil
}

func cloudProviderAccessTools() []entry {
	return []entry{
		{
			name:        "cloud_provider_access_get_all",
			description: "Get all cloud provider access roles for the project",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudProviderAccess.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "cloud_provider_access_create",
			description: "Create a cloud provider access role",
			body:        object("Role details", map[string]any{"providerName": str()}, "providerName"),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudProviderAccess.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "cloud_provider_access_update",
			description: "Authorize a cloud provider access role",
			ids:         ids("roleId", "ID of the role"),
			body: object("Authorization details", map[string]any{
				"providerName":      str(),
				"iamAssumedRoleArn": str(),
			}, "providerName"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudProviderAccess.Update(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "cloud_provider_access_delete",
			description: "Deauthorize a cloud provider access role",
			ids:         ids("cloudProvider", "Cloud provider name, e.g. AWS", "roleId", "ID of the role"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudProviderAccess.Delete(ctx, in.ID(0), in.ID(1), in.Options)
			},
		},
	}
}
