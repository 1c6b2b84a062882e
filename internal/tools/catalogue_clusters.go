package tools

import (
	"context"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
)

func clusterTools() []entry {
	return []entry{
		{
			name:        "cluster_get",
			description: "Get details of a specific cluster",
			ids:         ids("clustername", "Name of the cluster"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "cluster_get_all",
			description: "Get all clusters in the project",
			options:     "Optional parameters for pagination",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "cluster_create",
			description: "Create a new cluster",
			body: object("Cluster configuration details", map[string]any{
				"name":             str(),
				"clusterType":      str(),
				"providerSettings": obj(),
			}, "name"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "cluster_update",
			description: "Update an existing cluster",
			ids:         ids("clustername", "Name of the cluster to update"),
			body:        object("Updated cluster configuration", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.Update(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "cluster_delete",
			description: "Delete a cluster",
			ids:         ids("clustername", "Name of the cluster to delete"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.Delete(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "cluster_get_advanced_configuration",
			description: "Get the advanced configuration options of a cluster",
			ids:         ids("clustername", "Name of the cluster"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.GetAdvancedConfiguration(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "cluster_update_advanced_configuration",
			description: "Update the advanced configuration options of a cluster",
			ids:         ids("clustername", "Name of the cluster"),
			body:        object("Advanced configuration options to change", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.UpdateAdvancedConfiguration(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "cluster_test_primary_failover",
			description: "Test a failover of the primary node of a cluster",
			ids:         ids("clustername", "Name of the cluster"),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Clusters.TestPrimaryFailover(ctx, in.ID(0), in.Options)
			},
		},
	}
}

func cloudBackupTools() []entry {
	return []entry{
		{
			name:        "cloud_backup_get_snapshots",
			description: "Get all cloud backup snapshots for a cluster",
			ids:         ids("clustername", "Name of the cluster"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudBackups.GetSnapshots(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "cloud_backup_get_snapshot",
			description: "Get details of a specific snapshot",
			ids:         ids("clustername", "Name of the cluster", "snapshotId", "ID of the snapshot"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudBackups.GetSnapshot(ctx, in.ID(0), in.ID(1), in.Options)
			},
		},
		{
			name:        "cloud_backup_get_restore_job",
			description: "Get details of a cloud backup restore job",
			ids:         ids("clustername", "Name of the cluster", "restoreJobId", "ID of the restore job"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudBackups.GetRestoreJob(ctx, in.ID(0), in.ID(1), in.Options)
			},
		},
		{
			name:        "cloud_backup_create_restore_job",
			description: "Restore a cloud backup snapshot",
			ids:         ids("clustername", "Name of the cluster whose snapshot is restored"),
			body: object("Restore job details", map[string]any{
				"snapshotId":        str(),
				"deliveryType":      str(),
				"targetClusterName": str(),
				"targetGroupId":     str(),
			}, "deliveryType"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CloudBackups.CreateRestoreJob(ctx, in.ID(0), in.Body, in.Options)
			},
		},
	}
}

func atlasSearchTools() []entry {
	return []entry{
		{
			name:        "atlas_search_get",
			description: "Get a specific Atlas Search index",
			ids:         ids("clusterName", "Name of the cluster", "indexId", "ID of the search index"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.Get(ctx, in.ID(0), in.ID(1), in.Options)
			},
		},
		{
			name:        "atlas_search_get_all",
			description: "Get all Atlas Search indexes for a cluster",
			ids: ids(
				"clusterName", "Name of the cluster",
				"databaseName", "Name of the database",
				"collectionName", "Name of the collection",
			),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.GetAll(ctx, in.ID(0), in.ID(1), in.ID(2), in.Options)
			},
		},
		{
			name:        "atlas_search_create",
			description: "Create a new Atlas Search index",
			ids:         ids("clusterName", "Name of the cluster"),
			body: object("Search index configuration", map[string]any{
				"name":       str(),
				"database":   str(),
				"collection": str(),
				"mappings":   obj(),
			}, "name", "database", "collection"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.Create(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "atlas_search_update",
			description: "Update an Atlas Search index",
			ids:         ids("clusterName", "Name of the cluster", "indexId", "ID of the search index"),
			body:        object("Updated search index configuration", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.Update(ctx, in.ID(0), in.ID(1), in.Body, in.Options)
			},
		},
		{
			name:        "atlas_search_delete",
			description: "Delete an Atlas Search index",
			ids:         ids("clusterName", "Name of the cluster", "indexId", "ID of the search index"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.Delete(ctx, in.ID(0), in.ID(1), in.Options)
			},
		},
		{
			name:        "atlas_search_get_all_analyzers",
			description: "Get all custom Atlas Search analyzers for a cluster",
			ids:         ids("clusterName", "Name of the cluster"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.GetAllAnalyzers(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "atlas_search_upsert_analyzer",
			description: "Replace the custom Atlas Search analyzers of a cluster",
			ids:         ids("clusterName", "Name of the cluster"),
			body: array("Array of analyzer definitions", map[string]any{
				"name":         str(),
				"baseAnalyzer": str(),
			}, "name", "baseAnalyzer"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Search.UpsertAnalyzer(ctx, in.ID(0), in.Body, in.Options)
			},
		},
	}
}
