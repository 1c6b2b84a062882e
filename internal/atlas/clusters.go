package atlas

import (
	"context"
	"net/http"
)

// ClusterService manages clusters of the configured project.
type ClusterService struct{ client *Client }

func (s *ClusterService) Get(ctx context.Context, name string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", name), opts)
}

func (s *ClusterService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters"), opts)
}

func (s *ClusterService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("clusters"), body, opts)
}

func (s *ClusterService) Update(ctx context.Context, name string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("clusters", name), body, opts)
}

func (s *ClusterService) Delete(ctx context.Context, name string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("clusters", name), opts)
}

func (s *ClusterService) GetAdvancedConfiguration(ctx context.Context, name string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", name, "processArgs"), opts)
}

func (s *ClusterService) UpdateAdvancedConfiguration(ctx context.Context, name string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("clusters", name, "processArgs"), body, opts)
}

// TestPrimaryFailover restarts the primaries of the cluster's replica sets.
func (s *ClusterService) TestPrimaryFailover(ctx context.Context, name string, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("clusters", name, "restartPrimaries"), nil, opts)
}

// CloudBackupService reads snapshots and manages restore jobs.
type CloudBackupService struct{ client *Client }

func (s *CloudBackupService) GetSnapshots(ctx context.Context, clusterName string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", clusterName, "backup", "snapshots"), opts)
}

func (s *CloudBackupService) GetSnapshot(ctx context.Context, clusterName, snapshotID string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", clusterName, "backup", "snapshots", snapshotID), opts)
}

func (s *CloudBackupService) GetRestoreJob(ctx context.Context, clusterName, restoreJobID string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", clusterName, "backup", "restoreJobs", restoreJobID), opts)
}

func (s *CloudBackupService) CreateRestoreJob(ctx context.Context, clusterName string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("clusters", clusterName, "backup", "restoreJobs"), body, opts)
}

// SearchService manages Atlas Search indexes and analyzers.
type SearchService struct{ client *Client }

func (s *SearchService) Get(ctx context.Context, clusterName, indexID string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", clusterName, "fts", "indexes", indexID), opts)
}

func (s *SearchService) GetAll(ctx context.Context, clusterName, databaseName, collectionName string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", clusterName, "fts", "indexes", databaseName, collectionName), opts)
}

func (s *SearchService) Create(ctx context.Context, clusterName string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("clusters", clusterName, "fts", "indexes"), body, opts)
}

func (s *SearchService) Update(ctx context.Context, clusterName, indexID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("clusters", clusterName, "fts", "indexes", indexID), body, opts)
}

func (s *SearchService) Delete(ctx context.Context, clusterName, indexID string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("clusters", clusterName, "fts", "indexes", indexID), opts)
}

func (s *SearchService) GetAllAnalyzers(ctx context.Context, clusterName string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("clusters", clusterName, "fts", "analyzers"), opts)
}

// UpsertAnalyzer replaces the full set of custom analyzers on the cluster.
func (s *SearchService) UpsertAnalyzer(ctx context.Context, clusterName string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPut, s.client.groupPath("clusters", clusterName, "fts", "analyzers"), body, opts)
}
