package atlas

import (
	"context"
	"io"
	"net/http"
)

// DataLakeService manages Atlas Data Lakes.
type DataLakeService struct{ client *Client }

func (s *DataLakeService) Get(ctx context.Context, name string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("dataLakes", name), opts)
}

func (s *DataLakeService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("dataLakes"), opts)
}

func (s *DataLakeService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("dataLakes"), body, opts)
}

func (s *DataLakeService) Update(ctx context.Context, name string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("dataLakes", name), body, opts)
}

func (s *DataLakeService) Delete(ctx context.Context, name string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("dataLakes", name), opts)
}

// GetLogsStream returns the gzip-compressed query log. The caller closes it.
func (s *DataLakeService) GetLogsStream(ctx context.Context, name string, opts Options) (io.ReadCloser, error) {
	return s.client.doer.Stream(ctx, &Request{
		Method: http.MethodGet,
		Path:   s.client.groupPath("dataLakes", name, "queryLogs.gz"),
		Query:  opts,
	})
}

// CloudProviderAccessService manages cloud provider IAM role links.
type CloudProviderAccessService struct{ client *Client }

func (s *CloudProviderAccessService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("cloudProviderAccess"), opts)
}

func (s *CloudProviderAccessService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("cloudProviderAccess"), body, opts)
}

func (s *CloudProviderAccessService) Update(ctx context.Context, roleID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("cloudProviderAccess", roleID), body, opts)
}

func (s *CloudProviderAccessService) Delete(ctx context.Context, cloudProvider, roleID string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("cloudProviderAccess", cloudProvider, roleID), opts)
}
