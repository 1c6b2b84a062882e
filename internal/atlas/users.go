package atlas

import (
	"context"
	"net/http"
)

// UserService manages database users of the configured project.
type UserService struct{ client *Client }

func (s *UserService) Get(ctx context.Context, username string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("databaseUsers", "admin", username), opts)
}

func (s *UserService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("databaseUsers"), opts)
}

func (s *UserService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("databaseUsers"), body, opts)
}

func (s *UserService) Update(ctx context.Context, username string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("databaseUsers", "admin", username), body, opts)
}

func (s *UserService) Delete(ctx context.Context, username string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("databaseUsers", "admin", username), opts)
}

// AtlasUserService manages Atlas platform users (people with console access).
type AtlasUserService struct{ client *Client }

func (s *AtlasUserService) GetByName(ctx context.Context, username string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("users", "byName", username), opts)
}

func (s *AtlasUserService) GetByID(ctx context.Context, userID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("users", userID), opts)
}

// GetAll lists the users of the configured project.
func (s *AtlasUserService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("users"), opts)
}

func (s *AtlasUserService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, escapedPath("users"), body, opts)
}

func (s *AtlasUserService) Update(ctx context.Context, userID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, escapedPath("users", userID), body, opts)
}

// CustomDBRoleService manages custom database roles.
type CustomDBRoleService struct{ client *Client }

func (s *CustomDBRoleService) Get(ctx context.Context, roleName string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("customDBRoles", "roles", roleName), opts)
}

func (s *CustomDBRoleService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("customDBRoles", "roles"), opts)
}

func (s *CustomDBRoleService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath("customDBRoles", "roles"), body, opts)
}

func (s *CustomDBRoleService) Update(ctx context.Context, roleName string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("customDBRoles", "roles", roleName), body, opts)
}

func (s *CustomDBRoleService) Delete(ctx context.Context, roleName string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("customDBRoles", "roles", roleName), opts)
}
