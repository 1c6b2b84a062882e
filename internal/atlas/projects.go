package atlas

import (
	"context"
	"net/http"
)

// ProjectService manages projects (groups).
type ProjectService struct{ client *Client }

func (s *ProjectService) GetByID(ctx context.Context, projectID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("groups", projectID), opts)
}

func (s *ProjectService) GetByName(ctx context.Context, projectName string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("groups", "byName", projectName), opts)
}

func (s *ProjectService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("groups"), opts)
}

func (s *ProjectService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, escapedPath("groups"), body, opts)
}

func (s *ProjectService) Delete(ctx context.Context, projectID string, opts Options) (any, error) {
	return s.client.delete(ctx, escapedPath("groups", projectID), opts)
}

func (s *ProjectService) GetTeams(ctx context.Context, projectID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("groups", projectID, "teams"), opts)
}

func (s *ProjectService) AssignTeams(ctx context.Context, projectID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, escapedPath("groups", projectID, "teams"), body, opts)
}

// RemoveUser removes a user from the configured project.
func (s *ProjectService) RemoveUser(ctx context.Context, userID string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath("users", userID), opts)
}

// OrganizationService manages organizations.
type OrganizationService struct{ client *Client }

func (s *OrganizationService) GetByID(ctx context.Context, orgID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("orgs", orgID), opts)
}

func (s *OrganizationService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("orgs"), opts)
}

func (s *OrganizationService) GetUsers(ctx context.Context, orgID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("orgs", orgID, "users"), opts)
}

func (s *OrganizationService) GetProjects(ctx context.Context, orgID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("orgs", orgID, "groups"), opts)
}

func (s *OrganizationService) Rename(ctx context.Context, orgID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, escapedPath("orgs", orgID), body, opts)
}

func (s *OrganizationService) Invite(ctx context.Context, orgID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, escapedPath("orgs", orgID, "invites"), body, opts)
}

func (s *OrganizationService) Delete(ctx context.Context, orgID string, opts Options) (any, error) {
	return s.client.delete(ctx, escapedPath("orgs", orgID), opts)
}

// AccessListService manages IP access entries. The same service backs both the
// current accessList resource and the legacy whitelist resource.
type AccessListService struct {
	client   *Client
	resource string
}

func (s *AccessListService) Get(ctx context.Context, entry string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath(s.resource, entry), opts)
}

func (s *AccessListService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath(s.resource), opts)
}

// Create adds entries; body is an array of {ipAddress|cidrBlock|awsSecurityGroup, comment}.
func (s *AccessListService) Create(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath(s.resource), body, opts)
}

// Update upserts entries. Atlas has no PATCH here; POST replaces matching entries.
func (s *AccessListService) Update(ctx context.Context, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPost, s.client.groupPath(s.resource), body, opts)
}

func (s *AccessListService) Delete(ctx context.Context, entry string, opts Options) (any, error) {
	return s.client.delete(ctx, s.client.groupPath(s.resource, entry), opts)
}

// EventService reads project and organization events.
type EventService struct{ client *Client }

func (s *EventService) Get(ctx context.Context, eventID string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("events", eventID), opts)
}

func (s *EventService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("events"), opts)
}

func (s *EventService) GetByOrg(ctx context.Context, orgID, eventID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("orgs", orgID, "events", eventID), opts)
}

func (s *EventService) GetAllByOrg(ctx context.Context, orgID string, opts Options) (any, error) {
	return s.client.get(ctx, escapedPath("orgs", orgID, "events"), opts)
}

// AlertService reads and acknowledges project alerts.
type AlertService struct{ client *Client }

func (s *AlertService) Get(ctx context.Context, alertID string, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("alerts", alertID), opts)
}

func (s *AlertService) GetAll(ctx context.Context, opts Options) (any, error) {
	return s.client.get(ctx, s.client.groupPath("alerts"), opts)
}

func (s *AlertService) Acknowledge(ctx context.Context, alertID string, body any, opts Options) (any, error) {
	return s.client.do(ctx, http.MethodPatch, s.client.groupPath("alerts", alertID), body, opts)
}
