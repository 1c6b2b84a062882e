package tools

import (
	"context"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
)

func projectTools() []entry {
	return []entry{
		{
			name:        "project_get_by_id",
			description: "Get project details by ID",
			ids:         ids("projectId", "Project ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.GetByID(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "project_get_by_name",
			description: "Get project details by name",
			ids:         ids("projectName", "Project name"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.GetByName(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "project_get_all",
			description: "Get all projects",
			options:     "Optional parameters for pagination",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "project_create",
			description: "Create a new project",
			body: object("Project details", map[string]any{
				"name":  str(),
				"orgId": str(),
			}, "name", "orgId"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "project_delete",
			description: "Delete a project",
			ids:         ids("projectId", "ID of the project to delete"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.Delete(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "project_get_teams",
			description: "Get all teams assigned to a project",
			ids:         ids("projectId", "Project ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.GetTeams(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "project_assign_teams",
			description: "Assign teams to a project",
			ids:         ids("projectId", "Project ID"),
			body: array("Array of team assignments", map[string]any{
				"teamId":    str(),
				"roleNames": map[string]any{"type": "array", "items": str()},
			}, "teamId", "roleNames"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.AssignTeams(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "project_remove_user",
			description: "Remove a user from the project",
			ids:         ids("userId", "ID of the user to remove"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Projects.RemoveUser(ctx, in.ID(0), in.Options)
			},
		},
	}
}

func organizationTools() []entry {
	return []entry{
		{
			name:        "organization_get_by_id",
			description: "Get organization details by ID",
			ids:         ids("organizationId", "Organization ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.GetByID(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "organization_get_all",
			description: "Get all organizations",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "organization_get_users",
			description: "Get all users of an organization",
			ids:         ids("organizationId", "Organization ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.GetUsers(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "organization_get_projects",
			description: "Get all projects of an organization",
			ids:         ids("organizationId", "Organization ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.GetProjects(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "organization_rename",
			description: "Rename an organization",
			ids:         ids("organizationId", "Organization ID"),
			body:        object("New organization name", map[string]any{"name": str()}, "name"),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.Rename(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "organization_invite",
			description: "Invite a user to an organization",
			ids:         ids("organizationId", "Organization ID"),
			body: object("Invitation details", map[string]any{
				"username": str(),
				"roles":    map[string]any{"type": "array", "items": str()},
				"teamIds":  map[string]any{"type": "array", "items": str()},
			}, "username", "roles"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.Invite(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "organization_delete",
			description: "Delete an organization",
			ids:         ids("organizationId", "ID of the organization to delete"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Organizations.Delete(ctx, in.ID(0), in.Options)
			},
		},
	}
}

// accessListTools builds the five entry tools for one access list resource.
// The current accessList and the legacy whitelist expose the same surface.
// A nil create schema falls back to the update schema.
func accessListTools(prefix, entryArg, label string, create *bodyParam, service func(*atlas.Client) *atlas.AccessListService) []entry {
	entries := array("Array of IP "+label+" entries", map[string]any{
		"ipAddress":        str(),
		"cidrBlock":        str(),
		"awsSecurityGroup": str(),
		"comment":          str(),
		"deleteAfterDate":  str(),
	})
	if create == nil {
		create = entries
	}
	return []entry{
		{
			name:        prefix + "_get",
			description: "Get a specific IP " + label + " entry",
			ids:         ids(entryArg, "IP address, CIDR block or AWS security group of the entry"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return service(c).Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        prefix + "_get_all",
			description: "Get all IP " + label + " entries for the project",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return service(c).GetAll(ctx, in.Options)
			},
		},
		{
			name:        prefix + "_create",
			description: "Add IP addresses to the " + label,
			body:        create,
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return service(c).Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        prefix + "_update",
			description: "Update IP " + label + " entries",
			body:        entries,
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return service(c).Update(ctx, in.Body, in.Options)
			},
		},
		{
			name:        prefix + "_delete",
			description: "Delete an IP " + label + " entry",
			ids:         ids(entryArg, "IP address, CIDR block or AWS security group of the entry"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return service(c).Delete(ctx, in.ID(0), in.Options)
			},
		},
	}
}

func projectAccessListTools() []entry {
	create := array("Array of IP access list entries", map[string]any{
		"ipAddress": str(),
		"cidrBlock": str(),
		"comment":   str(),
	}, "ipAddress")
	return accessListTools("project_access_list", "accessListEntry", "access list", create,
		func(c *atlas.Client) *atlas.AccessListService { return c.AccessList })
}

func projectWhitelistTools() []entry {
	return accessListTools("project_whitelist", "whitelistEntry", "whitelist", nil,
		func(c *atlas.Client) *atlas.AccessListService { return c.Whitelist })
}

func eventTools() []entry {
	return []entry{
		{
			name:        "events_get",
			description: "Get details of a specific event",
			ids:         ids("eventId", "Event ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Events.Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "events_get_all",
			description: "Get all events for the project",
			options:     "Optional parameters for filtering and pagination",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Events.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "events_get_by_org",
			description: "Get details of a specific organization event",
			ids:         ids("organizationId", "Organization ID", "eventId", "Event ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Events.GetByOrg(ctx, in.ID(0), in.ID(1), in.Options)
			},
		},
		{
			name:        "events_get_all_by_org",
			description: "Get all events for an organization",
			ids:         ids("organizationId", "Organization ID"),
			options:     "Optional parameters for filtering and pagination",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Events.GetAllByOrg(ctx, in.ID(0), in.Options)
			},
		},
	}
}

func alertTools() []entry {
	return []entry{
		{
			name:        "alert_get",
			description: "Get details of a specific alert",
			ids:         ids("alertId", "Alert ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Alerts.Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "alert_get_all",
			description: "Get all alerts for the project",
			options:     "Optional parameters for filtering and pagination",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Alerts.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "alert_acknowledge",
			description: "Acknowledge an alert",
			ids:         ids("alertId", "Alert ID"),
			body: object("Acknowledgement details", map[string]any{
				"acknowledgedUntil":      str(),
				"acknowledgementComment": str(),
			}, "acknowledgedUntil"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Alerts.Acknowledge(ctx, in.ID(0), in.Body, in.Options)
			},
		},
	}
}
