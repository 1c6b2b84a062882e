package tools

import (
	"context"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
)

func databaseUserTools() []entry {
	return []entry{
		{
			name:        "user_get",
			description: "Get a specific database user by username",
			ids:         ids("username", "Username of the database user"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Users.Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "user_get_all",
			description: "Get all database users",
			options:     "Optional parameters for pagination and filtering",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Users.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "user_create",
			description: "Create a new database user",
			body: object("User details for creation", map[string]any{
				"username": str(),
				"password": str(),
				"roles": map[string]any{
					"type":        "array",
					"description": "Array of user roles",
					"minItems":    1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"roleName":     str(),
							"databaseName": str(),
						},
						"required": []string{"roleName", "databaseName"},
					},
				},
				"databaseName": str(),
			}, "username", "password", "roles"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Users.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "user_update",
			description: "Update an existing database user",
			ids:         ids("username", "Username of the user to update"),
			body:        object("Updated user details", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Users.Update(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "user_delete",
			description: "Delete a database user",
			ids:         ids("username", "Username of the user to delete"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.Users.Delete(ctx, in.ID(0), in.Options)
			},
		},
	}
}

func atlasUserTools() []entry {
	return []entry{
		{
			name:        "atlas_user_get_by_name",
			description: "Get an Atlas user by username",
			ids:         ids("username", "Atlas username (email address)"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.AtlasUsers.GetByName(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "atlas_user_get_by_id",
			description: "Get an Atlas user by ID",
			ids:         ids("userId", "Atlas user ID"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.AtlasUsers.GetByID(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "atlas_user_get_all",
			description: "Get all Atlas users of the project",
			options:     "Optional parameters for pagination",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.AtlasUsers.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "atlas_user_create",
			description: "Create a new Atlas user",
			body: object("Atlas user details", map[string]any{
				"username":     str(),
				"password":     str(),
				"emailAddress": str(),
				"firstName":    str(),
				"lastName":     str(),
				"country":      str(),
				"roles":        map[string]any{"type": "array", "items": obj()},
			}, "username", "password", "emailAddress", "firstName", "lastName", "country"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.AtlasUsers.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "atlas_user_update",
			description: "Update an existing Atlas user",
			ids:         ids("userId", "Atlas user ID"),
			body:        object("Updated Atlas user details", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.AtlasUsers.Update(ctx, in.ID(0), in.Body, in.Options)
			},
		},
	}
}

func customDBRoleTools() []entry {
	return []entry{
		{
			name:        "custom_db_role_get",
			description: "Get a custom database role by name",
			ids:         ids("roleName", "Name of the custom role"),
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CustomDBRoles.Get(ctx, in.ID(0), in.Options)
			},
		},
		{
			name:        "custom_db_role_get_all",
			description: "Get all custom database roles in the project",
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CustomDBRoles.GetAll(ctx, in.Options)
			},
		},
		{
			name:        "custom_db_role_create",
			description: "Create a new custom database role",
			body: object("Custom role definition", map[string]any{
				"roleName":       str(),
				"actions":        map[string]any{"type": "array", "items": obj()},
				"inheritedRoles": map[string]any{"type": "array", "items": obj()},
			}, "roleName"),
			effect: Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CustomDBRoles.Create(ctx, in.Body, in.Options)
			},
		},
		{
			name:        "custom_db_role_update",
			description: "Update a custom database role",
			ids:         ids("roleName", "Name of the custom role to update"),
			body:        object("Updated role definition", nil),
			effect:      Write,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CustomDBRoles.Update(ctx, in.ID(0), in.Body, in.Options)
			},
		},
		{
			name:        "custom_db_role_delete",
			description: "Delete a custom database role",
			ids:         ids("roleName", "Name of the custom role to delete"),
			effect:      Destroy,
			call: func(ctx context.Context, c *atlas.Client, in *Input) (any, error) {
				return c.CustomDBRoles.Delete(ctx, in.ID(0), in.Options)
			},
		},
	}
}
