// Package config provides configuration management for atlas-mcp.
//
// Configuration is loaded from multiple sources and merged in a fixed order,
// with later sources overriding earlier ones:
//
//  1. Defaults (embedded in the binary)
//  2. User configuration (~/.config/atlas-mcp/config.yaml)
//  3. Project configuration (./.atlas-mcp/config.yaml)
//  4. An explicit file passed with --config
//  5. Environment variables
//
// # Configuration Structure
//
//	atlas:
//	  publicKey: "abcdefgh"
//	  privateKey: "00000000-0000-0000-0000-000000000000"
//	  projectId: "5f1a2b3c4d5e6f7a8b9c0d1e"
//	  baseUrl: "https://cloud.mongodb.com/api/atlas/v1.0"
//	  retryMax: 3
//	  timeout: 60s
//
//	server:
//	  transport: "stdio"  # or "sse", "streamable-http"
//	  host: "localhost"
//	  port: 8090
//
//	logging:
//	  level: "info"
//	  format: "text"  # or "json"
//	  file: ""        # optional rotated log file
//
// # Environment Variables
//
// MONGODB_ATLAS_PUBLIC_KEY, MONGODB_ATLAS_PRIVATE_KEY and MONGODB_ATLAS_PROJECT_ID
// are required, either through the environment or a config file.
// MONGODB_ATLAS_BASE_URL is optional.
//
// Credentials placed in a project configuration file end up in version control;
// prefer the environment or the user file for keys.
package config
