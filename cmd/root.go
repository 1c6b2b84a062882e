package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const binaryName = "atlas-mcp"

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it behaves exactly like `atlas-mcp serve`.
var rootCmd = &cobra.Command{
	Use:   binaryName,
	Short: "Expose the MongoDB Atlas management API as MCP tools",
	Long: `atlas-mcp is a Model Context Protocol server for the MongoDB Atlas
management API. It exposes clusters, database users, projects, access lists,
backups, search indexes, alerts, data lakes and more as MCP tools that an AI
assistant can call.

Credentials come from MONGODB_ATLAS_PUBLIC_KEY, MONGODB_ATLAS_PRIVATE_KEY and
MONGODB_ATLAS_PROJECT_ID, or from the atlas section of a config file.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing credentials, failed tool calls)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "atlas-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	// Assigned here; referencing runServe in the literal would be an initialization cycle.
	rootCmd.RunE = runServe
	addServeFlags(rootCmd)
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
