// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "roleboard",
	Short: "RoleBoard is the backend for the role management dashboard",
	Long: `RoleBoard is the backend for the role management dashboard.
It manages users, roles, the permission reference set and their
assignments over a relational store, and serves them as a JSON API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute() //nolint:wrapcheck
}
