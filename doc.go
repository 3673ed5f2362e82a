// Package main provides the entry point for the RoleBoard backend.
// It runs a web service using the Fiber framework that manages users, roles
// and permission assignments over a relational store and exposes them as a
// JSON API for the dashboard frontend. The application uses gorm for data
// persistence and keeps the role-permission graph consistent under
// concurrent mutation.
package main
