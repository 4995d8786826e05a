// Package handlers implements the business logic behind each CLI command.
//
// Handlers load configuration, construct clients and delegate to the internal
// packages. Constructors are held in package variables so tests can replace
// them with fakes.
package handlers
