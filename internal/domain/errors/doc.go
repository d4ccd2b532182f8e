// Package errors defines the application errors surfaced to API clients.
// Each error carries the HTTP status and machine-readable code it maps to.
package errors
