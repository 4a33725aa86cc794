// Package models defines the server-side records persisted by the
// repositories and passed between services and transport.
package models
