// Package models defines request and response types for the bindman
// REST API. All types are JSON-serializable.
package models

// ErrorResponse represents an API error response. Detail carries the
// verbatim output of a failed nameserver tool when there is one.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
