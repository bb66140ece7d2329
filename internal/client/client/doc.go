// Package client talks to the diary JSON API.
//
// HTTPClient implements Client over net/http. Server responses are mapped
// to sentinel errors (ErrUnavailable, ErrUnauthorized, ErrNotFound,
// ErrConflict, ErrExportDisabled) that callers match with errors.Is; the
// server's message and per-field validation errors are kept on *APIError.
package client
