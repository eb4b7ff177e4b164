// Package api contains the request validation rules and the JSON response
// envelopes shared by the HTTP surface and the CLI output.
package api
