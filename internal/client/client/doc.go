// Package client talks to the Freshify server for the CLI.
//
// GRPCClient implements Client over the JSON-coded gRPC service in
// internal/rpc. It attaches the access token to every call, refreshes it
// once when the server reports it expired, and maps status codes onto the
// sentinel errors in errors.go. InitDatabase opens the local sqlite cache.
package client
