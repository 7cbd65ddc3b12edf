// Package client wraps the Gatekeeper gRPC API for the CLI.
//
// GRPCClient keeps the current token pair and transparently refreshes an
// expired access token through a unary client interceptor: when a call fails
// with Unauthenticated carrying the expiry message, the interceptor rotates
// the tokens via RefreshToken and retries the call once.
//
// RPC errors are mapped to the package sentinels ErrUnauthorized and
// ErrUnavailable so the CLI can render friendly messages.
package client
