// Package clientip resolves the client address of an HTTP request.
//
// By default only RemoteAddr is used. Deployments behind a proxy opt in to
// forwarding headers with WithTrustedHeaders; headers are consulted in the
// given order and the first valid address wins. X-Forwarded-For is read
// left to right.
//
// The resolved address keys per-client rate limiting in pkg/ratelimiter.
package clientip
