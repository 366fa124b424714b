// Package binder decodes HTTP request bodies into typed request structs.
//
// JSON is strict: the media type must be application/json, unknown fields
// and trailing data are rejected and bodies are capped in size. Decoded
// strings are left exactly as sent, since password text must reach the
// analyzer unmodified.
package binder
