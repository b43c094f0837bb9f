// Package service implements the dfserve demo: an account API whose
// endpoints are composed domain functions backed by a SQLite store.
//
// The package wires the full request path: configuration layering
// (file, env, flags) with optional hot reload, the HTTP surface that
// turns bodies and headers into input/environment values, and the
// translation of Result channels into status codes.
package service
