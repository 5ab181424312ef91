// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only defines the
// listening port, the API key and the request body limit, which bounds the
// size of raw logs posted for analysis.
package server
