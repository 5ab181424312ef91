// Package middleware groups the Fiber middleware mounted by the start command.
//
// rayid runs first so that every request, including rejected ones, carries an
// X-Ray-ID. auth then guards the /remnant routes with the X-API-Key header;
// an empty configured key leaves the API open for local use.
package middleware
