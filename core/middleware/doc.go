// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the static handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - CORS: Attaches the permissive cross-origin headers to every response,
//     whatever its method or status.
//   - AccessLog: Prints one timestamped line per completed request, with a
//     success or failure glyph, and optionally a structured debug record.
//
// They are registered globally, in that order, ahead of the static file handler.
package middleware
