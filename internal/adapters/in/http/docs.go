// Package http is the inbound HTTP adapter. It exposes the order, bot,
// restaurant, map, and simulation operations over an echo server, streams
// fleet snapshots via server-sent events, and serves prometheus metrics.
//
// The adapter is deliberately thin: requests are parsed into commands and
// queries, handed to the application layer, and the resulting read models
// are serialized to JSON. Domain errors are classified at this boundary
// into HTTP status codes; no business rules live here.
package http
