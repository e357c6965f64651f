// Package queries contains the read side of the application layer.
// Each query is a guarded request object paired with a handler that reads
// through the repository ports and maps aggregates into flat read models.
// Queries never mutate state and never open a unit of work.
package queries
