// Package service contains the task tracker's business logic. It enforces
// validation and lifecycle rules, owns identifier generation, and implements
// the listing policy on top of the paging primitives of a store.TaskStore.
//
// The service depends on domain entities and the store interfaces, never on a
// specific storage implementation. It keeps no cached copies of tasks: every
// operation round-trips through the store.
//
// Errors returned to callers unwrap to domain.ErrInvalidInput or
// domain.ErrNotFound; the API layer maps those to HTTP status codes.
package service
