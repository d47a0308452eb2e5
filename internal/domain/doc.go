// Package domain contains the core business entities, value objects, and
// domain errors of the task tracker. It is independent of storage and
// delivery concerns.
package domain
