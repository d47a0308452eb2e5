// Package api handles incoming HTTP requests for tasks, request validation
// and response formatting. It adapts the JSON wire format to the task
// service, translating HTTP concerns to business operations and domain
// errors back to status codes.
package api
