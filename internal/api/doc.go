// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts external clients to the content, history,
// quiz and stats services, translating HTTP concerns to application
// operations and mapping their errors to status codes.
package api
