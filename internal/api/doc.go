// Package api contains the HTTP handlers, request/response models, and
// error mapping for the REST interface. Handlers stay thin: they decode and
// validate input, call a service, and translate the outcome to HTTP.
package api
