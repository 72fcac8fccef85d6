// Package api handles incoming HTTP requests for the autores routes and
// formats their responses. It translates HTTP concerns into calls on the
// author service and maps the service's errors back to status codes and
// the body shapes each route promises its clients.
package api
