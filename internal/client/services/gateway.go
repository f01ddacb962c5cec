// Package services contains the application services of the TeamHub client:
// authentication and the typed resource APIs (tasks, sprints, groups). All
// network traffic goes through the Gateway so token attachment and
// refresh-and-retry behavior stay uniform.
package services

import "context"

// Gateway is the slice of the API client the services need. The concrete
// implementation is api.Client; tests provide lightweight stubs.
type Gateway interface {
	Request(ctx context.Context, method, endpoint string, body, out any) error
}
