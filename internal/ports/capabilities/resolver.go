package capabilities

import "context"

// Resolver responde si un usuario tiene una capability de plan
// (ej: "medications:groups" para grupos alternantes).
type Resolver interface {
	Has(ctx context.Context, userID string, capability string) (bool, error)
}
