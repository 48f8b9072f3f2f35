package common

import "context"

type contextKey string

const authAdminContextKey contextKey = "authAdmin"

// AuthenticatedAdmin represents the JWT-derived admin principal.
type AuthenticatedAdmin struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ContextWithAdmin stores the authenticated admin into context.
func ContextWithAdmin(ctx context.Context, admin AuthenticatedAdmin) context.Context {
	return context.WithValue(ctx, authAdminContextKey, admin)
}

// AdminFromContext extracts the authenticated admin from context.
func AdminFromContext(ctx context.Context) (AuthenticatedAdmin, bool) {
	admin, ok := ctx.Value(authAdminContextKey).(AuthenticatedAdmin)
	return admin, ok
}
