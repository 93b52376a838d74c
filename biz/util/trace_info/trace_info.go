package trace_info

import "context"

type logIDKey struct{}

// WithLogID stamps the request-scoped log id onto the context.
func WithLogID(ctx context.Context, logID string) context.Context {
	return context.WithValue(ctx, logIDKey{}, logID)
}

// LogID returns the log id carried by the context, or "" when absent.
func LogID(ctx context.Context) string {
	if id, ok := ctx.Value(logIDKey{}).(string); ok {
		return id
	}
	return ""
}
