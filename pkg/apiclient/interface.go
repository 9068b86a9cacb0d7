package apiclient

import (
	"context"
	"net/url"
)

// Transport is the verb-level capability controllers depend on. Injecting it
// at construction time lets tests substitute a fake without any parallel
// façade types.
type Transport interface {
	Get(ctx context.Context, endpoint string, query url.Values) (map[string]any, error)
	Post(ctx context.Context, endpoint string, corpo any) (map[string]any, error)
	Put(ctx context.Context, endpoint string, corpo any) (map[string]any, error)
	Patch(ctx context.Context, endpoint string, corpo any) (map[string]any, error)
	Delete(ctx context.Context, endpoint string) (map[string]any, error)
}

// Ensure Client satisfies Transport at compile time.
var _ Transport = (*Client)(nil)
