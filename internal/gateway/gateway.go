// Package gateway defines the contract with the remote media-hosting provider
package gateway

import "context"

// Asset is one uploaded object: the public HTTPS URL and the opaque
// identifier the provider expects back when asked to delete it.
type Asset struct {
	SecureURL string
	AssetID   string
}

// MediaGateway - thin call-through to the provider's upload/delete API.
// Destroy is best-effort; neither operation is retried.
type MediaGateway interface {
	Upload(ctx context.Context, data []byte, folder string) (*Asset, error)
	Destroy(ctx context.Context, assetID string) error
}
