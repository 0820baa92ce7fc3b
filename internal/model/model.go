// Package model provides data-structs and the error taxonomy for internal app-usage
package model

import (
	"errors"
	"time"
)

// ImageRecord is one stored original/mask pair together with the asset
// identifiers needed to delete the remote copies later. The asset ids
// never leave the backend.
type ImageRecord struct {
	ID              int64     `json:"id"`
	OriginalURL     string    `json:"original_url"`
	MaskURL         string    `json:"mask_url"`
	OriginalAssetID string    `json:"-"`
	MaskAssetID     string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// UploadRequest - POST /upload body; both images are plain base64
// strings without a data-URI prefix.
type UploadRequest struct {
	OriginalImage string `json:"original_image" binding:"required"`
	MaskImage     string `json:"mask_image" binding:"required"`
}

type UploadResult struct {
	OriginalURL string `json:"original_url"`
	MaskURL     string `json:"mask_url"`
}

//--------------------

// ErrImageNotFound - the only error mapped to 404; its text is returned
// verbatim as the response detail.
var ErrImageNotFound = errors.New("Image not found")

// ValidationError - malformed request payload (bad base64, bad id). 500
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// GatewayError - the remote media provider failed an upload or destroy;
// carries the provider's message. 500
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string { return e.Err.Error() }
func (e *GatewayError) Unwrap() error { return e.Err }

// StorageError - local database unavailable or query failed. 500
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
