package main

import (
	"context"

	"inpaintapi/internal/model"
)

type ImageAPIRepository interface {
	Create(ctx context.Context, rec *model.ImageRecord) error
	List(ctx context.Context) ([]model.ImageRecord, error)
	AssetIDs(ctx context.Context, id int64) (string, string, error)
	Delete(ctx context.Context, id int64) error
}
type ImageAPIService interface {
	Upload(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error)
	List(ctx context.Context) ([]model.ImageRecord, error)
	Delete(ctx context.Context, id int64) error
}
