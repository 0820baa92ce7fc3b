package transport

import (
	"context"

	"github.com/gin-gonic/gin"

	"inpaintapi/internal/model"
)

type mockImageService struct {
	uploadFn func(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error)
	listFn   func(ctx context.Context) ([]model.ImageRecord, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockImageService) Upload(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error) {
	return m.uploadFn(ctx, req)
}

func (m *mockImageService) List(ctx context.Context) ([]model.ImageRecord, error) {
	return m.listFn(ctx)
}

func (m *mockImageService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}
