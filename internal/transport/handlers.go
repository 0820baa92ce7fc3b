// Package transport provides methods for processing requests from endpoints
package transport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"inpaintapi/internal/model"
)

type ImageHandler struct {
	service ImageService
}

type ImageService interface {
	Upload(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error) // декодировать base64 и загрузить обе картинки
	List(ctx context.Context) ([]model.ImageRecord, error)
	Delete(ctx context.Context, id int64) error // удалить как в базе, так и у провайдера
}

func NewImageHandler(svc ImageService) *ImageHandler {
	return &ImageHandler{
		service: svc,
	}
}

func (h ImageHandler) SimplePinger(ctx *ginext.Context) {
	ctx.JSON(200, map[string]string{"message": "pong"})
}

func (h ImageHandler) Upload(ctx *ginext.Context) {
	var req model.UploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		vErr := &model.ValidationError{Err: err}
		ctx.JSON(errorCodeDefiner(vErr), map[string]string{"detail": vErr.Error()})
		return
	}

	res, err := h.service.Upload(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(errorCodeDefiner(err), map[string]string{"detail": err.Error()})
		return
	}

	ctx.JSON(200, res)
}

func (h ImageHandler) GetAllImages(ctx *ginext.Context) {
	res, err := h.service.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(errorCodeDefiner(err), map[string]string{"detail": err.Error()})
		return
	}

	ctx.JSON(200, res)
}

func (h ImageHandler) Delete(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		vErr := &model.ValidationError{Err: fmt.Errorf("parse image id: %w", err)}
		ctx.JSON(errorCodeDefiner(vErr), map[string]string{"detail": vErr.Error()})
		return
	}

	if err := h.service.Delete(ctx.Request.Context(), id); err != nil {
		ctx.JSON(errorCodeDefiner(err), map[string]string{"detail": err.Error()})
		return
	}

	ctx.JSON(200, map[string]string{"message": "Image deleted successfully"})
}
