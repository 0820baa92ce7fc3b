// Package service provides business-logic for the app
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"inpaintapi/internal/gateway"
	"inpaintapi/internal/model"
	"inpaintapi/internal/mwlogger"
	"inpaintapi/internal/repository"
)

// Upload folders at the media provider, one per image role.
const (
	originalsFolder = "inpainting/originals"
	masksFolder     = "inpainting/masks"
)

type ImageService struct {
	repo    repository.ImageRepo
	gateway gateway.MediaGateway
}

func NewImageService(repo repository.ImageRepo, gw gateway.MediaGateway) *ImageService {
	return &ImageService{
		repo:    repo,
		gateway: gw,
	}
}

func (s ImageService) Upload(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	// decoded bytes are treated as PNG data and are not inspected further
	original, err := base64.StdEncoding.DecodeString(req.OriginalImage)
	if err != nil {
		return nil, &model.ValidationError{Err: fmt.Errorf("decode original image: %w", err)}
	}
	mask, err := base64.StdEncoding.DecodeString(req.MaskImage)
	if err != nil {
		return nil, &model.ValidationError{Err: fmt.Errorf("decode mask image: %w", err)}
	}

	// Two independent uploads: when the second one fails, the first
	// asset stays orphaned at the provider. Known gap, no compensation.
	origAsset, err := s.gateway.Upload(ctx, original, originalsFolder)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to upload original image to media gateway")
		return nil, err
	}

	maskAsset, err := s.gateway.Upload(ctx, mask, masksFolder)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to upload mask image to media gateway")
		return nil, err
	}

	rec := &model.ImageRecord{
		OriginalURL:     origAsset.SecureURL,
		MaskURL:         maskAsset.SecureURL,
		OriginalAssetID: origAsset.AssetID,
		MaskAssetID:     maskAsset.AssetID,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		logger.Error().Err(err).Msg("Failed to create image record in DB")
		return nil, &model.StorageError{Err: err}
	}

	return &model.UploadResult{
		OriginalURL: rec.OriginalURL,
		MaskURL:     rec.MaskURL,
	}, nil
}

func (s ImageService) List(ctx context.Context) ([]model.ImageRecord, error) {
	logger := mwlogger.LoggerFromContext(ctx)

	res, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch images list from DB")
		return nil, &model.StorageError{Err: err}
	}

	return res, nil
}

func (s ImageService) Delete(ctx context.Context, id int64) error {
	logger := mwlogger.LoggerFromContext(ctx)

	origID, maskID, err := s.repo.AssetIDs(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrImageNotFound) {
			return err // 404
		}
		logger.Error().Err(err).Msg(fmt.Sprintf("Failed to fetch image %d from DB", id))
		return &model.StorageError{Err: err}
	}

	// Destroy order matches upload order; a failure aborts before the
	// row is removed, so the client can retry the whole delete.
	if err := s.gateway.Destroy(ctx, origID); err != nil {
		logger.Error().Err(err).Msg("Failed to destroy original asset at media gateway")
		return err
	}
	if err := s.gateway.Destroy(ctx, maskID); err != nil {
		logger.Error().Err(err).Msg("Failed to destroy mask asset at media gateway")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msg("Failed to delete image record from DB")
		return &model.StorageError{Err: err}
	}

	return nil
}
