// Package cloudinarygw provides structure to work with the Cloudinary upload API
package cloudinarygw

import (
	"bytes"
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"inpaintapi/internal/config"
	"inpaintapi/internal/gateway"
	"inpaintapi/internal/model"
)

type CloudinaryGateway struct {
	client *cloudinary.Cloudinary
}

func New(cfg config.Cloudinary) (*CloudinaryGateway, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryGateway{client: cld}, nil
}

func (g *CloudinaryGateway) Upload(ctx context.Context, data []byte, folder string) (*gateway.Asset, error) {
	res, err := g.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return nil, &model.GatewayError{Err: err}
	}
	// API-level failures come back inside the result with a nil err
	if res.Error.Message != "" {
		return nil, &model.GatewayError{Err: errors.New(res.Error.Message)}
	}

	return &gateway.Asset{SecureURL: res.SecureURL, AssetID: res.PublicID}, nil
}

func (g *CloudinaryGateway) Destroy(ctx context.Context, assetID string) error {
	res, err := g.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return &model.GatewayError{Err: err}
	}
	if res.Error.Message != "" {
		return &model.GatewayError{Err: errors.New(res.Error.Message)}
	}

	return nil
}
