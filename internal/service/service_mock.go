package service

import (
	"context"

	"inpaintapi/internal/gateway"
	"inpaintapi/internal/model"
)

// MOCK REPOSITORY

type mockRepo struct {
	createFn   func(ctx context.Context, rec *model.ImageRecord) error
	listFn     func(ctx context.Context) ([]model.ImageRecord, error)
	assetIDsFn func(ctx context.Context, id int64) (string, string, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockRepo) Create(ctx context.Context, rec *model.ImageRecord) error {
	return m.createFn(ctx, rec)
}

func (m *mockRepo) List(ctx context.Context) ([]model.ImageRecord, error) {
	return m.listFn(ctx)
}

func (m *mockRepo) AssetIDs(ctx context.Context, id int64) (string, string, error) {
	return m.assetIDsFn(ctx, id)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// MOCK MEDIA GATEWAY

type mockGateway struct {
	uploadFn  func(ctx context.Context, data []byte, folder string) (*gateway.Asset, error)
	destroyFn func(ctx context.Context, assetID string) error
}

func (m *mockGateway) Upload(ctx context.Context, data []byte, folder string) (*gateway.Asset, error) {
	return m.uploadFn(ctx, data, folder)
}

func (m *mockGateway) Destroy(ctx context.Context, assetID string) error {
	return m.destroyFn(ctx, assetID)
}
