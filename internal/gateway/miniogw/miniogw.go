// Package miniogw provides structure to work with a self-hosted MinIO/S3 media store
package miniogw

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"inpaintapi/internal/config"
	"inpaintapi/internal/gateway"
	"inpaintapi/internal/model"
)

type MinioGateway struct {
	bucket string
	client *minio.Client
}

func New(cfg config.Minio) (*MinioGateway, error) {
	bucket := cfg.Bucket
	if bucket == "" {
		bucket = "default"
		log.Printf("Bucket name is empty. Using default value %q...", bucket)
	}

	client, err := minio.New(cfg.Addr, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Pass, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	if err := ensureBucket(context.Background(), client, bucket); err != nil {
		log.Println("Failed to create bucket in MinIO:", err)
		return nil, err
	}

	return &MinioGateway{bucket: bucket, client: client}, nil
}

// Upload stores decoded PNG bytes under <folder>/<uuid>.png; the object
// key doubles as the asset id for later Destroy calls.
func (g *MinioGateway) Upload(ctx context.Context, data []byte, folder string) (*gateway.Asset, error) {
	key := folder + "/" + uuid.New().String() + ".png"

	if _, err := g.client.PutObject(ctx, g.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/png",
	}); err != nil {
		return nil, &model.GatewayError{Err: err}
	}

	return &gateway.Asset{
		SecureURL: fmt.Sprintf("%s/%s/%s", g.client.EndpointURL(), g.bucket, key),
		AssetID:   key,
	}, nil
}

func (g *MinioGateway) Destroy(ctx context.Context, assetID string) error {
	if err := g.client.RemoveObject(ctx, g.bucket, assetID, minio.RemoveObjectOptions{}); err != nil {
		return &model.GatewayError{Err: err}
	}
	return nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
