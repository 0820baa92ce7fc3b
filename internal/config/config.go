// Package config snapshots the environment into one explicit struct at startup
package config

import (
	wbfconfig "github.com/wb-go/wbf/config"
)

const (
	ProviderCloudinary = "cloudinary"
	ProviderMinio      = "minio"
)

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
}

type Minio struct {
	Addr   string
	User   string
	Pass   string
	Bucket string
	UseSSL bool
}

// Config is built once in main and injected into the components; no
// env reads happen after startup.
type Config struct {
	AppPort       string
	GinMode       string
	SQLitePath    string
	FrontendURL   string
	MediaProvider string
	Cloudinary    Cloudinary
	Minio         Minio
}

func Load(src *wbfconfig.Config) *Config {
	cfg := &Config{
		AppPort:       src.GetString("APP_PORT"),
		GinMode:       src.GetString("GIN_MODE"),
		SQLitePath:    src.GetString("SQLITE_PATH"),
		FrontendURL:   src.GetString("FRONTEND_URL"),
		MediaProvider: src.GetString("MEDIA_PROVIDER"),
		Cloudinary: Cloudinary{
			CloudName: src.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    src.GetString("CLOUDINARY_API_KEY"),
			APISecret: src.GetString("CLOUDINARY_API_SECRET"),
		},
		Minio: Minio{
			Addr:   src.GetString("MINIO_ADDR"),
			User:   src.GetString("MINIO_USER"),
			Pass:   src.GetString("MINIO_PASS"),
			Bucket: src.GetString("BUCKET_NAME"),
			UseSSL: src.GetString("MINIO_SSL") == "true",
		},
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8000"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "images.db"
	}
	if cfg.MediaProvider == "" {
		cfg.MediaProvider = ProviderCloudinary
	}

	return cfg
}
