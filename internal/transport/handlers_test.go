package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"inpaintapi/internal/model"
)

func TestImageHandler_Ping(t *testing.T) {
	r := gin.New()
	h := NewImageHandler(nil)

	r.GET("/ping", func(c *gin.Context) {
		h.SimplePinger((*ginext.Context)(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "pong", body["message"])
}

func newUploadRequest(t *testing.T, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestImageHandler_Upload(t *testing.T) {
	tests := []struct {
		name       string
		req        *http.Request
		mock       *mockImageService
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name: "success",
			req:  newUploadRequest(t, `{"original_image":"aGVsbG8=","mask_image":"d29ybGQ="}`),
			mock: &mockImageService{
				uploadFn: func(ctx context.Context, r *model.UploadRequest) (*model.UploadResult, error) {
					require.Equal(t, "aGVsbG8=", r.OriginalImage)
					require.Equal(t, "d29ybGQ=", r.MaskImage)
					return &model.UploadResult{
						OriginalURL: "https://cdn.test/orig.png",
						MaskURL:     "https://cdn.test/mask.png",
					}, nil
				},
			},
			wantStatus: 200,
			wantBody: map[string]string{
				"original_url": "https://cdn.test/orig.png",
				"mask_url":     "https://cdn.test/mask.png",
			},
		},
		{
			name:       "broken json",
			req:        newUploadRequest(t, `{"original_image":`),
			mock:       &mockImageService{},
			wantStatus: 500,
		},
		{
			name:       "missing mask field",
			req:        newUploadRequest(t, `{"original_image":"aGVsbG8="}`),
			mock:       &mockImageService{},
			wantStatus: 500,
		},
		{
			name: "service validation error",
			req:  newUploadRequest(t, `{"original_image":"%%%","mask_image":"d29ybGQ="}`),
			mock: &mockImageService{
				uploadFn: func(ctx context.Context, r *model.UploadRequest) (*model.UploadResult, error) {
					return nil, &model.ValidationError{Err: errors.New("decode original image: illegal base64 data")}
				},
			},
			wantStatus: 500,
			wantBody:   map[string]string{"detail": "decode original image: illegal base64 data"},
		},
		{
			name: "gateway error",
			req:  newUploadRequest(t, `{"original_image":"aGVsbG8=","mask_image":"d29ybGQ="}`),
			mock: &mockImageService{
				uploadFn: func(ctx context.Context, r *model.UploadRequest) (*model.UploadResult, error) {
					return nil, &model.GatewayError{Err: errors.New("quota exceeded")}
				},
			},
			wantStatus: 500,
			wantBody:   map[string]string{"detail": "quota exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			h := NewImageHandler(tt.mock)

			r.POST("/upload", func(c *gin.Context) {
				h.Upload((*ginext.Context)(c))
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.req)

			require.Equal(t, tt.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantBody != nil {
				require.Equal(t, tt.wantBody, body)
			}
			if tt.wantStatus != 200 {
				require.NotEmpty(t, body["detail"])
			}
		})
	}
}

func TestImageHandler_GetAllImages(t *testing.T) {
	created := time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		mock       *mockImageService
		wantStatus int
		wantLen    int
	}{
		{
			name: "two records newest first",
			mock: &mockImageService{
				listFn: func(ctx context.Context) ([]model.ImageRecord, error) {
					return []model.ImageRecord{
						{ID: 2, OriginalURL: "https://cdn.test/o2.png", MaskURL: "https://cdn.test/m2.png", CreatedAt: created.Add(time.Minute)},
						{ID: 1, OriginalURL: "https://cdn.test/o1.png", MaskURL: "https://cdn.test/m1.png", CreatedAt: created},
					}, nil
				},
			},
			wantStatus: 200,
			wantLen:    2,
		},
		{
			name: "empty list",
			mock: &mockImageService{
				listFn: func(ctx context.Context) ([]model.ImageRecord, error) {
					return []model.ImageRecord{}, nil
				},
			},
			wantStatus: 200,
			wantLen:    0,
		},
		{
			name: "storage error",
			mock: &mockImageService{
				listFn: func(ctx context.Context) ([]model.ImageRecord, error) {
					return nil, &model.StorageError{Err: errors.New("db is down")}
				},
			},
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			h := NewImageHandler(tt.mock)

			r.GET("/images", func(c *gin.Context) {
				h.GetAllImages((*ginext.Context)(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/images", nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != 200 {
				return
			}

			var body []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Len(t, body, tt.wantLen)

			if tt.wantLen > 0 {
				first := body[0]
				require.Equal(t, float64(2), first["id"])
				require.Equal(t, "https://cdn.test/o2.png", first["original_url"])
				require.Equal(t, "https://cdn.test/m2.png", first["mask_url"])
				require.NotEmpty(t, first["created_at"])
				// asset ids stay internal
				require.NotContains(t, first, "OriginalAssetID")
			}
		})
	}
}

func TestImageHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mock       *mockImageService
		wantStatus int
		wantDetail string
	}{
		{
			name: "success",
			path: "/images/7",
			mock: &mockImageService{
				deleteFn: func(ctx context.Context, id int64) error {
					require.Equal(t, int64(7), id)
					return nil
				},
			},
			wantStatus: 200,
		},
		{
			name: "unknown id",
			path: "/images/999999",
			mock: &mockImageService{
				deleteFn: func(ctx context.Context, id int64) error {
					return model.ErrImageNotFound
				},
			},
			wantStatus: 404,
			wantDetail: "Image not found",
		},
		{
			name:       "non-integer id",
			path:       "/images/not-a-number",
			mock:       &mockImageService{},
			wantStatus: 500,
		},
		{
			name: "gateway failure",
			path: "/images/7",
			mock: &mockImageService{
				deleteFn: func(ctx context.Context, id int64) error {
					return &model.GatewayError{Err: errors.New("provider unavailable")}
				},
			},
			wantStatus: 500,
			wantDetail: "provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			h := NewImageHandler(tt.mock)

			r.DELETE("/images/:id", func(c *gin.Context) {
				h.Delete((*ginext.Context)(c))
			})

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			if tt.wantStatus == 200 {
				require.Equal(t, "Image deleted successfully", body["message"])
				return
			}
			require.NotEmpty(t, body["detail"])
			if tt.wantDetail != "" {
				require.Equal(t, tt.wantDetail, body["detail"])
			}
		})
	}
}
