package storage

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"todoapi/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	_, err := NewMinIO(context.Background(), config.MinIOConfig{})

	assert.ErrorContains(t, err, "minio endpoint is required")
	assert.ErrorContains(t, err, "minio credentials are required")
	assert.ErrorContains(t, err, "minio bucket is required")
}

func TestValidate(t *testing.T) {
	cfg := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "ak", SecretKey: "sk", Bucket: "todos"}
	assert.NoError(t, validate(cfg))

	cfg.SecretKey = ""
	assert.EqualError(t, validate(cfg), "minio credentials are required")
}

func TestToObjectInfo(t *testing.T) {
	mod := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	got := toObjectInfo(minio.ObjectInfo{
		Key:          "todos/a.json",
		Size:         54,
		ETag:         "etag",
		ContentType:  "application/json",
		LastModified: mod,
	})

	assert.Equal(t, ObjectInfo{
		Key:          "todos/a.json",
		Size:         54,
		ETag:         "etag",
		ContentType:  "application/json",
		LastModified: mod,
	}, got)
}
