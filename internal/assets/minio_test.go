package assets

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"fixtureplanner/internal/config"
)

func TestNewMinIOValidation(t *testing.T) {
	_, err := NewMinIO(config.MinIOConfig{Bucket: "ui"})
	assert.ErrorContains(t, err, "endpoint is required")

	_, err = NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000"})
	assert.ErrorContains(t, err, "bucket is required")
}

func TestMinIOObjectKey(t *testing.T) {
	assert.Equal(t, "index.html", (&minioStore{}).objectKey("index.html"))
	assert.Equal(t, "fixture/v3/index.html", (&minioStore{prefix: "fixture/v3"}).objectKey("index.html"))
	assert.Equal(t, "fixture/js/app.js", (&minioStore{prefix: "fixture/"}).objectKey("js/app.js"))
}

func TestTranslateMinIOError(t *testing.T) {
	assert.ErrorIs(t, translateMinIOError(minio.ErrorResponse{Code: "NoSuchKey"}), ErrNotFound)
	assert.ErrorIs(t, translateMinIOError(minio.ErrorResponse{Code: "NotFound"}), ErrNotFound)

	err := translateMinIOError(errors.New("connection refused"))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "connection refused")
}
