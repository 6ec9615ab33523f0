package storage_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/limbo/clover/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignPut(t *testing.T) {
	p := storage.NewS3Presigner(storage.S3Config{
		Endpoint:  "http://localhost:9000",
		Bucket:    "clover",
		Region:    "us-east-1",
		AccessKey: "access",
		SecretKey: "secret",
		TTL:       10 * time.Minute,
	})
	before := time.Now()
	upload, err := p.PresignPut(context.Background(), "profile/abc/image.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, upload.Method)
	assert.Equal(t, "profile/abc/image.png", upload.Key)
	assert.WithinDuration(t, before.Add(10*time.Minute), upload.ExpiresAt, time.Minute)

	u, err := url.Parse(upload.URL)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/clover/profile/abc/image.png", u.Path)
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestPresignDefaultTTL(t *testing.T) {
	p := storage.NewS3Presigner(storage.S3Config{
		Endpoint:  "http://localhost:9000",
		Bucket:    "clover",
		Region:    "us-east-1",
		AccessKey: "access",
		SecretKey: "secret",
	})
	upload, err := p.PresignPut(context.Background(), "k", "image/jpeg")
	require.NoError(t, err)
	u, err := url.Parse(upload.URL)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}
