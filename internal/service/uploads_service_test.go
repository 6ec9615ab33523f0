package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presignerMock struct {
	key         string
	contentType string
}

func (p *presignerMock) PresignPut(ctx context.Context, key, contentType string) (*entity.PresignedUpload, error) {
	p.key, p.contentType = key, contentType
	return &entity.PresignedUpload{URL: "http://storage/" + key, Key: key, Method: "PUT", ExpiresAt: time.Now().Add(time.Minute)}, nil
}

func TestPresignProfileImage(t *testing.T) {
	presigner := &presignerMock{}
	serv := service.NewUploadsService(presigner)
	memberID := uuid.New()
	ctx := context.Background()

	upload, err := serv.PresignProfileImage(ctx, memberID, &service.PresignRequest{ContentType: "Image/PNG"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.Key, "profiles/"+memberID.String()+"/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".png"))
	assert.Equal(t, "image/png", presigner.contentType)

	_, err = serv.PresignProfileImage(ctx, memberID, &service.PresignRequest{ContentType: "application/pdf"})
	assert.ErrorIs(t, err, errorvalues.ErrUnsupportedContentType)
	_, err = serv.PresignProfileImage(ctx, memberID, &service.PresignRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}
