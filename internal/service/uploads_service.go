package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type UploadsService struct {
	presigner UploadPresigner
}

func NewUploadsService(presigner UploadPresigner) *UploadsService {
	if presigner == nil {
		log.Fatal("provided nil presigner")
	}
	return &UploadsService{presigner: presigner}
}

// PresignProfileImage issues an upload URL under a fresh key in the member's folder.
// The key is what the client later stores with PATCH /members/me.
func (us *UploadsService) PresignProfileImage(ctx context.Context, memberID uuid.UUID, req *PresignRequest) (*entity.PresignedUpload, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, errorvalues.ErrUnsupportedContentType
	}
	key := fmt.Sprintf("profiles/%s/%s%s", memberID, uuid.NewString(), ext)
	return us.presigner.PresignPut(ctx, key, contentType)
}
