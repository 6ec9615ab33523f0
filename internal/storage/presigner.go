package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/limbo/clover/pkg/entity"
)

const defaultPresignTTL = 15 * time.Minute

type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	TTL       time.Duration
}

type presignClient interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Presigner issues time-limited upload URLs, the object bytes never pass through the API.
type Presigner struct {
	client presignClient
	bucket string
	ttl    time.Duration
	now    func() time.Time
}

func NewS3Presigner(cfg S3Config) *Presigner {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &Presigner{
		client: s3.NewPresignClient(s3.New(opts)),
		bucket: cfg.Bucket,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (p *Presigner) PresignPut(ctx context.Context, key, contentType string) (*entity.PresignedUpload, error) {
	issuedAt := p.now()
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return nil, errors.New("presigning put object error: " + err.Error())
	}
	return &entity.PresignedUpload{
		URL:       req.URL,
		Key:       key,
		Method:    req.Method,
		ExpiresAt: issuedAt.Add(p.ttl),
	}, nil
}
