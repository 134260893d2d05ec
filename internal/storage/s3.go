package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"vidtube/internal/common"
	"vidtube/internal/config"
)

const uploadPartSize = 8 * 1024 * 1024

// S3Gateway stores media in an S3-compatible bucket. The object key doubles
// as the asset's public id.
type S3Gateway struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

var _ common.AssetGateway = (*S3Gateway)(nil)

func NewS3Gateway(ctx context.Context, cfg config.StorageConfig) (*S3Gateway, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = uploadPartSize
		u.LeavePartsOnError = false
	})

	return &S3Gateway{
		client:   client,
		uploader: uploader,
		bucket:   cfg.Bucket,
		baseURL:  publicBaseURL(cfg),
	}, nil
}

// publicBaseURL is where uploaded objects are readable from.
func publicBaseURL(cfg config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimSuffix(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Endpoint != "":
		return strings.TrimSuffix(cfg.Endpoint, "/")
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// Upload streams content to images/ or videos/ under a fresh key. Large
// files go up as a multipart upload.
func (g *S3Gateway) Upload(ctx context.Context, filename, contentType string, content io.Reader) (*common.Asset, error) {
	kind, ok := common.DetectFileType(contentType)
	if !ok {
		return nil, fmt.Errorf("s3 storage: unsupported content type %q", contentType)
	}
	key := objectKey(kind, filename)

	_, err := g.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 storage upload %s: %w", key, err)
	}
	return &common.Asset{URL: g.baseURL + "/" + key, PublicID: key}, nil
}

// Delete removes the object. S3 reports success for keys that do not exist.
func (g *S3Gateway) Delete(ctx context.Context, publicID string, _ common.MediaFileType) error {
	if publicID == "" {
		return fmt.Errorf("s3 storage: empty key")
	}
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("s3 storage delete %s: %w", publicID, err)
	}
	return nil
}

func objectKey(kind common.MediaFileType, filename string) string {
	folder := "videos"
	if kind == common.MediaFileTypeImage {
		folder = "images"
	}
	return folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
