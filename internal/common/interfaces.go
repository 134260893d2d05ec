package common

import (
	"context"
	"io"
)

// Asset is a stored media file as referenced from documents.
type Asset struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"publicId"`
}

func (a *Asset) IsZero() bool {
	return a == nil || a.PublicID == ""
}

//go:generate mockgen -source=interfaces.go -destination=mock_common/mock_common.go -package=mock_common

// AssetGateway stores and removes binary media. Implementations return a
// stable locator for every upload.
type AssetGateway interface {
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (*Asset, error)
	Delete(ctx context.Context, publicID string, kind MediaFileType) error
}
