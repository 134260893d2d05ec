package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
)

var ErrMediaNotFound = errors.New("media file not found")

// MediaStorage is the GridFS asset gateway. Files are served back by
// media.HTTPServer under baseURL.
type MediaStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

var _ common.AssetGateway = (*MediaStorage)(nil)

func NewMediaStorage(mongoClient *MongoClient, baseURL string) *MediaStorage {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &MediaStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: baseURL,
	}
}

type MediaFile struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename"`
	Size        int64                `json:"size"`
	FileType    common.MediaFileType `json:"file_type"`
	ContentType string               `json:"content_type"`
	UploadedBy  string               `json:"uploaded_by,omitempty"`
	UploadedAt  time.Time            `json:"uploaded_at"`
}

func (ms *MediaStorage) Upload(ctx context.Context, filename, contentType string, content io.Reader) (*common.Asset, error) {
	fileType, ok := common.DetectFileType(contentType)
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   contentType,
		"uploaded_at": time.Now().UTC(),
	}
	if uploader, ok := common.UserIDFromContext(ctx); ok {
		metadata["uploaded_by"] = uploader.Hex()
	}

	stream, err := ms.gridFS.OpenUploadStream(filename, options.GridFSUpload().SetMetadata(metadata))
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	if _, err := io.Copy(stream, content); err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload finalize failed: %w", err)
	}

	id := stream.FileID.(primitive.ObjectID).Hex()
	return &common.Asset{URL: ms.baseURL + id, PublicID: id}, nil
}

// Delete removes a stored file. Deleting a file that is already gone is not
// an error.
func (ms *MediaStorage) Delete(ctx context.Context, publicID string, _ common.MediaFileType) error {
	objectID, err := primitive.ObjectIDFromHex(publicID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	if err := ms.gridFS.DeleteContext(ctx, objectID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// DownloadFile opens fileID for streaming. The caller closes the stream.
func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, ErrMediaNotFound
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrMediaNotFound
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	contentType := getStringFromMap(metadata, "mime_type")
	if contentType == "" {
		contentType = common.ContentTypeForFilename(fileInfo.Name)
	}

	return stream, &MediaFile{
		ID:          fileID,
		Filename:    fileInfo.Name,
		Size:        fileInfo.Length,
		FileType:    common.MediaFileType(getStringFromMap(metadata, "file_type")),
		ContentType: contentType,
		UploadedBy:  getStringFromMap(metadata, "uploaded_by"),
		UploadedAt:  fileInfo.UploadDate,
	}, nil
}

func getStringFromMap(m bson.M, key string) string {
	if str, ok := m[key].(string); ok {
		return str
	}
	return ""
}
