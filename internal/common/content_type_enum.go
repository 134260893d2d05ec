package common

import (
	"path/filepath"
	"strings"
)

// MediaFileType is the asset kind the gateway stores a file under.
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType classifies a MIME type. ok is false for anything that is
// neither an image nor a video.
func DetectFileType(mimeType string) (kind MediaFileType, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(lower, "image/"):
		return MediaFileTypeImage, true
	case strings.HasPrefix(lower, "video/"):
		return MediaFileTypeVideo, true
	default:
		return "", false
	}
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
}

// ContentTypeForFilename guesses a MIME type from the file extension.
func ContentTypeForFilename(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
