// Package media serves GridFS-stored assets back over HTTP.
package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
)

// FileSource opens stored files for streaming.
type FileSource interface {
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

type HTTPServer struct {
	storage FileSource
}

func NewHTTPServer(storage FileSource) *HTTPServer {
	return &HTTPServer{storage: storage}
}

// Register mounts GET /media/{fileId} on router.
func (s *HTTPServer) Register(router *mux.Router) {
	router.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet, http.MethodHead)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, file, err := s.storage.DownloadFile(r.Context(), fileID)
	if errors.Is(err, dbmongo.ErrMediaNotFound) {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).WithError(err).WithField("file_id", fileID).Error("failed to open media file")
		http.Error(w, "failed to open file", http.StatusInternalServerError)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	// ids are never reused
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.Copy(w, reader); err != nil {
		logging.FromContext(r.Context()).WithError(err).WithField("file_id", fileID).Warn("error streaming media file")
	}
}
