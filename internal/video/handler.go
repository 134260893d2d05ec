package video

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	videoService VideoService
	maxUpload    int64
}

func NewHandler(videoService VideoService, maxUploadBytes int64) *Handler {
	return &Handler{videoService: videoService, maxUpload: maxUploadBytes}
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	q := r.URL.Query()
	page, err := h.videoService.ListVideos(r.Context(), caller, ListQuery{
		Query:    q.Get("query"),
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		UserID:   q.Get("userId"),
		Page:     common.PageFromRequest(r),
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Videos fetched successfully")
}

func (h *Handler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}

	var duration float64
	if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
		if duration, err = strconv.ParseFloat(raw, 64); err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
			common.WriteError(w, r, common.InvalidArgument("duration must be a number of seconds"))
			return
		}
	}
	videoFile, err := common.FormFile(r, "videoFile")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer videoFile.Close()
	thumbnail, err := common.FormFile(r, "thumbnail")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer thumbnail.Close()

	video, err := h.videoService.PublishVideo(r.Context(), caller, PublishInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, video, "Video published successfully")
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	video, err := h.videoService.GetVideo(r.Context(), caller, mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video fetched successfully")
}

// UpdateVideo accepts a multipart form so a new thumbnail can ride along
// with the text fields. Absent fields are left unchanged.
func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}
	thumbnail, err := common.FormFile(r, "thumbnail")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer thumbnail.Close()

	in := UpdateInput{Thumbnail: thumbnail}
	if vals, ok := r.MultipartForm.Value["title"]; ok && len(vals) > 0 {
		in.Title = &vals[0]
	}
	if vals, ok := r.MultipartForm.Value["description"]; ok && len(vals) > 0 {
		in.Description = &vals[0]
	}

	video, err := h.videoService.UpdateVideo(r.Context(), caller, mux.Vars(r)["videoId"], in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video updated successfully")
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.videoService.DeleteVideo(r.Context(), caller, mux.Vars(r)["videoId"]); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Video deleted successfully")
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	video, err := h.videoService.TogglePublish(r.Context(), caller, mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Publish status toggled successfully")
}
