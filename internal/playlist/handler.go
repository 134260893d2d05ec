package playlist

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	playlistService PlaylistService
}

func NewHandler(playlistService PlaylistService) *Handler {
	return &Handler{playlistService: playlistService}
}

type createRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description"`
}

// updateRequest uses pointers so absent fields are left unchanged.
type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req createRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	playlist, err := h.playlistService.CreatePlaylist(r.Context(), caller, req.Name, req.Description)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *Handler) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistService.UserPlaylists(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlists, "User playlists fetched successfully")
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.playlistService.GetPlaylist(r.Context(), mux.Vars(r)["playlistId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req updateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	playlist, err := h.playlistService.UpdatePlaylist(r.Context(), caller, mux.Vars(r)["playlistId"], req.Name, req.Description)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.playlistService.DeletePlaylist(r.Context(), caller, mux.Vars(r)["playlistId"]); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Playlist deleted successfully")
}

func (h *Handler) AddVideo(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	vars := mux.Vars(r)
	playlist, err := h.playlistService.AddVideo(r.Context(), caller, vars["videoId"], vars["playlistId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (h *Handler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	vars := mux.Vars(r)
	playlist, err := h.playlistService.RemoveVideo(r.Context(), caller, vars["videoId"], vars["playlistId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Video removed from playlist successfully")
}
