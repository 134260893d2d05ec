package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	commentService CommentService
}

func NewHandler(commentService CommentService) *Handler {
	return &Handler{commentService: commentService}
}

type contentRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	page, err := h.commentService.ListComments(r.Context(), mux.Vars(r)["videoId"], common.PageFromRequest(r))
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Comments fetched successfully")
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	comment, err := h.commentService.AddComment(r.Context(), caller, mux.Vars(r)["videoId"], req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, comment, "Comment added successfully")
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	comment, err := h.commentService.UpdateComment(r.Context(), caller, mux.Vars(r)["commentId"], req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comment, "Comment updated successfully")
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.commentService.DeleteComment(r.Context(), caller, mux.Vars(r)["commentId"]); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Comment deleted successfully")
}
