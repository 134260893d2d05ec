package like

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type Handler struct {
	likeService LikeService
}

func NewHandler(likeService LikeService) *Handler {
	return &Handler{likeService: likeService}
}

type toggleResponse struct {
	Liked bool `json:"liked"`
}

func (h *Handler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, dbmongo.LikeKindVideo, "videoId")
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, dbmongo.LikeKindComment, "commentId")
}

func (h *Handler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, dbmongo.LikeKindTweet, "tweetId")
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, kind dbmongo.LikeKind, param string) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	liked, err := h.likeService.ToggleLike(r.Context(), caller, kind, mux.Vars(r)[param])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	msg := "Like removed successfully"
	if liked {
		msg = "Like added successfully"
	}
	common.WriteJSON(w, http.StatusOK, toggleResponse{Liked: liked}, msg)
}

func (h *Handler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	videos, err := h.likeService.LikedVideos(r.Context(), caller)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, videos, "Liked videos fetched successfully")
}

func (h *Handler) LikedComments(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	comments, err := h.likeService.LikedComments(r.Context(), caller)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comments, "Liked comments fetched successfully")
}

func (h *Handler) LikedTweets(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	tweets, err := h.likeService.LikedTweets(r.Context(), caller)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tweets, "Liked tweets fetched successfully")
}
