package tweet

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	tweetService TweetService
}

func NewHandler(tweetService TweetService) *Handler {
	return &Handler{tweetService: tweetService}
}

type contentRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
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
	tweet, err := h.tweetService.CreateTweet(r.Context(), caller, req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *Handler) UserTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweetService.UserTweets(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *Handler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
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
	tweet, err := h.tweetService.UpdateTweet(r.Context(), caller, mux.Vars(r)["tweetId"], req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.tweetService.DeleteTweet(r.Context(), caller, mux.Vars(r)["tweetId"]); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Tweet deleted successfully")
}
