package subscription

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	subscriptionService SubscriptionService
}

func NewHandler(subscriptionService SubscriptionService) *Handler {
	return &Handler{subscriptionService: subscriptionService}
}

type toggleResponse struct {
	Subscribed bool `json:"subscribed"`
}

// ToggleSubscription answers 201 when a subscription is created and 200
// when one is removed.
func (h *Handler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	subscribed, err := h.subscriptionService.ToggleSubscription(r.Context(), caller, mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if subscribed {
		common.WriteJSON(w, http.StatusCreated, toggleResponse{Subscribed: true}, "Subscribed successfully")
		return
	}
	common.WriteJSON(w, http.StatusOK, toggleResponse{Subscribed: false}, "Unsubscribed successfully")
}

func (h *Handler) ChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	h.subscribers(w, r, mux.Vars(r)["channelId"])
}

// MySubscribers lists the caller's own subscribers.
func (h *Handler) MySubscribers(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	h.subscribers(w, r, caller.Hex())
}

func (h *Handler) subscribers(w http.ResponseWriter, r *http.Request, channelID string) {
	subscribers, err := h.subscriptionService.ChannelSubscribers(r.Context(), channelID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// SubscribedChannels lists the channels of the userId path variable, or of
// the caller when the route has none.
func (h *Handler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	userID, ok := mux.Vars(r)["userId"]
	if !ok {
		caller, err := common.CallerID(r)
		if err != nil {
			common.WriteError(w, r, err)
			return
		}
		userID = caller.Hex()
	}
	channels, err := h.subscriptionService.SubscribedChannels(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
