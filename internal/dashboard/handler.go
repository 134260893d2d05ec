package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	dashboardService DashboardService
}

func NewHandler(dashboardService DashboardService) *Handler {
	return &Handler{dashboardService: dashboardService}
}

func (h *Handler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.ChannelStats(r.Context(), mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *Handler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	caller, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	videos, err := h.dashboardService.ChannelVideos(r.Context(), caller, mux.Vars(r)["channelId"], common.PageFromRequest(r))
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, videos, "Channel videos fetched successfully")
}
