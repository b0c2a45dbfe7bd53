package api

import (
	"encoding/json"
	"net/http"
)

// @Summary      Get catalog events
// @Description  Returns catalog change events (created/updated/deleted listings) newer than the given event ID, oldest first. Without 'since' the whole journal is returned.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        since  query     string  false  "Return events after this event ID"
// @Success      200    {array}   models.Event
// @Failure      401    {string}  string "Unauthorized"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /events [get]
func (s *Server) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.GetEventsSince(r.Context(), r.URL.Query().Get("since"))
	if err != nil {
		http.Error(w, "Failed to retrieve events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
