package tan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// gatewayHandler translates HTTP requests into client operations. A failed
// query answers that request only; it never takes the process down.
type gatewayHandler struct {
	client *Client
}

func (h *gatewayHandler) allStops(w http.ResponseWriter, r *http.Request) {
	stops, err := h.client.AllStops(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stops)
}

func (h *gatewayHandler) nearbyStops(w http.ResponseWriter, r *http.Request) {
	coord := Coordinate{
		Latitude:  r.URL.Query().Get("lat"),
		Longitude: r.URL.Query().Get("lon"),
	}
	stops, err := h.client.NearbyStops(r.Context(), coord)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stops)
}

func (h *gatewayHandler) schedule(w http.ResponseWriter, r *http.Request) {
	stop := chi.URLParam(r, "stop")
	line := chi.URLParam(r, "line")
	dir, err := strconv.Atoi(chi.URLParam(r, "direction"))
	if err != nil {
		writeError(w, &ValidationError{Field: "Direction", Reason: "must be 0 or 1"})
		return
	}

	var sched *StopSchedule
	if date := r.URL.Query().Get("date"); date != "" {
		sched, err = h.client.ScheduleForStopOnDate(r.Context(), stop, line, Direction(dir), date)
	} else {
		sched, err = h.client.ScheduleForStop(r.Context(), stop, line, Direction(dir))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sched)
}

func (h *gatewayHandler) waitTimes(w http.ResponseWriter, r *http.Request) {
	stop := chi.URLParam(r, "stop")
	q := r.URL.Query()

	limit := 0
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, &ValidationError{Field: "Count", Reason: "must be an integer"})
			return
		}
		limit = n
	}
	line := q.Get("line")

	var (
		waits []WaitTime
		err   error
	)
	switch {
	case line != "":
		waits, err = h.client.WaitTimesForStopLine(r.Context(), stop, limit, line)
	case limit > 0:
		waits, err = h.client.WaitTimesForStopLimited(r.Context(), stop, limit)
	default:
		waits, err = h.client.WaitTimesForStop(r.Context(), stop)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, waits)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the client error taxonomy to HTTP statuses. Validation
// failures are the caller's fault; upstream and decode failures surface as
// a bad gateway; network failures as a gateway timeout. A cancelled
// request has no caller left to answer.
func writeError(w http.ResponseWriter, err error) {
	var (
		verr *ValidationError
		uerr *UpstreamError
		derr *DecodeError
		nerr *NetworkError
		cerr *CancelledError
	)
	switch {
	case errors.As(err, &verr):
		writeErrorStatus(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &uerr):
		writeErrorStatus(w, http.StatusBadGateway, uerr.Error())
	case errors.As(err, &derr):
		writeErrorStatus(w, http.StatusBadGateway, derr.Error())
	case errors.As(err, &nerr):
		writeErrorStatus(w, http.StatusGatewayTimeout, nerr.Error())
	case errors.As(err, &cerr):
		// client went away
	default:
		writeErrorStatus(w, http.StatusInternalServerError, err.Error())
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
