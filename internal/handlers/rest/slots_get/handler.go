package slots_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"vodovoz/internal/generated/dto"
	"vodovoz/internal/service/slots"
	"vodovoz/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	daySlots, err := h.service.GetDaySlots(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrDateRequired),
			errors.Is(err, slots.ErrInvalidDate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SlotsResponse{
		Date:      daySlots.Date,
		Available: daySlots.Available,
		Occupied:  daySlots.Occupied,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
