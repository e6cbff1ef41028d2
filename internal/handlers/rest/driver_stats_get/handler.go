package driver_stats_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"vodovoz/internal/generated/dto"
	"vodovoz/internal/service/order"
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
	idStr := mux.Vars(r)["id"]
	driverID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stats, err := h.service.GetDriverStats(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverStatsResponse{
		NewOrders:      stats.NewOrders,
		ActiveOrders:   stats.ActiveOrders,
		CompletedTotal: stats.CompletedTotal,
		Total: dto.Earnings{
			Gross:      stats.Total.Gross,
			Commission: stats.Total.Commission,
			Net:        stats.Total.Net,
		},
		Today: dto.Earnings{
			Gross:      stats.Today.Gross,
			Commission: stats.Today.Commission,
			Net:        stats.Today.Net,
		},
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
