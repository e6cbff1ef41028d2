package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"vodovoz/internal/entities"
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
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.Actor{
		Role:      entities.ActorRole(updateDTO.Role),
		UserPhone: updateDTO.UserPhone,
	}
	if updateDTO.DriverID != nil {
		actor.DriverID = *updateDTO.DriverID
	}

	res, err := h.service.Transition(r.Context(), orderID, entities.OrderStatusType(updateDTO.Status), actor)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidDriverID),
			errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrForbidden),
			errors.Is(err, order.ErrNotAssigned),
			errors.Is(err, order.ErrDriverNotActive),
			errors.Is(err, order.ErrCancelWindowClosed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrOrderAlreadyTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderStatusUpdateResponse{
		ID:     res.ID,
		Status: res.Status.String(),
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
