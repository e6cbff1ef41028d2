package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:           orderEntity.ID,
		ServiceType:  orderEntity.ServiceType.String(),
		Quantity:     orderEntity.Quantity,
		Address:      orderEntity.Address,
		DeliveryDate: orderEntity.DeliveryDate,
		DeliveryTime: orderEntity.DeliveryTime,
		Price:        orderEntity.Price,
		Status:       orderEntity.Status.String(),
		DriverID:     orderEntity.DriverID,
		UserName:     orderEntity.UserName,
		UserPhone:    orderEntity.UserPhone,
		CreatedAt:    orderEntity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    orderEntity.UpdatedAt.Format(time.RFC3339),
	}
	if orderEntity.Coordinates != nil {
		orderDTO.Lat = &orderEntity.Coordinates.Lat
		orderDTO.Lon = &orderEntity.Coordinates.Lon
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
