package orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"vodovoz/internal/entities"
	"vodovoz/internal/generated/dto"
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
	query := r.URL.Query()

	var filter entities.OrderFilter

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.OrderStatusType(statusStr)
		filter.Status = &status
	}
	if driverIDStr := query.Get("driverId"); driverIDStr != "" {
		driverID, err := strconv.ParseInt(driverIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.DriverID = &driverID
	}
	if userPhone := query.Get("userPhone"); userPhone != "" {
		filter.UserPhone = &userPhone
	}
	if deliveryDate := query.Get("date"); deliveryDate != "" {
		filter.DeliveryDate = &deliveryDate
	}
	if serviceTypeStr := query.Get("serviceType"); serviceTypeStr != "" {
		serviceType := entities.ServiceType(serviceTypeStr)
		filter.ServiceType = &serviceType
	}
	filter.AvailableForDriver = query.Get("available") == "true"
	filter.ActiveOnly = query.Get("active") == "true"

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i] = dto.Order{
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
			orderDTOs[i].Lat = &orderEntity.Coordinates.Lat
			orderDTOs[i].Lon = &orderEntity.Coordinates.Lon
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
