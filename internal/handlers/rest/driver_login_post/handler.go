package driver_login_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vodovoz/internal/generated/dto"
	"vodovoz/internal/service/driver"
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
	var loginDTO dto.DriverLogin
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverEntity, err := h.service.Login(r.Context(), loginDTO.Phone)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverPending),
			errors.Is(err, driver.ErrDriverBlocked):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	driverDTO := dto.Driver{
		ID:          driverEntity.ID,
		FullName:    driverEntity.FullName,
		Phone:       driverEntity.Phone,
		ServiceType: driverEntity.ServiceType.String(),
		CarNumber:   driverEntity.CarNumber,
		Status:      driverEntity.Status.String(),
		CreatedAt:   driverEntity.CreatedAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
