package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"vodovoz/internal/entities"
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
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceType := entities.DriverServiceType(driverCreateDTO.ServiceType)
	driverModifyEntity := entities.DriverModify{
		FullName:    &driverCreateDTO.FullName,
		Phone:       &driverCreateDTO.Phone,
		ServiceType: &serviceType,
		CarNumber:   &driverCreateDTO.CarNumber,
	}

	id, err := h.service.RegisterDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidServiceType),
			errors.Is(err, driver.ErrInvalidCarNumber):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverCreateResponse{
		ID:     id,
		Status: entities.DefaultDriverStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
