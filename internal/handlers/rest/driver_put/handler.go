package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var driverUpdateDTO dto.DriverUpdate
	err = json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID: &id,
	}

	// Опциональные параметры
	if driverUpdateDTO.FullName != nil {
		driverModifyEntity.FullName = driverUpdateDTO.FullName
	}
	if driverUpdateDTO.Phone != nil {
		driverModifyEntity.Phone = driverUpdateDTO.Phone
	}
	if driverUpdateDTO.ServiceType != nil {
		serviceType := entities.DriverServiceType(*driverUpdateDTO.ServiceType)
		driverModifyEntity.ServiceType = &serviceType
	}
	if driverUpdateDTO.CarNumber != nil {
		driverModifyEntity.CarNumber = driverUpdateDTO.CarNumber
	}
	if driverUpdateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverUpdateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidServiceType),
			errors.Is(err, driver.ErrInvalidCarNumber),
			errors.Is(err, driver.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Driver{
		ID:          res.ID,
		FullName:    res.FullName,
		Phone:       res.Phone,
		ServiceType: res.ServiceType.String(),
		CarNumber:   res.CarNumber,
		Status:      res.Status.String(),
		CreatedAt:   res.CreatedAt.Format(time.RFC3339),
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
