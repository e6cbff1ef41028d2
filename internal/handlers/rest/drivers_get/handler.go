package drivers_get

import (
	"encoding/json"
	"net/http"
	"time"

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
	driverEntities, err := h.service.GetDrivers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	driverDTOs := make([]dto.Driver, len(driverEntities))
	for i, driverEntity := range driverEntities {
		driverDTOs[i].ID = driverEntity.ID
		driverDTOs[i].FullName = driverEntity.FullName
		driverDTOs[i].Phone = driverEntity.Phone
		driverDTOs[i].ServiceType = driverEntity.ServiceType.String()
		driverDTOs[i].CarNumber = driverEntity.CarNumber
		driverDTOs[i].Status = driverEntity.Status.String()
		driverDTOs[i].CreatedAt = driverEntity.CreatedAt.Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
