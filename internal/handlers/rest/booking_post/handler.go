package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"vodovoz/internal/entities"
	"vodovoz/internal/generated/dto"
	"vodovoz/internal/service/booking"
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
	var bookingDTO dto.BookingCreate
	err := json.NewDecoder(r.Body).Decode(&bookingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := entities.BookingRequest{
		ServiceType:  entities.ServiceType(bookingDTO.ServiceType),
		Quantity:     bookingDTO.Quantity,
		Address:      bookingDTO.Address,
		DeliveryDate: bookingDTO.DeliveryDate,
		DeliveryTime: bookingDTO.DeliveryTime,
		UserName:     bookingDTO.UserName,
		UserPhone:    bookingDTO.UserPhone,
	}
	if bookingDTO.Lat != nil && bookingDTO.Lon != nil {
		request.Coordinates = &entities.Coordinates{
			Lat: *bookingDTO.Lat,
			Lon: *bookingDTO.Lon,
		}
	}

	order, err := h.service.SubmitBooking(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidServiceType),
			errors.Is(err, booking.ErrInvalidQuantity),
			errors.Is(err, booking.ErrInvalidAddress),
			errors.Is(err, booking.ErrInvalidName),
			errors.Is(err, booking.ErrInvalidPhone),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrDateInPast),
			errors.Is(err, booking.ErrTimeNotInGrid):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrSlotTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BookingCreateResponse{
		ID:     order.ID,
		Price:  order.Price,
		Status: order.Status.String(),
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
