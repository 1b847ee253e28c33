package charge

import (
	"net/http"

	"reception/infras/otel"
	"reception/internal/domains/charge/model/dto"
	"reception/internal/domains/charge/service"
	"reception/shared/constant"
	"reception/shared/validator"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Charge
	otel    otel.Otel
}

func New(service service.Charge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the routes addressing a charge directly.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/charges", func(routerGroup chi.Router) {
		routerGroup.Delete("/{id}", handler.RemoveCharge)
	})
}

// BookingRouter registers the ledger routes nested under a booking.
func (handler *Handler) BookingRouter(router chi.Router) {
	router.Post("/", handler.AddCharge)
	router.Get("/", handler.GetCharges)
}

// AddCharge appends a line item to a booking's ledger.
// @Summary Add a charge to a booking
// @Description Append a billable line item to the ledger of a checked-in booking.
// @Tags Charge
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddChargeRequest true "Add Charge Request"
// @Success 201 {object} response.Data[dto.ChargeResponse] "Charge added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) AddCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCharge")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	charge, err := handler.service.Add(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add charge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Charge added successfully")

	response.WithJSON(w, http.StatusCreated, charge)
}

// GetCharges lists a booking's ledger with its running total.
// @Summary Get the charges of a booking
// @Description Retrieve all ledger line items of a booking with the running total.
// @Tags Charge
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetChargesResponse] "List of charges"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [get]
// @Security BearerAuth
func (handler *Handler) GetCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharges")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	charges, err := handler.service.ListByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get charges")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Charges retrieved successfully")

	response.WithJSON(w, http.StatusOK, charges)
}

// RemoveCharge deletes a ledger line item.
// @Summary Remove a charge
// @Description Delete a ledger line item while the owning booking is still mutable.
// @Tags Charge
// @Accept json
// @Produce json
// @Param id path string true "Charge ID"
// @Success 200 {object} response.Message "Charge removed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Remove(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove charge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Charge removed successfully")

	response.WithMessage(w, http.StatusOK, "Charge removed successfully")
}
