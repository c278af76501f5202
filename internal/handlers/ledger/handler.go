package ledger

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/model/dto"
	"lodge/internal/domains/ledger/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ledger", func(routerGroup chi.Router) {
		routerGroup.Get("/balances", handler.GetBalances)
		routerGroup.Put("/balances", handler.AdjustBalance)
		routerGroup.Get("/entries", handler.GetEntries)
		routerGroup.Post("/entries", handler.CreateManualEntry)
		routerGroup.Delete("/entries/{id}", handler.DeleteManualEntry)
	})
}

// GetBalances retrieves the running balance of every wallet.
// @Summary Get wallet balances
// @Description Retrieve the current running balance of all five wallets.
// @Tags Ledger
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BalancesResponse] "Wallet balances"
// @Failure 500 {object} response.Error
// @Router /v1/ledger/balances [get]
// @Security BearerAuth
func (handler *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalances")
	defer scope.End()

	balances, err := handler.service.Balances(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wallet balances")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wallet balances retrieved successfully")

	response.WithJSON(w, http.StatusOK, balances)
}

// AdjustBalance sets one wallet balance to a counted value.
// @Summary Adjust a wallet balance
// @Description Set a wallet to a counted balance; the difference is booked as a balance adjustment entry.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body dto.AdjustBalanceRequest true "Adjust Balance Request"
// @Success 200 {object} response.Message "Balance adjusted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/balances [put]
// @Security BearerAuth
func (handler *Handler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustBalance")
	defer scope.End()

	req := dto.AdjustBalanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AdjustBalance(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust wallet balance")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Wallet balance adjusted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Wallet balance adjusted successfully")
}

// GetEntries retrieves ledger entries based on query parameters.
// @Summary Get ledger entries
// @Description Retrieve ledger entries with optional filtering and pagination.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param wallet query string false "Filter by wallet (cash, bank, escrow, receivable, revenue)"
// @Param category query string false "Filter by category"
// @Param booking_id query string false "Filter by booking ID"
// @Param event_type query string false "Filter by event type"
// @Param system query string false "Filter by origin (true for automatic, false for manual)"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "List of ledger entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/entries [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldWallet, model.FieldCategory, model.FieldBookingID, model.FieldEventType} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if system := r.URL.Query().Get(model.FieldSystem); system != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSystem,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(system),
			Table:    model.TableName,
			ArgName:  "system",
		})
	}

	entries, err := handler.service.GetEntries(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ledger entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ledger entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// CreateManualEntry records an operator-entered transaction.
// @Summary Create a manual ledger entry
// @Description Record a manual inflow or outflow against one wallet, balanced against revenue.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body dto.ManualEntryRequest true "Manual Entry Request"
// @Success 201 {object} response.Message "Manual entry created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/entries [post]
// @Security BearerAuth
func (handler *Handler) CreateManualEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateManualEntry")
	defer scope.End()

	req := dto.ManualEntryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ManualEntry(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create manual entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Manual entry created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Manual entry created successfully")
}

// DeleteManualEntry deletes a manual entry and unwinds its balances.
// @Summary Delete a manual ledger entry
// @Description Delete a manual entry together with its balancing counterpart. Automatic entries cannot be deleted.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Ledger Entry ID"
// @Success 200 {object} response.Message "Manual entry deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/entries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteManualEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteManualEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteManualEntry(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete manual entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Manual entry deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Manual entry deleted successfully")
}
