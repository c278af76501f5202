package inventory

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/inventory/model"
	"lodge/internal/domains/inventory/model/dto"
	"lodge/internal/domains/inventory/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/items", handler.CreateItem)
		routerGroup.Get("/items", handler.GetItems)
		routerGroup.Get("/items/{id}", handler.GetItemByID)
		routerGroup.Patch("/items/{id}", handler.UpdateItem)
		routerGroup.Delete("/items/{id}", handler.DeleteItem)
		routerGroup.Post("/items/{id}/import", handler.ImportStock)
		routerGroup.Post("/items/{id}/adjust", handler.AdjustStock)
		routerGroup.Get("/logs", handler.GetLogs)
	})
}

// CreateItem handles the creation of a new stock item.
// @Summary Create a new stock item
// @Description Create a sellable stock item with its retail price and unit conversion factor.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Message "Stock item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateItem(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create stock item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock item created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Stock item created successfully")
}

// GetItems retrieves stock items based on query parameters.
// @Summary Get all stock items
// @Description Retrieve stock items with optional filtering and pagination.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query string false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "List of stock items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := r.URL.Query().Get(model.FieldActive); active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	items, err := handler.service.GetItems(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves a stock item by its ID.
// @Summary Get a stock item by ID
// @Description Retrieve a stock item by its unique identifier.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Stock Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Stock item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.GetItem(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem updates a stock item by its ID.
// @Summary Update a stock item by ID
// @Description Update the catalog fields of a stock item. Quantity and cost only move through import, adjust and sales.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Stock Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Message "Stock item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateItem(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update stock item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stock item updated successfully")
}

// DeleteItem deletes a stock item by its ID.
// @Summary Delete a stock item by ID
// @Description Delete a stock item that holds no remaining stock.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Stock Item ID"
// @Success 200 {object} response.Message "Stock item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteItem(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stock item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stock item deleted successfully")
}

// ImportStock imports purchased stock into an item.
// @Summary Import stock
// @Description Add purchased stock in purchase units; the unit cost moves to the weighted average and a paid import reaches the ledger.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Stock Item ID"
// @Param request body dto.ImportRequest true "Import Request"
// @Success 200 {object} response.Message "Stock imported successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items/{id}/import [post]
// @Security BearerAuth
func (handler *Handler) ImportStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportStock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ImportRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Import(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import stock")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock imported successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stock imported successfully")
}

// AdjustStock sets the counted quantity of an item.
// @Summary Adjust stock
// @Description Set an item's quantity to a counted value without touching its cost or the ledger.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Stock Item ID"
// @Param request body dto.AdjustRequest true "Adjust Request"
// @Success 200 {object} response.Message "Stock adjusted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/items/{id}/adjust [post]
// @Security BearerAuth
func (handler *Handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustStock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AdjustRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Adjust(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust stock")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stock adjusted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stock adjusted successfully")
}

// GetLogs retrieves inventory movement logs.
// @Summary Get inventory logs
// @Description Retrieve the movement history of stock with optional filtering and pagination.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param stock_item_id query string false "Filter by stock item ID"
// @Param type query string false "Filter by movement type (import, adjustment, consumption, restock)"
// @Param booking_id query string false "Filter by booking ID"
// @Success 200 {object} response.Data[dto.GetLogsResponse] "List of inventory logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/logs [get]
// @Security BearerAuth
func (handler *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.LogFieldStockItemID, model.LogFieldType, model.LogFieldBookingID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.LogTableName,
			})
		}
	}

	logs, err := handler.service.GetLogs(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
