package audit

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/audit/model"
	"lodge/internal/domains/audit/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRecords)
	})
}

// GetRecords retrieves audit records based on query parameters.
// @Summary Get audit records
// @Description Retrieve the append-only trail of state-changing actions with optional filtering and pagination.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param action query string false "Filter by action"
// @Param booking_id query string false "Filter by booking ID"
// @Success 200 {object} response.Data[service.GetRecordsResponse] "List of audit records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit [get]
// @Security BearerAuth
func (handler *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecords")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldAction, model.FieldBookingID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	records, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit records retrieved successfully")

	response.WithJSON(w, http.StatusOK, records)
}
