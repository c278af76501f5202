package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Audit=MockAuditService

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/audit/model"
	"lodge/internal/domains/audit/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type RecordResponse struct {
	ID        string  `json:"id"`
	Action    string  `json:"action"`
	Actor     string  `json:"actor"`
	BookingID *string `json:"booking_id,omitempty"`
	Details   string  `json:"details"`
	gDto.Metadata
}

type GetRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

type Audit interface {
	RecordTx(ctx context.Context, sqltx *sqlx.Tx, action, bookingID string, details any) error
	Record(ctx context.Context, action, bookingID string, details any) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (GetRecordsResponse, error)
}

type serviceImpl struct {
	repo repository.Audit
	otel otel.Otel
}

func New(repo repository.Audit, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) build(ctx context.Context, action, bookingID string, details any) (model.Record, error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	raw, err := json.Marshal(details)
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to marshal audit details: %w", err)
	}

	var ref *string
	if bookingID != constant.Empty {
		ref = &bookingID
	}

	return model.Record{
		ID:        uuid.NewString(),
		Action:    action,
		Actor:     actor,
		BookingID: ref,
		Details:   string(raw),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

// RecordTx appends an audit record inside the caller's transaction, so the
// record lands if and only if the audited change commits.
func (s *serviceImpl) RecordTx(ctx context.Context, sqltx *sqlx.Tx, action, bookingID string, details any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.build(ctx, action, bookingID, details)
	if err != nil {
		return err
	}

	return s.repo.InsertTx(ctx, sqltx, record)
}

func (s *serviceImpl) Record(ctx context.Context, action, bookingID string, details any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.build(ctx, action, bookingID, details)
	if err != nil {
		return err
	}

	return s.repo.Insert(ctx, record)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res GetRecordsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit records")

		return res, fmt.Errorf("failed to count audit records: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit records")

		return res, fmt.Errorf("failed to get audit records: %w", err)
	}

	res.TotalData = total
	res.TotalPage = shared.CalculateTotalPage(total, params.Limit)

	res.Records = make([]RecordResponse, len(models))
	for i, mod := range models {
		res.Records[i].ID = mod.ID
		res.Records[i].Action = mod.Action
		res.Records[i].Actor = mod.Actor
		res.Records[i].BookingID = mod.BookingID
		res.Records[i].Details = mod.Details
		res.Records[i].Metadata.FromModel(mod.Metadata)
	}

	return res, nil
}
