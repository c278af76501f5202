package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Settings=MockSettingsService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	auditModel "lodge/internal/domains/audit/model"
	auditService "lodge/internal/domains/audit/service"
	"lodge/internal/domains/settings/model"
	"lodge/internal/domains/settings/model/dto"
	"lodge/internal/domains/settings/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

const (
	cacheGetSettings = "settings:get"
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
	Snapshot(ctx context.Context) (model.Snapshot, error)
}

type serviceImpl struct {
	repo  repository.Settings
	audit auditService.Audit
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, audit auditService.Audit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) get(ctx context.Context) (model.Setting, error) {
	setting, err := s.repo.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return setting, fmt.Errorf("failed to get settings: %w", err)
	}

	if setting.ID == constant.Empty {
		return setting, failure.InsufficientConfig("settings row is not seeded") //nolint:wrapcheck
	}

	return setting, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for settings")

		return res, nil
	}

	setting, err := s.get(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(setting)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)

	if req.EarlyBands != nil {
		updatedFields["early_bands"] = req.ToBands(req.EarlyBands)
	}

	if req.LateBands != nil {
		updatedFields["late_bands"] = req.ToBands(req.LateBands)
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return fmt.Errorf("failed to update settings: %w", err)
	}

	if err := s.audit.Record(ctx, auditModel.ActionUpdateSettings, constant.Empty, req); err != nil {
		log.Error().Err(err).Msg("failed to record settings audit")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete settings cache")
		}
	}()

	return nil
}

// Snapshot reads the stored configuration and freezes it for one calculation.
// Callers hold the returned value for the whole operation, so a concurrent
// settings edit never changes a bill halfway through.
func (s *serviceImpl) Snapshot(ctx context.Context) (snap model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	setting, err := s.get(ctx)
	if err != nil {
		return snap, err
	}

	return setting.Snapshot()
}
