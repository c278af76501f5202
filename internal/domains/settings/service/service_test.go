package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	auditMocks "lodge/internal/domains/audit/mocks"
	settingsMocks "lodge/internal/domains/settings/mocks"
	"lodge/internal/domains/settings/model"
	"lodge/internal/domains/settings/model/dto"
	"lodge/internal/domains/settings/service"
	cacheMocks "lodge/shared/cache/mocks"
)

func newService(t *testing.T) (service.Settings, *settingsMocks.MockSettings, *auditMocks.MockAuditService, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockAudit := auditMocks.NewMockAuditService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAudit, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockAudit, mockCache
}

func seededSetting() model.Setting {
	return model.Setting{
		ID:                model.SingletonID,
		CheckInTime:       "14:00",
		CheckOutTime:      "12:00",
		EarlyArrivalTime:  "06:00",
		LateDepartureTime: "13:00",
		OvernightEndTime:  "12:00",
		GraceMinutes:      15,
		BlockMinutes:      60,
		CeilingEnabled:    true,
		CeilingPercent:    100,
		VatPercent:        10,
		ServiceFeePercent: 5,
	}
}

func TestSettingsService_Get(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, settings from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(seededSetting(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "row not seeded",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Setting{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Setting{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSettingsService_Update(t *testing.T) {
	svc, mockRepo, mockAudit, mockCache := newService(t)

	grace := 30
	req := dto.UpdateSettingsRequest{
		CheckInTime:  "15:00",
		GraceMinutes: &grace,
		EarlyBands: []dto.BandRequest{
			{FromMinute: 0, ToMinute: 360, Percent: 50},
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "15:00", fields["check_in_time"])
						assert.Contains(t, fields, "early_bands")

						return nil
					})

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "audit failure does not fail the update",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("audit insert failed"))

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSettingsService_Snapshot(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(seededSetting(), nil)

	snap, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, snap.Tariff.GraceMinutes)
	assert.Equal(t, 10, snap.VatPercent)
	assert.Equal(t, 5, snap.ServiceFeePercent)
}

func TestSettingsService_SnapshotRejectsUnseededRow(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Setting{}, nil)

	_, err := svc.Snapshot(context.Background())

	assert.Error(t, err)
}
