package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	auditMocks "lodge/internal/domains/audit/mocks"
	"lodge/internal/domains/audit/model"
	"lodge/internal/domains/audit/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

func TestAuditService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := auditMocks.NewMockAudit(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	var inserted model.Record

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.Record) error {
			inserted = record

			return nil
		})

	err := svc.Record(ctx, model.ActionCheckout, "booking-id", map[string]any{"total": 254100})
	require.NoError(t, err)

	assert.Equal(t, model.ActionCheckout, inserted.Action)
	assert.Equal(t, "staff-1", inserted.Actor)
	require.NotNil(t, inserted.BookingID)
	assert.Equal(t, "booking-id", *inserted.BookingID)

	var details map[string]any
	require.NoError(t, json.Unmarshal([]byte(inserted.Details), &details))
	assert.EqualValues(t, 254100, details["total"])
}

func TestAuditService_RecordWithoutBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := auditMocks.NewMockAudit(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.Record) error {
			assert.Nil(t, record.BookingID)

			return nil
		})

	err := svc.Record(context.Background(), model.ActionUpdateSettings, constant.Empty, map[string]any{"vat_percent": 11})

	assert.NoError(t, err)
}

func TestAuditService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := auditMocks.NewMockAudit(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful listing",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Record{{ID: "record-id", Action: model.ActionCheckIn}}, nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Records, 1)
			assert.Equal(t, 1, res.TotalData)
		})
	}
}
