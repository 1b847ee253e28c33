package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	roomMocks "reception/internal/domains/room/mocks"
	"reception/internal/domains/room/model"
	"reception/internal/domains/room/model/dto"
	"reception/internal/domains/room/service"
	eventMocks "reception/internal/events/mocks"
	"reception/shared/cache"
	"reception/shared/failure"
	gModel "reception/shared/model"
	"reception/shared/timezone"
)

// stubCache always misses so the services hit their repositories; the write
// side is a no-op. A stub keeps the async cache goroutines out of gomock's
// expectation accounting.
type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error         { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error             { return nil }
func (stubCache) Clear(_ context.Context, _ string) error              { return nil }

func availableRoom() model.Room {
	return model.Room{
		ID:          "room-101",
		RoomNumber:  "101",
		RoomType:    "deluxe",
		NightlyRate: 1_000_000,
		Status:      model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, stubCache{}, mockOtel)

	t.Run("found", func(t *testing.T) {
		room := availableRoom()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		res, err := svc.Get(context.Background(), room.ID)

		assert.NoError(t, err)
		assert.Equal(t, room.ID, res.ID)
		assert.Equal(t, room.RoomNumber, res.RoomNumber)
		assert.Equal(t, room.Status.String(), res.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestRoomService_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, stubCache{}, mockOtel)

	rooms := []model.Room{availableRoom()}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rooms, nil)

	res, err := svc.ListAvailable(context.Background(), "deluxe")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "101", res[0].RoomNumber)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   model.Status
		requested string
		setupMock func(repo *roomMocks.MockRoom, publisher *eventMocks.MockPublisher, room model.Room)
		wantErr   bool
		wantKind  string
	}{
		{
			name:      "dirty to cleaning",
			current:   model.StatusDirty,
			requested: "cleaning",
			setupMock: func(repo *roomMocks.MockRoom, publisher *eventMocks.MockPublisher, room model.Room) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				publisher.EXPECT().
					RoomStatusChanged(gomock.Any(), gomock.Any())
			},
		},
		{
			name:      "dirty straight to available is rejected",
			current:   model.StatusDirty,
			requested: "available",
			setupMock: func(repo *roomMocks.MockRoom, publisher *eventMocks.MockPublisher, room model.Room) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name:      "occupied room is never staff writable",
			current:   model.StatusOccupied,
			requested: "dirty",
			setupMock: func(repo *roomMocks.MockRoom, publisher *eventMocks.MockPublisher, room model.Room) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name:      "room not found",
			current:   model.StatusDirty,
			requested: "cleaning",
			setupMock: func(repo *roomMocks.MockRoom, publisher *eventMocks.MockPublisher, room model.Room) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name:      "concurrent change loses the guarded update",
			current:   model.StatusDirty,
			requested: "cleaning",
			setupMock: func(repo *roomMocks.MockRoom, publisher *eventMocks.MockPublisher, room model.Room) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := roomMocks.NewMockRoom(ctrl)
			mockPublisher := eventMocks.NewMockPublisher(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockPublisher, &config.Config{}, stubCache{}, mockOtel)

			room := availableRoom()
			room.Status = tc.current

			tc.setupMock(mockRepo, mockPublisher, room)

			err := svc.UpdateStatus(context.Background(), room.ID, dto.UpdateRoomStatusRequest{Status: tc.requested})

			if tc.wantErr {
				assert.Error(t, err)

				if tc.wantKind != "" {
					assert.True(t, failure.IsKind(err, tc.wantKind))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
