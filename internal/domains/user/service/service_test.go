package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/config"
	"encore/infras/otel/mocks"
	userMocks "encore/internal/domains/user/mocks"
	"encore/internal/domains/user/model"
	"encore/internal/domains/user/model/dto"
	"encore/internal/domains/user/service"
	cacheMocks "encore/shared/cache/mocks"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
)

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.User{
		{ID: "1", Email: "a@encore.local", Level: constant.RoleSuperAdmin, Active: true},
		{ID: "2", Email: "b@encore.local", Level: constant.RoleAdmin},
	}, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Users, 2)
	assert.Equal(t, "a@encore.local", res.Users[0].Email)
	assert.False(t, res.Users[1].Active)
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), "user:get:missing", gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), "user:get:1", gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "1", Email: "a@encore.local"}, nil)
		mockCache.EXPECT().Save(gomock.Any(), "user:get:1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "a@encore.local", res.Email)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	inactive := false
	admin := constant.RoleAdmin
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "self")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "owner@encore.local")

	superadmin := model.User{ID: "2", Level: constant.RoleSuperAdmin, Active: true}

	expectWrite := func() {
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "owner@encore.local", fields[constant.FieldModifiedBy])

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	}

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateUserRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:      "empty request",
			id:        "2",
			setupMock: func() {},
			wantCode:  400,
		},
		{
			name:      "cannot deactivate self",
			id:        "self",
			req:       dto.UpdateUserRequest{Active: &inactive},
			setupMock: func() {},
			wantCode:  400,
		},
		{
			name: "missing account",
			id:   "2",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "deactivates another admin",
			id:   "3",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "3", Level: constant.RoleAdmin, Active: true}, nil)
				expectWrite()
			},
		},
		{
			name: "last superadmin keeps the role",
			id:   "2",
			req:  dto.UpdateUserRequest{Level: &admin},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(superadmin, nil)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantCode: 400,
		},
		{
			name: "superadmin demoted while another remains",
			id:   "2",
			req:  dto.UpdateUserRequest{Level: &admin},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(superadmin, nil)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				expectWrite()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
