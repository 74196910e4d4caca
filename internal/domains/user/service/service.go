package service

import (
	"context"
	"encore/config"
	"encore/infras/otel"
	"encore/internal/domains/user/model"
	"encore/internal/domains/user/model/dto"
	"encore/internal/domains/user/repository"
	"encore/shared"
	"encore/shared/cache"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
)

var errLastSuperAdmin = failure.BadRequestFromString("the last active superadmin cannot be demoted or deactivated")

// User manages admin accounts. Creation goes through auth.Register and the migrate seed.
type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll caches the page together with its total, so one entry answers the whole listing.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for admins")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return res, fmt.Errorf("failed to count admins: %w", err)
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list admins")

		return res, fmt.Errorf("failed to list admins: %w", err)
	}

	res.FromModels(users, total, req.Limit)

	s.store(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	s.store(ctx, cacheKey, res)

	return res, nil
}

// Update changes level, name or active flag. Nobody can switch off their own account,
// and the last active superadmin always keeps that role.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.Finish(&err)

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if id == ctx.Value(constant.ContextKeyUserID) && req.Active != nil && !*req.Active {
		return failure.BadRequestFromString("cannot deactivate your own account")
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if demotesSuperAdmin(user, req) {
		remaining, err := s.repo.Count(ctx, repository.FilterActiveSuperAdmins())
		if err != nil {
			log.Error().Err(err).Msg("failed to count superadmins")

			return fmt.Errorf("failed to count superadmins: %w", err)
		}

		if remaining <= 1 {
			return errLastSuperAdmin
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to update admin")

		return fmt.Errorf("failed to update admin: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Error().Err(err).Msg("failed to evict admin from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
	}()

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get admin")

		return user, fmt.Errorf("failed to get admin: %w", err)
	}

	if user.ID == "" {
		return user, failure.NotFound("user not found")
	}

	return user, nil
}

func (s *serviceImpl) store(ctx context.Context, key string, value any) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to cache admins")
		}
	}()
}

func demotesSuperAdmin(user model.User, req dto.UpdateUserRequest) bool {
	if user.Level != constant.RoleSuperAdmin || !user.Active {
		return false
	}

	demoted := req.Level != nil && *req.Level != constant.RoleSuperAdmin
	deactivated := req.Active != nil && !*req.Active

	return demoted || deactivated
}
