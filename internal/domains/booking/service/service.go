package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encore/config"
	"encore/infras/jwt"
	"encore/infras/otel"
	"encore/internal/domains/booking/event"
	"encore/internal/domains/booking/model"
	"encore/internal/domains/booking/model/dto"
	"encore/internal/domains/booking/repository"
	notification "encore/internal/domains/notification/service"
	"encore/shared"
	"encore/shared/cache"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
	"encore/shared/timezone"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	lockSaveBooking    = "booking:save"

	defaultLockSeconds = 30
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	// Update saves the edit dialog draft as a whole document under a per-booking lock.
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.SaveBookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.StatusChangeResponse, error)
	// Stats is recomputed from every booking on each call and never cached.
	Stats(ctx context.Context) (model.Counts, error)
	PublicStatus(ctx context.Context, id, email string) (dto.PublicStatusResponse, error)
	VerifyEmail(ctx context.Context, token string) (dto.PublicStatusResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	events   event.Publisher
	notifier notification.Notification
	jwt      jwt.JWT
}

func New(
	repo repository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events event.Publisher,
	notifier notification.Notification,
	jwt jwt.JWT,
) Booking {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		events:   events,
		notifier: notifier,
		jwt:      jwt,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.Finish(&err)

	booking := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("event_date", booking.EventDate).Msg("booking received")

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, constant.Empty)
		s.publish(c, event.Created(booking))

		if err := s.notifier.SendVerification(c, booking); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send verification email")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.SaveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.Finish(&err)

	saved, change, err := s.save(ctx, id, func(booking model.Booking) (model.Booking, model.Change, error) {
		return req.Apply(booking, shared.Actor(ctx))
	})
	if err != nil {
		return res, err
	}

	res.Booking.FromModel(saved)
	res.Reopened = change.Reopened

	if change.Changed() {
		res.Sound = model.SoundCue(change.To)
	}

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.StatusChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.Finish(&err)

	to, err := model.ParseStatus(req.Status)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	_, change, err := s.save(ctx, id, func(booking model.Booking) (model.Booking, model.Change, error) {
		change, err := model.Transition(booking.Status, to)
		if err != nil {
			return booking, change, err
		}

		booking.Status = to
		booking.ModifiedAt = timezone.Now()
		booking.ModifiedBy = shared.Actor(ctx)

		return booking, change, nil
	})
	if err != nil {
		return res, err
	}

	res.FromChange(change)

	return res, nil
}

type mutation func(booking model.Booking) (model.Booking, model.Change, error)

// save holds the booking's save lock for the whole read-modify-replace cycle. A second
// save of the same booking while the lock is held gets a Conflict.
func (s *serviceImpl) save(ctx context.Context, id string, mutate mutation) (model.Booking, model.Change, error) {
	lockKey := shared.BuildCacheKey(lockSaveBooking, id)

	lockSeconds := s.cfg.Cache.LockTTLSeconds
	if lockSeconds <= 0 {
		lockSeconds = defaultLockSeconds
	}

	lockToken, err := s.cache.Lock(ctx, lockKey, lockSeconds)
	if err != nil {
		if errors.Is(err, cache.ErrLocked) {
			log.Warn().Str("booking_id", id).Msg("booking save already in progress")

			return model.Booking{}, model.Change{}, failure.Conflict("booking is already being saved")
		}

		log.Error().Err(err).Str("booking_id", id).Msg("failed to acquire booking save lock")

		return model.Booking{}, model.Change{}, fmt.Errorf("failed to acquire booking save lock: %w", err)
	}

	defer func() {
		if err := s.cache.Unlock(context.WithoutCancel(ctx), lockKey, lockToken); err != nil {
			if errors.Is(err, cache.ErrLockLost) {
				log.Warn().Str("booking_id", id).Int("lock_seconds", lockSeconds).Msg("booking save outlived its lock")

				return
			}

			log.Error().Err(err).Str("booking_id", id).Msg("failed to release booking save lock")
		}
	}()

	current, err := s.find(ctx, id)
	if err != nil {
		return model.Booking{}, model.Change{}, err
	}

	updated, change, err := mutate(current)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("invalid booking change")

		return model.Booking{}, model.Change{}, failure.BadRequest(err)
	}

	if change.Reopened {
		log.Warn().Str("booking_id", id).Str("from", change.From.String()).Msg("booking reopened")
	}

	matched, err := s.repo.Replace(ctx, updated)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to save booking")

		return model.Booking{}, model.Change{}, fmt.Errorf("failed to save booking: %w", err)
	}

	if !matched {
		return model.Booking{}, model.Change{}, failure.NotFound("booking not found")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if change.Changed() {
			s.publish(c, event.StatusChanged(updated, change))
		}
	}()

	return updated, change, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res model.Counts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.Finish(&err)

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res, err = model.Tally(bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to tally bookings")

		return res, fmt.Errorf("failed to tally bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) PublicStatus(ctx context.Context, id, email string) (res dto.PublicStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublicStatus")
	defer scope.Finish(&err)

	if id == constant.Empty || email == constant.Empty {
		return res, failure.BadRequestFromString("booking id and email are required")
	}

	booking, err := s.repo.Get(ctx, repository.FilterByIDAndEmail(id, normalizeEmail(email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) VerifyEmail(ctx context.Context, token string) (res dto.PublicStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyEmail")
	defer scope.Finish(&err)

	claims, err := s.jwt.ValidateToken(token, jwt.VerifyToken)
	if err != nil {
		log.Warn().Err(err).Msg("invalid verify token")

		return res, failure.BadRequestFromString("verification link is invalid or has expired")
	}

	filter := repository.FilterByIDAndEmail(claims.BookingID, claims.Email)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	if !booking.EmailVerified {
		fields := shared.TransformFieldsByTag(dto.MarkVerifiedRequest{EmailVerified: true}, shared.TagBSON, constant.ContextPublic)

		if _, err = s.repo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Msg("failed to mark booking email verified")

			return res, fmt.Errorf("failed to mark booking email verified: %w", err)
		}

		booking.EmailVerified = true

		go s.invalidate(context.WithoutCancel(ctx), booking.ID)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, repository.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

// publish is best effort. The write it reports has already succeeded.
func (s *serviceImpl) publish(ctx context.Context, evt event.Event) {
	if err := s.events.Publish(ctx, evt); err != nil {
		log.Error().Err(err).Str("booking_id", evt.BookingID).Str("type", evt.Type).Msg("failed to publish booking event")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
