package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encore/config"
	"encore/infras/otel"
	"encore/infras/s3"
	"encore/internal/domains/show/model"
	"encore/internal/domains/show/model/dto"
	"encore/internal/domains/show/repository"
	"encore/shared"
	"encore/shared/cache"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
	"encore/shared/timezone"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetShow    = "show:get"
	cacheGetAllShow = "show:gets"
	cacheCountShow  = "show:count"

	posterMaxWidth = 1200
)

const (
	contentTypePNG  = "image/png"
	contentTypeJPEG = "image/jpeg"
	contentTypeJPG  = "image/jpg"
)

type Show interface {
	Create(ctx context.Context, req dto.CreateShowRequest) (dto.ShowResponse, error)
	// GetAll sorts by start time, soonest first, unless the caller asks otherwise.
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetShowsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ShowResponse, error)
	Update(ctx context.Context, req dto.UpdateShowRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadPoster(ctx context.Context, req dto.UploadPosterRequest, id string) (dto.UploadPosterResponse, error)
}

type serviceImpl struct {
	repo  repository.Show
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Show, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Show {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateShowRequest) (res dto.ShowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.Finish(&err)

	if req.EndTime != nil && req.EndTime.Before(req.StartTime.Time) {
		return res, failure.BadRequestFromString("end_time must not be before start_time")
	}

	show := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, show); err != nil {
		log.Error().Err(err).Msg("failed to create show")

		return res, fmt.Errorf("failed to create show: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	res.FromModel(show)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetShowsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.Finish(&err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldStartTime
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllShow, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for shows")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shows")

		return res, err
	}

	shows, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shows")

		return res, fmt.Errorf("failed to get shows: %w", err)
	}

	res.FromModels(shows, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shows to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountShow, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shows")

		return total, fmt.Errorf("failed to count shows: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save show count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ShowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKey(cacheGetShow, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for show")

		return res, nil
	}

	show, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(show)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save show to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateShowRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.Finish(&err)

	show, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	start, end := show.StartTime, show.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
	}

	if req.EndTime != nil {
		end = req.EndTime
	}

	if end != nil && end.Before(start.Time) {
		return failure.BadRequestFromString("end_time must not be before start_time")
	}

	fields := shared.TransformFieldsByTag(req, shared.TagBSON, shared.Actor(ctx))

	matched, err := s.repo.Update(ctx, fields, repository.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to update show")

		return fmt.Errorf("failed to update show: %w", err)
	}

	if !matched {
		return failure.NotFound("show not found")
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.Finish(&err)

	show, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, repository.FilterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete show")

		return fmt.Errorf("failed to delete show: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.deletePoster(c, show.PosterURL)
	}()

	return nil
}

// UploadPoster scales the image down to the poster width and replaces the show's poster.
func (s *serviceImpl) UploadPoster(ctx context.Context, req dto.UploadPosterRequest, id string) (res dto.UploadPosterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPoster")
	defer scope.Finish(&err)

	show, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	contentType := req.Poster.Header.Get(constant.RequestHeaderContentType)

	format, ext, err := posterFormat(contentType)
	if err != nil {
		return res, err
	}

	img, err := imaging.Decode(req.PosterFile, imaging.AutoOrientation(true))
	if err != nil {
		log.Warn().Err(err).Str("show_id", id).Msg("failed to decode poster")

		return res, failure.BadRequestFromString("poster is not a valid image")
	}

	if img.Bounds().Dx() > posterMaxWidth {
		img = imaging.Resize(img, posterMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, format); err != nil {
		log.Error().Err(err).Msg("failed to encode poster")

		return res, fmt.Errorf("failed to encode poster: %w", err)
	}

	fileName := fmt.Sprintf("%s-%d%s", id, timezone.Now().Unix(), ext)

	url, err := s.s3.UploadFileBytes(ctx, model.EntityName, fileName, contentType, buf.Bytes())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload poster")

		return res, fmt.Errorf("failed to upload poster: %w", err)
	}

	fields := shared.TransformFieldsByTag(dto.SetPosterRequest{PosterURL: url}, shared.TagBSON, shared.Actor(ctx))

	if _, err = s.repo.Update(ctx, fields, repository.FilterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to save poster url")

		return res, fmt.Errorf("failed to save poster url: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.deletePoster(c, show.PosterURL)
	}()

	res.URL = url

	return res, nil
}

func posterFormat(contentType string) (imaging.Format, string, error) {
	switch contentType {
	case contentTypePNG:
		return imaging.PNG, ".png", nil
	case contentTypeJPEG, contentTypeJPG:
		return imaging.JPEG, ".jpg", nil
	default:
		return 0, constant.Empty, failure.BadRequestFromString("poster must be a png or jpeg image")
	}
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Show, error) {
	show, err := s.repo.Get(ctx, repository.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get show")

		return show, fmt.Errorf("failed to get show: %w", err)
	}

	if show.ID == constant.Empty {
		return show, failure.NotFound("show not found")
	}

	return show, nil
}

func (s *serviceImpl) deletePoster(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	key := s.s3.GetObjectKeyFromURL(url)
	if key == constant.Empty {
		log.Warn().Str("url", url).Msg("poster is not in the configured bucket")

		return
	}

	if err := s.s3.DeleteFile(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete old poster")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetShow, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete show from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllShow)
	shared.InvalidateCaches(ctx, s.cache, cacheCountShow)
}
