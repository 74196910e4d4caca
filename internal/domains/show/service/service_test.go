package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/config"
	"encore/infras/otel/mocks"
	s3Mocks "encore/infras/s3/mocks"
	showMocks "encore/internal/domains/show/mocks"
	"encore/internal/domains/show/model"
	"encore/internal/domains/show/model/dto"
	"encore/internal/domains/show/service"
	"encore/shared/cache"
	cacheMocks "encore/shared/cache/mocks"
	gDto "encore/shared/dto"
	"encore/shared/failure"
)

var start = time.Date(2026, time.March, 7, 20, 0, 0, 0, time.UTC)

type fixture struct {
	repo  *showMocks.MockShow
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Show
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:  showMocks.NewMockShow(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func (f fixture) allowCacheWrites() {
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func storedShow() model.Show {
	end := model.NewTimestamp(start.Add(2 * time.Hour))

	return model.Show{
		ID:        "s1",
		Title:     "Spring tour opener",
		StartTime: model.NewTimestamp(start),
		EndTime:   &end,
		Venue:     "Riverside Arena",
		PosterURL: "https://cdn.example.com/show/s1-old.png",
	}
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func pngPoster(t *testing.T, width, height int) (dto.UploadPosterRequest, image.Image) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	header := &multipart.FileHeader{
		Filename: "poster.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
		Size:     int64(buf.Len()),
	}

	return dto.UploadPosterRequest{Poster: header, PosterFile: memFile{bytes.NewReader(buf.Bytes())}}, img
}

func TestShowService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateShowRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.CreateShowRequest{Title: "Opener", StartTime: model.NewTimestamp(start), Venue: "Arena"},
			setupMock: func(f fixture) {
				f.allowCacheWrites()
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "end before start",
			req: func() dto.CreateShowRequest {
				end := model.NewTimestamp(start.Add(-time.Hour))

				return dto.CreateShowRequest{Title: "Opener", StartTime: model.NewTimestamp(start), EndTime: &end, Venue: "Arena"}
			}(),
			setupMock: func(fixture) {},
			wantCode:  400,
			wantErr:   true,
		},
		{
			name: "insert fails",
			req:  dto.CreateShowRequest{Title: "Opener", StartTime: model.NewTimestamp(start), Venue: "Arena"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("write concern"))
			},
			wantCode: 500,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.True(t, start.Equal(res.StartTime.Time))
		})
	}
}

func TestShowService_GetAll(t *testing.T) {
	t.Run("defaults to soonest first", func(t *testing.T) {
		f := newFixture(t)
		f.allowCacheWrites()

		filter := gDto.FilterGroup{Filters: []any{}}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), filter).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Show, error) {
				assert.Equal(t, model.FieldStartTime, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.Show{storedShow()}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		require.Len(t, res.Shows, 1)
		assert.Equal(t, "s1", res.Shows[0].ID)
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		assert.NoError(t, err)
	})
}

func TestShowService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateShowRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.UpdateShowRequest{Title: "Renamed"},
			setupMock: func(f fixture) {
				f.allowCacheWrites()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
						assert.Equal(t, "Renamed", fields[model.FieldTitle])
						assert.NotContains(t, fields, model.FieldVenue)

						return true, nil
					})
			},
		},
		{
			name: "new start after stored end",
			req: func() dto.UpdateShowRequest {
				later := model.NewTimestamp(start.Add(5 * time.Hour))

				return dto.UpdateShowRequest{StartTime: &later}
			}(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)
			},
			wantCode: 400,
			wantErr:  true,
		},
		{
			name: "not found",
			req:  dto.UpdateShowRequest{Title: "Renamed"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Show{}, nil)
			},
			wantCode: 404,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "s1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestShowService_Delete(t *testing.T) {
	f := newFixture(t)
	f.allowCacheWrites()

	deleted := make(chan string, 1)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.s3.EXPECT().GetObjectKeyFromURL("https://cdn.example.com/show/s1-old.png").Return("show/s1-old.png")
	f.s3.EXPECT().
		DeleteFile(gomock.Any(), "show/s1-old.png").
		DoAndReturn(func(_ context.Context, key string) error {
			deleted <- key

			return nil
		})

	require.NoError(t, f.svc.Delete(context.Background(), "s1"))

	select {
	case key := <-deleted:
		assert.Equal(t, "show/s1-old.png", key)
	case <-time.After(time.Second):
		t.Fatal("old poster was not deleted")
	}
}

func TestShowService_UploadPoster(t *testing.T) {
	t.Run("wide poster is scaled to 1200px", func(t *testing.T) {
		f := newFixture(t)
		f.allowCacheWrites()
		f.s3.EXPECT().GetObjectKeyFromURL(gomock.Any()).Return("show/s1-old.png").AnyTimes()
		f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		req, _ := pngPoster(t, 2400, 1200)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), model.EntityName, gomock.Any(), "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, fileName, _ string, data []byte) (string, error) {
				assert.Regexp(t, `^s1-\d+\.png$`, fileName)

				img, err := png.Decode(bytes.NewReader(data))
				require.NoError(t, err)
				assert.Equal(t, 1200, img.Bounds().Dx())
				assert.Equal(t, 600, img.Bounds().Dy())

				return "https://cdn.example.com/show/" + fileName, nil
			})
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (bool, error) {
				assert.Contains(t, fields[model.FieldPosterURL], "https://cdn.example.com/show/s1-")

				return true, nil
			})

		res, err := f.svc.UploadPoster(context.Background(), req, "s1")
		require.NoError(t, err)
		assert.Contains(t, res.URL, "https://cdn.example.com/show/s1-")
	})

	t.Run("small poster keeps its size", func(t *testing.T) {
		f := newFixture(t)
		f.allowCacheWrites()
		f.s3.EXPECT().GetObjectKeyFromURL(gomock.Any()).Return("").AnyTimes()

		req, _ := pngPoster(t, 300, 400)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
				img, err := png.Decode(bytes.NewReader(data))
				require.NoError(t, err)
				assert.Equal(t, 300, img.Bounds().Dx())

				return "https://cdn.example.com/show/s1.png", nil
			})
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.UploadPoster(context.Background(), req, "s1")
		assert.NoError(t, err)
	})

	t.Run("unsupported type", func(t *testing.T) {
		f := newFixture(t)

		req, _ := pngPoster(t, 10, 10)
		req.Poster.Header.Set("Content-Type", "image/gif")

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)

		_, err := f.svc.UploadPoster(context.Background(), req, "s1")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not an image", func(t *testing.T) {
		f := newFixture(t)

		req, _ := pngPoster(t, 10, 10)
		req.PosterFile = memFile{bytes.NewReader([]byte("definitely not a png"))}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedShow(), nil)

		_, err := f.svc.UploadPoster(context.Background(), req, "s1")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
