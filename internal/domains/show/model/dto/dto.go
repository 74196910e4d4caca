package dto

import (
	"encore/internal/domains/show/model"
	"encore/shared"
	gDto "encore/shared/dto"
	gModel "encore/shared/model"
	"encore/shared/timezone"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
)

type CreateShowRequest struct {
	Title       string           `json:"title"       validate:"required,min=3,max=150"`
	StartTime   model.Timestamp  `json:"start_time"  validate:"required"`
	EndTime     *model.Timestamp `json:"end_time"    validate:"omitempty"`
	Venue       string           `json:"venue"       validate:"required,max=200"`
	Description string           `json:"description" validate:"omitempty,max=5000"`
}

func (c *CreateShowRequest) ToModel(actor string) model.Show {
	now := timezone.Now()

	return model.Show{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(c.Title),
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Venue:       strings.TrimSpace(c.Venue),
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateShowRequest struct {
	Title       string           `bson:"title"       json:"title"       validate:"omitempty,min=3,max=150"`
	StartTime   *model.Timestamp `bson:"start_time"  json:"start_time"  validate:"omitempty"`
	EndTime     *model.Timestamp `bson:"end_time"    json:"end_time"    validate:"omitempty"`
	Venue       string           `bson:"venue"       json:"venue"       validate:"omitempty,max=200"`
	Description string           `bson:"description" json:"description" validate:"omitempty,max=5000"`
}

type SetPosterRequest struct {
	PosterURL string `bson:"poster_url"`
}

type ShowResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	StartTime   model.Timestamp  `json:"start_time"`
	EndTime     *model.Timestamp `json:"end_time,omitempty"`
	Venue       string           `json:"venue"`
	Description string           `json:"description"`
	PosterURL   string           `json:"poster_url,omitempty"`
	gDto.Metadata
}

func (r *ShowResponse) FromModel(show model.Show) {
	r.ID = show.ID
	r.Title = show.Title
	r.StartTime = show.StartTime
	r.EndTime = show.EndTime
	r.Venue = show.Venue
	r.Description = show.Description
	r.PosterURL = show.PosterURL
	r.Metadata.FromModel(show.Metadata)
}

type GetShowsResponse struct {
	Shows     []ShowResponse `json:"shows"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetShowsResponse) FromModels(models []model.Show, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Shows = make([]ShowResponse, len(models))
	for i, m := range models {
		r.Shows[i].FromModel(m)
	}
}

type UploadPosterRequest struct {
	Poster     *multipart.FileHeader `json:"poster" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	PosterFile multipart.File        `json:"-"`
}

type UploadPosterResponse struct {
	URL string `json:"url"`
}
