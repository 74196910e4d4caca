package model

import (
	gModel "encore/shared/model"
)

const (
	CollectionName = "shows"
	EntityName     = "show"
)

const (
	FieldID          = "_id"
	FieldTitle       = "title"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldVenue       = "venue"
	FieldDescription = "description"
	FieldPosterURL   = "poster_url"
)

type Show struct {
	ID          string     `bson:"_id"                  json:"id"`
	Title       string     `bson:"title"                json:"title"`
	StartTime   Timestamp  `bson:"start_time"           json:"start_time"`
	EndTime     *Timestamp `bson:"end_time,omitempty"   json:"end_time,omitempty"`
	Venue       string     `bson:"venue"                json:"venue"`
	Description string     `bson:"description"          json:"description"`
	PosterURL   string     `bson:"poster_url,omitempty" json:"poster_url,omitempty"`
	gModel.Metadata `bson:",inline"`
}
