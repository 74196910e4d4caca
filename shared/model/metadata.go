package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `json:"created_at"  db:"created_at"  bson:"created_at"`
	ModifiedAt time.Time `json:"modified_at" db:"modified_at" bson:"modified_at"`
	CreatedBy  string    `json:"created_by"  db:"created_by"  bson:"created_by"`
	ModifiedBy string    `json:"modified_by" db:"modified_by" bson:"modified_by"`
}
