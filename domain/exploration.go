package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-rover/rover"
	"github.com/google/uuid"
)

// Exploration is one finished traversal together with the grid it ran on.
type Exploration struct {
	ID        uuid.UUID    `json:"id" bson:"_id"`
	CreatedAt time.Time    `json:"created_at" bson:"createdAt"`
	Columns   int          `json:"columns" bson:"columns"`
	Grid      string       `json:"grid" bson:"grid"` // grid in source format
	Report    rover.Report `json:"report" bson:"report"`
}
