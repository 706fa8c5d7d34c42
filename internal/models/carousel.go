package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarouselSlide is a homepage banner; Order is a plain sort key.
type CarouselSlide struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ContentID *ContentID         `json:"tmdbID" bson:"contentID"`
	Title     string             `json:"title" bson:"title"`
	ImagePath string             `json:"imagePath" bson:"imagePath"`
	ImageType string             `json:"imageType" bson:"imageType"`
	Order     int                `json:"order" bson:"order"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
