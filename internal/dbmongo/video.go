package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
)

// DailyView is the view bucket for one UTC calendar day.
type DailyView struct {
	Date  time.Time `bson:"date" json:"date"`
	Count int64     `bson:"count" json:"count"`
}

type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	VideoFile   common.Asset       `bson:"videoFile" json:"videoFile"`
	Thumbnail   *common.Asset      `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	DailyViews  []DailyView        `bson:"dailyViews" json:"dailyViews,omitempty"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VideoWithOwner is a video with its owner resolved to a summary.
type VideoWithOwner struct {
	Video        `bson:",inline"`
	OwnerDetails *UserSummary `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
}
