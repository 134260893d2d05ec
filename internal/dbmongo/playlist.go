package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PlaylistDetails is a playlist with its videos and owner resolved.
type PlaylistDetails struct {
	ID           primitive.ObjectID   `bson:"_id" json:"_id"`
	Name         string               `bson:"name" json:"name"`
	Description  string               `bson:"description" json:"description"`
	Owner        primitive.ObjectID   `bson:"owner" json:"owner"`
	OwnerDetails *UserSummary         `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
	VideoIDs     []primitive.ObjectID `bson:"videos" json:"-"`
	Videos       []VideoWithOwner     `bson:"videoDetails" json:"videos"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
