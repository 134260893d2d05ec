package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeKind tags what a Like points at.
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

func (k LikeKind) IsValid() bool {
	return k == LikeKindVideo || k == LikeKindComment || k == LikeKindTweet
}

// Collection returns the collection the target lives in.
func (k LikeKind) Collection() string {
	switch k {
	case LikeKindVideo:
		return VideosCollection
	case LikeKindComment:
		return CommentsCollection
	case LikeKindTweet:
		return TweetsCollection
	default:
		return ""
	}
}

// LikeTarget references exactly one likeable document.
type LikeTarget struct {
	Kind LikeKind           `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	LikedBy   primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	Target    LikeTarget         `bson:"target" json:"target"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
