package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
)

// WatchHistoryLimit caps the embedded history; older entries fall off the end.
const WatchHistoryLimit = 100

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`
	FullName     string               `bson:"fullName" json:"fullName"`
	Avatar       common.Asset         `bson:"avatar" json:"avatar"`
	CoverImage   *common.Asset        `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	WatchHistory []primitive.ObjectID `bson:"watchHistory" json:"watchHistory"`
	PasswordHash string               `bson:"password" json:"-"`
	RefreshToken string               `bson:"refreshToken,omitempty" json:"-"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the reduced profile embedded wherever an account is
// referenced from another document.
type UserSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Avatar   *common.Asset      `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
