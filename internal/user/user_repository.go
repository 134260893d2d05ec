package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already taken")
)

// ChannelProfile is an account as seen by a viewer on its channel page.
type ChannelProfile struct {
	ID                        primitive.ObjectID `bson:"_id" json:"_id"`
	FullName                  string             `bson:"fullName" json:"fullName"`
	Username                  string             `bson:"username" json:"username"`
	Email                     string             `bson:"email" json:"email"`
	Avatar                    common.Asset       `bson:"avatar" json:"avatar"`
	CoverImage                *common.Asset      `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	SubscribersCount          int64              `bson:"subscribersCount" json:"subscribersCount"`
	ChannelsSubscribedToCount int64              `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool               `bson:"isSubscribed" json:"isSubscribed"`
}

// AccountCounts totals what an account owns and its place in the
// subscription graph.
type AccountCounts struct {
	Videos        int64 `json:"videos"`
	Tweets        int64 `json:"tweets"`
	Playlists     int64 `json:"playlists"`
	Subscribers   int64 `json:"subscribers"`
	Subscriptions int64 `json:"subscriptions"`
}

//go:generate mockgen -source=user_repository.go -destination=mock_user_repository_test.go -package=user

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmongo.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.User, error)
	GetUserByLogin(ctx context.Context, username, email string) (*dbmongo.User, error)
	CheckUserExists(ctx context.Context, username, email string) (bool, error)
	AccountExists(ctx context.Context, id primitive.ObjectID) (bool, error)

	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	SwapRefreshToken(ctx context.Context, id primitive.ObjectID, presented, next string) (bool, error)
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error

	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, id primitive.ObjectID, fullName, email string) (*dbmongo.User, error)
	SetAvatar(ctx context.Context, id primitive.ObjectID, avatar common.Asset) (*dbmongo.User, error)
	SetCoverImage(ctx context.Context, id primitive.ObjectID, cover common.Asset) (*dbmongo.User, error)

	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*ChannelProfile, error)
	VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]dbmongo.VideoWithOwner, error)
	PushWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error
	CountsFor(ctx context.Context, id primitive.ObjectID) (*AccountCounts, error)
}

type userRepository struct {
	db    *mongo.Database
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{db: db, users: db.Collection(dbmongo.UsersCollection)}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmongo.User) error {
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}

	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// GetUserByLogin matches either identifier; empty ones are ignored.
func (r *userRepository) GetUserByLogin(ctx context.Context, username, email string) (*dbmongo.User, error) {
	filter := loginFilter(username, email)
	if filter == nil {
		return nil, ErrUserNotFound
	}
	return r.findOne(ctx, filter)
}

func (r *userRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	filter := loginFilter(username, email)
	if filter == nil {
		return false, nil
	}
	count, err := r.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) AccountExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return r.updateExisting(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{
		{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: token}}},
	})
}

// SwapRefreshToken replaces the stored refresh token only if it still equals
// presented. false means the presented token was superseded, revoked or the
// account is gone.
func (r *userRepository) SwapRefreshToken(ctx context.Context, id primitive.ObjectID, presented, next string) (bool, error) {
	res, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "refreshToken", Value: presented}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: next}}}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return res.MatchedCount == 1, nil
}

func (r *userRepository) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.users.UpdateByID(ctx, id, bson.D{{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}}})
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.updateExisting(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{
		{Key: "$set", Value: bson.D{{Key: "password", Value: hash}, {Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *userRepository) UpdateAccount(ctx context.Context, id primitive.ObjectID, fullName, email string) (*dbmongo.User, error) {
	return r.findAndSet(ctx, id, bson.D{{Key: "fullName", Value: fullName}, {Key: "email", Value: email}})
}

func (r *userRepository) SetAvatar(ctx context.Context, id primitive.ObjectID, avatar common.Asset) (*dbmongo.User, error) {
	return r.findAndSet(ctx, id, bson.D{{Key: "avatar", Value: avatar}})
}

func (r *userRepository) SetCoverImage(ctx context.Context, id primitive.ObjectID, cover common.Asset) (*dbmongo.User, error) {
	return r.findAndSet(ctx, id, bson.D{{Key: "coverImage", Value: cover}})
}

func (r *userRepository) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*ChannelProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: dbmongo.SubscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: dbmongo.SubscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribedTo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channelsSubscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$subscribers.subscriber"}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "fullName", Value: 1},
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		}}},
	}

	cursor, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to load channel profile: %w", err)
	}
	var profiles []ChannelProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode channel profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrUserNotFound
	}
	return &profiles[0], nil
}

// VideosByIDs loads the given videos with owners resolved. Order is not
// preserved and missing ids are skipped.
func (r *userRepository) VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]dbmongo.VideoWithOwner, error) {
	if len(ids) == 0 {
		return []dbmongo.VideoWithOwner{}, nil
	}
	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}}},
		dbmongo.LookupUser("owner", "ownerDetails", "fullName", "username", "avatar"),
	)
	cursor, err := r.db.Collection(dbmongo.VideosCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to load watch history: %w", err)
	}
	videos := []dbmongo.VideoWithOwner{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode watch history: %w", err)
	}
	return videos, nil
}

// PushWatchHistory moves videoID to the front of the history in a single
// update, dropping any earlier occurrence and trimming to the limit.
func (r *userRepository) PushWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "watchHistory", Value: bson.D{{Key: "$slice", Value: bson.A{
			bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.A{videoID},
				bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$watchHistory", bson.A{}}}}},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", videoID}}}},
				}}},
			}}},
			dbmongo.WatchHistoryLimit,
		}}}}}}},
	}
	if _, err := r.users.UpdateByID(ctx, userID, update); err != nil {
		return fmt.Errorf("failed to update watch history: %w", err)
	}
	return nil
}

func (r *userRepository) CountsFor(ctx context.Context, id primitive.ObjectID) (*AccountCounts, error) {
	counts := &AccountCounts{}
	queries := []struct {
		coll   string
		filter bson.D
		dst    *int64
	}{
		{dbmongo.VideosCollection, bson.D{{Key: "owner", Value: id}}, &counts.Videos},
		{dbmongo.TweetsCollection, bson.D{{Key: "owner", Value: id}}, &counts.Tweets},
		{dbmongo.PlaylistsCollection, bson.D{{Key: "owner", Value: id}}, &counts.Playlists},
		{dbmongo.SubscriptionsCollection, bson.D{{Key: "channel", Value: id}}, &counts.Subscribers},
		{dbmongo.SubscriptionsCollection, bson.D{{Key: "subscriber", Value: id}}, &counts.Subscriptions},
	}
	for _, q := range queries {
		n, err := r.db.Collection(q.coll).CountDocuments(ctx, q.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", q.coll, err)
		}
		*q.dst = n
	}
	return counts, nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*dbmongo.User, error) {
	var user dbmongo.User
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) findAndSet(ctx context.Context, id primitive.ObjectID, fields bson.D) (*dbmongo.User, error) {
	fields = append(fields, bson.E{Key: "updatedAt", Value: time.Now().UTC()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user dbmongo.User
	err := r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: fields}}, opts).Decode(&user)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrUserNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, ErrDuplicateUser
	case err != nil:
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) updateExisting(ctx context.Context, filter, update bson.D) error {
	res, err := r.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func loginFilter(username, email string) bson.D {
	var or bson.A
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.D{{Key: "$or", Value: or}}
}
