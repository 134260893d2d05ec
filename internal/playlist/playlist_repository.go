package playlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/dbmongo"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrVideoPresent is returned when adding a video the playlist already holds.
	ErrVideoPresent = errors.New("video already in playlist")
	// ErrVideoAbsent is returned when removing a video the playlist does not hold.
	ErrVideoAbsent = errors.New("video not in playlist")
)

//go:generate mockgen -source=playlist_repository.go -destination=mock_playlist_repository_test.go -package=playlist

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *dbmongo.Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Playlist, error)
	Details(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistDetails, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]dbmongo.Playlist, error)
	Update(ctx context.Context, id primitive.ObjectID, name, description *string) (*dbmongo.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, error)
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
}

type playlistRepository struct {
	playlists *mongo.Collection
	videos    *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) PlaylistRepository {
	return &playlistRepository{
		playlists: db.Collection(dbmongo.PlaylistsCollection),
		videos:    db.Collection(dbmongo.VideosCollection),
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *dbmongo.Playlist) error {
	now := time.Now().UTC()
	playlist.CreatedAt, playlist.UpdatedAt = now, now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	res, err := r.playlists.InsertOne(ctx, playlist)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	playlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Playlist, error) {
	var playlist dbmongo.Playlist
	if err := r.playlists.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}
	return &playlist, nil
}

// Details loads a playlist with its owner and videos resolved. Videos keep
// the playlist order; deleted videos are skipped.
func (r *playlistRepository) Details(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistDetails, error) {
	pipeline := dbmongo.Stages(
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: dbmongo.VideosCollection},
			{Key: "localField", Value: "videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$project", Value: bson.D{{Key: "dailyViews", Value: 0}}}},
			}},
			{Key: "as", Value: "videoDetails"},
		}}},
		dbmongo.LookupUser("owner", "ownerDetails", "username", "fullName", "avatar"),
	)
	cursor, err := r.playlists.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}
	var found []dbmongo.PlaylistDetails
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode playlist: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrPlaylistNotFound
	}

	details := &found[0]
	byID := make(map[primitive.ObjectID]dbmongo.VideoWithOwner, len(details.Videos))
	for _, v := range details.Videos {
		byID[v.ID] = v
	}
	ordered := make([]dbmongo.VideoWithOwner, 0, len(details.Videos))
	for _, vid := range details.VideoIDs {
		if v, ok := byID[vid]; ok {
			ordered = append(ordered, v)
		}
	}
	details.Videos = ordered
	return details, nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]dbmongo.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.playlists.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	playlists := []dbmongo.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}

func (r *playlistRepository) Update(ctx context.Context, id primitive.ObjectID, name, description *string) (*dbmongo.Playlist, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if name != nil {
		set = append(set, bson.E{Key: "name", Value: *name})
	}
	if description != nil {
		set = append(set, bson.E{Key: "description", Value: *description})
	}
	playlist, err := r.findAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlaylistNotFound
	}
	return playlist, err
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.playlists.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// AddVideo appends videoID unless the playlist already holds it. The filter
// carries the duplicate check so concurrent adds cannot both succeed.
func (r *playlistRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, error) {
	playlist, err := r.findAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "videos", Value: bson.D{{Key: "$ne", Value: videoID}}}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missReason(ctx, id, ErrVideoPresent)
	}
	return playlist, err
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, error) {
	playlist, err := r.findAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "videos", Value: videoID}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missReason(ctx, id, ErrVideoAbsent)
	}
	return playlist, err
}

func (r *playlistRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	n, err := r.videos.CountDocuments(ctx, bson.D{{Key: "_id", Value: videoID}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check video: %w", err)
	}
	return n > 0, nil
}

// missReason tells a missing playlist apart from a failed membership guard.
func (r *playlistRepository) missReason(ctx context.Context, id primitive.ObjectID, guard error) error {
	n, err := r.playlists.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check playlist: %w", err)
	}
	if n == 0 {
		return ErrPlaylistNotFound
	}
	return guard
}

func (r *playlistRepository) findAndUpdate(ctx context.Context, filter, update bson.D) (*dbmongo.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist dbmongo.Playlist
	err := r.playlists.FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return &playlist, nil
}
