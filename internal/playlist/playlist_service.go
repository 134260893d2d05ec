package playlist

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

//go:generate mockgen -source=playlist_service.go -destination=mock_playlist_service_test.go -package=playlist

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, owner primitive.ObjectID, name, description string) (*dbmongo.Playlist, error)
	UserPlaylists(ctx context.Context, userID string) ([]dbmongo.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*dbmongo.PlaylistDetails, error)
	UpdatePlaylist(ctx context.Context, caller primitive.ObjectID, playlistID string, name, description *string) (*dbmongo.Playlist, error)
	DeletePlaylist(ctx context.Context, caller primitive.ObjectID, playlistID string) error
	AddVideo(ctx context.Context, caller primitive.ObjectID, videoID, playlistID string) (*dbmongo.Playlist, error)
	RemoveVideo(ctx context.Context, caller primitive.ObjectID, videoID, playlistID string) (*dbmongo.Playlist, error)
}

type playlistService struct {
	playlistRepo PlaylistRepository
}

func NewPlaylistService(playlistRepo PlaylistRepository) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, owner primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	name, err := common.RequireText("name", name)
	if err != nil {
		return nil, err
	}
	playlist := &dbmongo.Playlist{
		Name:        name,
		Description: strings.TrimSpace(description),
		Owner:       owner,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, common.Internal(ctx, err, "failed to create playlist")
	}
	return playlist, nil
}

func (s *playlistService) UserPlaylists(ctx context.Context, userID string) ([]dbmongo.Playlist, error) {
	owner, err := common.ParseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	playlists, err := s.playlistRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to fetch playlists")
	}
	return playlists, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID string) (*dbmongo.PlaylistDetails, error) {
	id, err := common.ParseID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	details, err := s.playlistRepo.Details(ctx, id)
	if err != nil {
		return nil, mapPlaylistErr(ctx, err, "failed to fetch playlist")
	}
	return details, nil
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, caller primitive.ObjectID, playlistID string, name, description *string) (*dbmongo.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, caller, playlistID, "update this playlist")
	if err != nil {
		return nil, err
	}
	if name == nil && description == nil {
		return nil, common.InvalidArgument("nothing to update")
	}
	if name != nil {
		trimmed, err := common.RequireText("name", *name)
		if err != nil {
			return nil, err
		}
		name = &trimmed
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		description = &trimmed
	}

	updated, err := s.playlistRepo.Update(ctx, playlist.ID, name, description)
	if err != nil {
		return nil, mapPlaylistErr(ctx, err, "failed to update playlist")
	}
	return updated, nil
}

func (s *playlistService) DeletePlaylist(ctx context.Context, caller primitive.ObjectID, playlistID string) error {
	playlist, err := s.ownedPlaylist(ctx, caller, playlistID, "delete this playlist")
	if err != nil {
		return err
	}
	if err := s.playlistRepo.Delete(ctx, playlist.ID); err != nil {
		return mapPlaylistErr(ctx, err, "failed to delete playlist")
	}
	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, caller primitive.ObjectID, videoID, playlistID string) (*dbmongo.Playlist, error) {
	vid, err := common.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	playlist, err := s.ownedPlaylist(ctx, caller, playlistID, "modify this playlist")
	if err != nil {
		return nil, err
	}

	exists, err := s.playlistRepo.VideoExists(ctx, vid)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to add video to playlist")
	}
	if !exists {
		return nil, common.NotFound("video not found")
	}

	updated, err := s.playlistRepo.AddVideo(ctx, playlist.ID, vid)
	if err != nil {
		return nil, mapPlaylistErr(ctx, err, "failed to add video to playlist")
	}
	return updated, nil
}

func (s *playlistService) RemoveVideo(ctx context.Context, caller primitive.ObjectID, videoID, playlistID string) (*dbmongo.Playlist, error) {
	vid, err := common.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	playlist, err := s.ownedPlaylist(ctx, caller, playlistID, "modify this playlist")
	if err != nil {
		return nil, err
	}
	updated, err := s.playlistRepo.RemoveVideo(ctx, playlist.ID, vid)
	if err != nil {
		return nil, mapPlaylistErr(ctx, err, "failed to remove video from playlist")
	}
	return updated, nil
}

func (s *playlistService) ownedPlaylist(ctx context.Context, caller primitive.ObjectID, playlistID, action string) (*dbmongo.Playlist, error) {
	id, err := common.ParseID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapPlaylistErr(ctx, err, "failed to fetch playlist")
	}
	if err := common.RequireOwner(playlist.Owner, caller, action); err != nil {
		return nil, err
	}
	return playlist, nil
}

func mapPlaylistErr(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, ErrPlaylistNotFound):
		return common.NotFound("playlist not found")
	case errors.Is(err, ErrVideoPresent):
		return common.InvalidArgument("video is already in this playlist")
	case errors.Is(err, ErrVideoAbsent):
		return common.InvalidArgument("video is not in this playlist")
	default:
		return common.Internal(ctx, err, msg)
	}
}
