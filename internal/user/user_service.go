package user

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
)

type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	Avatar     *common.FileUpload
	CoverImage *common.FileUpload
}

// Session is the result of a login: the account and its fresh token pair.
type Session struct {
	User   *dbmongo.User
	Tokens *common.TokenPair
}

// AccountOverview is an account with the counts of what it owns.
type AccountOverview struct {
	User   *dbmongo.User  `json:"user"`
	Counts *AccountCounts `json:"counts"`
}

//go:generate mockgen -source=user_service.go -destination=mock_user_service_test.go -package=user

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error)
	Login(ctx context.Context, username, email, password string) (*Session, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	RefreshTokens(ctx context.Context, presented string) (*common.TokenPair, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error)
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*dbmongo.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error)
	UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error)
	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*ChannelProfile, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]dbmongo.VideoWithOwner, error)
	RecordWatch(ctx context.Context, userID, videoID primitive.ObjectID) error
	AccountOverview(ctx context.Context, userID primitive.ObjectID) (*AccountOverview, error)
}

type userService struct {
	userRepo UserRepository
	assets   common.AssetGateway
	tokens   *common.TokenIssuer
}

func NewUserService(userRepo UserRepository, assets common.AssetGateway, tokens *common.TokenIssuer) UserService {
	return &userService{userRepo: userRepo, assets: assets, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error) {
	fullName, err := common.RequireText("fullName", in.FullName)
	if err != nil {
		return nil, err
	}
	if err := common.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := common.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if in.Avatar == nil {
		return nil, common.InvalidArgument("avatar file is required")
	}
	username := common.NormalizeUsername(in.Username)
	email := common.NormalizeEmail(in.Email)

	exists, err := s.userRepo.CheckUserExists(ctx, username, email)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to check existing user")
	}
	if exists {
		return nil, common.Conflict("user with email or username already exists")
	}

	avatar, err := s.upload(ctx, in.Avatar, common.MediaFileTypeImage, "avatar")
	if err != nil {
		return nil, err
	}
	var cover *common.Asset
	if in.CoverImage != nil {
		if cover, err = s.upload(ctx, in.CoverImage, common.MediaFileTypeImage, "cover image"); err != nil {
			return nil, err
		}
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to hash password")
	}

	user := &dbmongo.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       *avatar,
		CoverImage:   cover,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, common.Conflict("user with email or username already exists")
		}
		return nil, common.Internal(ctx, err, "something went wrong while registering the user")
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, email, password string) (*Session, error) {
	username = common.NormalizeUsername(username)
	email = common.NormalizeEmail(email)
	if username == "" && email == "" {
		return nil, common.InvalidArgument("username or email is required")
	}
	if password == "" {
		return nil, common.InvalidArgument("password is required")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, username, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, common.Unauthorized("invalid user credentials")
	}
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to load user")
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, common.Unauthorized("invalid user credentials")
	}

	pair, err := s.tokens.IssuePair(user.ID.Hex())
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to generate tokens")
	}
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, common.Unauthorized("invalid user credentials")
		}
		return nil, common.Internal(ctx, err, "failed to store refresh token")
	}

	logging.FromContext(ctx).WithField("user_id", user.ID.Hex()).Info("user logged in")
	return &Session{User: user, Tokens: pair}, nil
}

func (s *userService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return common.Internal(ctx, err, "failed to log out")
	}
	return nil
}

// RefreshTokens rotates the account's refresh token. The presented token is
// accepted once: the swap only succeeds while it is still the stored one.
func (s *userService) RefreshTokens(ctx context.Context, presented string) (*common.TokenPair, error) {
	if presented == "" {
		return nil, common.Unauthorized("unauthorized request")
	}
	claims, err := s.tokens.ValidateRefreshToken(presented)
	if err != nil {
		return nil, common.Unauthorized("invalid refresh token")
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, common.Unauthorized("invalid refresh token")
	}

	pair, err := s.tokens.IssuePair(userID.Hex())
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to generate tokens")
	}
	swapped, err := s.userRepo.SwapRefreshToken(ctx, userID, presented, pair.RefreshToken)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to rotate refresh token")
	}
	if !swapped {
		return nil, common.Unauthorized("Refresh token is expired or used")
	}
	return pair, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return common.InvalidArgument("old and new password are required")
	}
	if err := common.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := common.CheckPassword(oldPassword, user.PasswordHash); err != nil {
		return common.InvalidArgument("invalid old password")
	}

	hashed, err := common.HashPassword(newPassword)
	if err != nil {
		return common.Internal(ctx, err, "failed to hash password")
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return s.mapUserErr(ctx, err, "failed to change password")
	}
	return nil
}

func (s *userService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	return s.getUser(ctx, userID)
}

func (s *userService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*dbmongo.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" || strings.TrimSpace(email) == "" {
		return nil, common.InvalidArgument("fullName and email are required")
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateAccount(ctx, userID, fullName, common.NormalizeEmail(email))
	if errors.Is(err, ErrDuplicateUser) {
		return nil, common.Conflict("email is already in use")
	}
	if err != nil {
		return nil, s.mapUserErr(ctx, err, "failed to update account")
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error) {
	if file == nil {
		return nil, common.InvalidArgument("avatar file is missing")
	}
	current, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	avatar, err := s.upload(ctx, file, common.MediaFileTypeImage, "avatar")
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.SetAvatar(ctx, userID, *avatar)
	if err != nil {
		return nil, s.mapUserErr(ctx, err, "failed to update avatar")
	}
	s.deleteAsset(ctx, current.Avatar, common.MediaFileTypeImage)
	return user, nil
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error) {
	if file == nil {
		return nil, common.InvalidArgument("cover image file is missing")
	}
	current, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cover, err := s.upload(ctx, file, common.MediaFileTypeImage, "cover image")
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.SetCoverImage(ctx, userID, *cover)
	if err != nil {
		return nil, s.mapUserErr(ctx, err, "failed to update cover image")
	}
	if current.CoverImage != nil {
		s.deleteAsset(ctx, *current.CoverImage, common.MediaFileTypeImage)
	}
	return user, nil
}

func (s *userService) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*ChannelProfile, error) {
	username = common.NormalizeUsername(username)
	if username == "" {
		return nil, common.InvalidArgument("username is missing")
	}
	profile, err := s.userRepo.ChannelProfile(ctx, username, viewer)
	if errors.Is(err, ErrUserNotFound) {
		return nil, common.NotFound("channel does not exist")
	}
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to load channel")
	}
	return profile, nil
}

// WatchHistory returns the watched videos most recent first. Videos deleted
// since they were watched are skipped.
func (s *userService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]dbmongo.VideoWithOwner, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	videos, err := s.userRepo.VideosByIDs(ctx, user.WatchHistory)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to load watch history")
	}
	return orderByIDs(videos, user.WatchHistory), nil
}

func (s *userService) RecordWatch(ctx context.Context, userID, videoID primitive.ObjectID) error {
	if err := s.userRepo.PushWatchHistory(ctx, userID, videoID); err != nil {
		return common.Internal(ctx, err, "failed to update watch history")
	}
	return nil
}

func (s *userService) AccountOverview(ctx context.Context, userID primitive.ObjectID) (*AccountOverview, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.userRepo.CountsFor(ctx, userID)
	if err != nil {
		return nil, common.Internal(ctx, err, "failed to load account details")
	}
	return &AccountOverview{User: user, Counts: counts}, nil
}

func (s *userService) getUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, s.mapUserErr(ctx, err, "failed to load user")
	}
	return user, nil
}

func (s *userService) mapUserErr(ctx context.Context, err error, msg string) error {
	if errors.Is(err, ErrUserNotFound) {
		return common.NotFound("user not found")
	}
	return common.Internal(ctx, err, msg)
}

func (s *userService) upload(ctx context.Context, file *common.FileUpload, want common.MediaFileType, what string) (*common.Asset, error) {
	defer file.Close()
	if kind, ok := file.Kind(); !ok || kind != want {
		return nil, common.InvalidArgument("%s must be an %s file", what, want)
	}
	asset, err := s.assets.Upload(ctx, file.Filename, file.ContentType, file.Content)
	if err != nil {
		return nil, common.Internal(ctx, err, "error while uploading "+what)
	}
	return asset, nil
}

// deleteAsset removes a replaced asset. Failures leave an orphan behind and
// are only logged.
func (s *userService) deleteAsset(ctx context.Context, asset common.Asset, kind common.MediaFileType) {
	if asset.IsZero() {
		return
	}
	if err := s.assets.Delete(ctx, asset.PublicID, kind); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("public_id", asset.PublicID).Warn("failed to delete replaced asset")
	}
}

func orderByIDs(videos []dbmongo.VideoWithOwner, ids []primitive.ObjectID) []dbmongo.VideoWithOwner {
	rank := make(map[primitive.ObjectID]int, len(ids))
	for i, id := range ids {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return rank[videos[i].ID] < rank[videos[j].ID]
	})
	return videos
}
