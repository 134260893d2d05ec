package user

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

// Handler exposes the account operations over HTTP.
type Handler struct {
	userService   UserService
	tokens        *common.TokenIssuer
	secureCookies bool
	maxUpload     int64
}

func NewHandler(userService UserService, tokens *common.TokenIssuer, secureCookies bool, maxUploadBytes int64) *Handler {
	return &Handler{
		userService:   userService,
		tokens:        tokens,
		secureCookies: secureCookies,
		maxUpload:     maxUploadBytes,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
}

type loginResponse struct {
	User         *dbmongo.User `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}
	avatar, err := common.FormFile(r, "avatar")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer avatar.Close()
	cover, err := common.FormFile(r, "coverImage")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer cover.Close()

	user, err := h.userService.Register(r.Context(), RegisterInput{
		FullName:   r.FormValue("fullName"),
		Email:      r.FormValue("email"),
		Username:   r.FormValue("username"),
		Password:   r.FormValue("password"),
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, user, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	session, err := h.userService.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	h.setTokenCookies(w, session.Tokens)
	common.WriteJSON(w, http.StatusOK, loginResponse{
		User:         session.User,
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	}, "User logged in successfully")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.userService.Logout(r.Context(), userID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	h.clearTokenCookies(w)
	common.WriteJSON(w, http.StatusOK, struct{}{}, "User logged out")
}

// RefreshToken takes the refresh token from its cookie or, failing that,
// from the JSON body.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	presented := ""
	if c, err := r.Cookie(common.RefreshTokenCookie); err == nil {
		presented = c.Value
	}
	if presented == "" && r.ContentLength != 0 {
		var req refreshRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.WriteError(w, r, err)
			return
		}
		presented = req.RefreshToken
	}

	pair, err := h.userService.RefreshTokens(r.Context(), presented)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	h.setTokenCookies(w, pair)
	common.WriteJSON(w, http.StatusOK, pair, "Access token refreshed")
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req changePasswordRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.userService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Password changed successfully")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	user, err := h.userService.CurrentUser(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, "Current user fetched successfully")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req updateAccountRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	user, err := h.userService.UpdateAccount(r.Context(), userID, req.FullName, req.Email)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, "Account details updated successfully")
}

func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, "avatar", h.userService.UpdateAvatar, "Avatar image updated successfully")
}

func (h *Handler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.replaceImage(w, r, "coverImage", h.userService.UpdateCoverImage, "Cover image updated successfully")
}

func (h *Handler) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	viewer, _ := common.UserIDFromContext(r.Context())
	profile, err := h.userService.ChannelProfile(r.Context(), mux.Vars(r)["username"], viewer)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *Handler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	videos, err := h.userService.WatchHistory(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, videos, "Watch history fetched successfully")
}

func (h *Handler) AccountOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ParseID(mux.Vars(r)["userId"], "user id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	overview, err := h.userService.AccountOverview(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, overview, "User details fetched successfully")
}

type imageUpdate func(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error)

func (h *Handler) replaceImage(w http.ResponseWriter, r *http.Request, field string, update imageUpdate, msg string) {
	userID, err := common.CallerID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}
	file, err := common.FormFile(r, field)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer file.Close()

	user, err := update(r.Context(), userID, file)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, msg)
}

func (h *Handler) setTokenCookies(w http.ResponseWriter, pair *common.TokenPair) {
	http.SetCookie(w, h.cookie(common.AccessTokenCookie, pair.AccessToken, h.tokens.AccessTTL()))
	http.SetCookie(w, h.cookie(common.RefreshTokenCookie, pair.RefreshToken, h.tokens.RefreshTTL()))
}

func (h *Handler) clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, h.cookie(common.AccessTokenCookie, "", -1))
	http.SetCookie(w, h.cookie(common.RefreshTokenCookie, "", -1))
}

// cookie builds an HttpOnly token cookie; a negative ttl expires it.
func (h *Handler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}
