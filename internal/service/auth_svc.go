package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"playtube/internal/apperr"
	"playtube/internal/blob"
	"playtube/internal/model"
	"playtube/internal/repository"
	"playtube/pkg/hash"
	"playtube/pkg/token"
)

// AuthService owns the account credential lifecycle: registration, login,
// logout, refresh token rotation and password changes.
type AuthService struct {
	users  *repository.UserRepo
	tokens *token.Manager
	blobs  *blob.Store
}

func NewAuthService(users *repository.UserRepo, tokens *token.Manager, blobs *blob.Store) *AuthService {
	return &AuthService{users: users, tokens: tokens, blobs: blobs}
}

// Register creates an account. The avatar is required, the cover image
// optional; both are stored before the user row is inserted, and removed
// again when the insert fails so no orphaned objects survive.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest, avatar Upload, cover *Upload) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.FullName == "" || req.Password == "" {
		return nil, apperr.BadRequest("fullname, email, username and password are required")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, apperr.BadRequest("email is invalid")
	}
	if err := requireImage(avatar, "avatar"); err != nil {
		return nil, err
	}
	if cover != nil {
		if err := requireImage(*cover, "cover image"); err != nil {
			return nil, err
		}
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	if taken {
		return nil, apperr.Conflict("username or email already exists")
	}

	passwordHash, err := hash.Password(req.Password)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	userID := uuid.NewString()

	avatarURL, err := s.storeImage(ctx, "avatars", avatar)
	if err != nil {
		return nil, err
	}
	var coverURL *string
	if cover != nil {
		u, err := s.storeImage(ctx, "covers", *cover)
		if err != nil {
			s.removeBlob(ctx, avatarURL)
			return nil, err
		}
		coverURL = &u
	}

	user := &model.User{
		ID:            userID,
		Username:      req.Username,
		Email:         req.Email,
		FullName:      req.FullName,
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
		PasswordHash:  passwordHash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.removeBlob(ctx, avatarURL)
		if coverURL != nil {
			s.removeBlob(ctx, *coverURL)
		}
		return nil, apperr.ConflictMessage(
			apperr.FromStore(err, "user not found"),
			"username or email already exists")
	}

	created, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	return created, nil
}

// Login verifies credentials and issues a fresh token pair. The refresh
// token is persisted so it can be matched on rotation.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if req.Username == "" && req.Email == "" {
		return nil, apperr.BadRequest("username or email is required")
	}
	if req.Password == "" {
		return nil, apperr.BadRequest("password is required")
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, apperr.FromStore(err, "user not found")
	}
	if !hash.Verify(user.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	access, refresh, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Logout clears the stored refresh token so the presented pair can no longer
// be rotated.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.users.ClearRefreshToken(ctx, userID); err != nil {
		return apperr.FromStore(err, "user not found")
	}
	return nil
}

// Refresh rotates a token pair. The presented refresh token must verify and
// match the one stored for the user; both checks failing surface the same
// Unauthorized so a stolen token leaks nothing.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*model.TokenPairResponse, error) {
	if presented == "" {
		return nil, apperr.Unauthorized("refresh token is required")
	}
	userID, err := s.tokens.VerifyRefresh(presented)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("invalid refresh token")
		}
		return nil, apperr.FromStore(err, "user not found")
	}
	if user.RefreshToken == nil || *user.RefreshToken != presented {
		return nil, apperr.Unauthorized("refresh token is expired or used")
	}

	access, refresh, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &model.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// ChangePassword swaps the password hash after verifying the old password.
// The stored refresh token is cleared, forcing every session to log in again.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req model.ChangePasswordRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return apperr.BadRequest("old and new password are required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apperr.FromStore(err, "user not found")
	}
	if !hash.Verify(user.PasswordHash, req.OldPassword) {
		return apperr.BadRequest("old password is incorrect")
	}

	newHash, err := hash.Password(req.NewPassword)
	if err != nil {
		return apperr.Internal("hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, newHash); err != nil {
		return apperr.FromStore(err, "user not found")
	}
	return nil
}

func (s *AuthService) issuePair(ctx context.Context, user *model.User) (access, refresh string, err error) {
	access, err = s.tokens.IssueAccess(user.ID, user.Username, user.Email)
	if err != nil {
		return "", "", apperr.Internal("issue access token", err)
	}
	refresh, err = s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return "", "", apperr.Internal("issue refresh token", err)
	}
	if err := s.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return "", "", apperr.FromStore(err, "user not found")
	}
	return access, refresh, nil
}

func (s *AuthService) storeImage(ctx context.Context, prefix string, up Upload) (string, error) {
	ext, err := blob.ExtensionFor(up.ContentType)
	if err != nil {
		return "", apperr.BadRequest(err.Error())
	}
	url, err := s.blobs.Put(ctx, blob.Key(prefix, uuid.NewString(), ext), up.Reader, up.Size, up.ContentType)
	if err != nil {
		return "", apperr.Internal("store media", err)
	}
	return url, nil
}

func (s *AuthService) removeBlob(ctx context.Context, url string) {
	if err := s.blobs.Remove(ctx, url); err != nil {
		log.Warn().Err(err).Str("object", url).Msg("compensating blob delete failed")
	}
}
