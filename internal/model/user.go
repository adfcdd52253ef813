package model

import "time"

// User is a registered account. A user is also a channel: other users
// subscribe to it and its videos hang off it.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullname"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL *string   `json:"coverImage,omitempty"`
	PasswordHash  string    `json:"-"`
	RefreshToken  *string   `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OwnerRef is the embedded owner shape used by every "with owner" projection.
type OwnerRef struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar"`
}

// ChannelProfile is the read-optimized channel view: profile fields plus
// live-computed subscription aggregates relative to the caller.
type ChannelProfile struct {
	ID                        string  `json:"id"`
	Username                  string  `json:"username"`
	Email                     string  `json:"email"`
	FullName                  string  `json:"fullname"`
	AvatarURL                 string  `json:"avatar"`
	CoverImageURL             *string `json:"coverImage,omitempty"`
	SubscribersCount          int     `json:"subscribersCount"`
	ChannelsSubscribedToCount int     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool    `json:"isSubscribed"`
}

// RegisterRequest is the multipart form for POST /users/register; avatar and
// cover image arrive as files.
type RegisterRequest struct {
	FullName string `form:"fullname"`
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// LoginResponse carries the fresh token pair next to the user; the same pair
// is also set as http-only cookies.
type LoginResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
