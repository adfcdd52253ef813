package model

import "time"

// LikeTarget names the entity kind a like points at. It doubles as the
// whitelist for the toggle SQL: only these four column names are ever
// interpolated into a statement.
type LikeTarget string

const (
	LikeVideo   LikeTarget = "video_id"
	LikeComment LikeTarget = "comment_id"
	LikeTweet   LikeTarget = "tweet_id"
	LikeReply   LikeTarget = "reply_id"
)

// Like records that one user likes one target entity. At most one like
// exists per (user, target) pair; the toggle engine flips it in and out of
// existence.
type Like struct {
	ID        string    `json:"id"`
	LikedBy   string    `json:"likedBy"`
	VideoID   *string   `json:"videoId,omitempty"`
	CommentID *string   `json:"commentId,omitempty"`
	TweetID   *string   `json:"tweetId,omitempty"`
	ReplyID   *string   `json:"replyId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToggleState reports which way a toggle flipped.
type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)

// ResolveToggle maps the row counts of a toggle statement to its outcome.
// A statement that neither inserted nor deleted lost the insert race to a
// concurrent toggle; the winner's row stands, so the outcome is still Added.
func ResolveToggle(inserted, deleted int) ToggleState {
	if deleted > 0 {
		return ToggleRemoved
	}
	return ToggleAdded
}

// ToggleResponse is returned by every like/subscribe toggle: the new
// membership state plus the live count for the target.
type ToggleResponse struct {
	State      ToggleState `json:"state"`
	TotalLikes int         `json:"totalLikes"`
}

// LikedVideosResponse is the caller's liked-videos page.
type LikedVideosResponse struct {
	Videos           []VideoWithOwner `json:"likedVideos"`
	TotalLikedVideos int              `json:"totalLikedVideos"`
	Page             int              `json:"page"`
	Limit            int              `json:"limit"`
}
