package contract

import "errors"

// Not-found sentinels returned by repositories so callers can branch
// without knowing the storage driver.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenNotFound      = errors.New("token not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrChatNotFound       = errors.New("chat not found")
	ErrPageNotFound       = errors.New("page not found")
)

// ErrFeaturedLimit is returned by blog writes that would push an author
// past the featured cap.
var ErrFeaturedLimit = errors.New("featured blog limit reached")
