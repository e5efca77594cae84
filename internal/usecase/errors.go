package usecase

import "errors"

// Sentinel errors that handlers map to HTTP status codes. Anything not
// listed here is treated as an internal error and never shown verbatim.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("action not allowed")
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified. Please verify your email")
	ErrAccountBanned      = errors.New("account is banned")
	ErrEmailTaken         = errors.New("email already registered")
	ErrOTPInvalid         = errors.New("invalid verification code")
	ErrOTPExpired         = errors.New("verification code expired")
	ErrAlreadyVerified    = errors.New("account already verified")

	ErrAlreadyMember     = errors.New("already a member of this group")
	ErrNotMember         = errors.New("not a member of this group")
	ErrGroupBanned       = errors.New("group is banned")
	ErrSelfRating        = errors.New("cannot rate yourself")
	ErrSelfRequest       = errors.New("cannot send a friend request to yourself")
	ErrRequestPending    = errors.New("a friend request between these users is already pending")
	ErrRequestRejected   = errors.New("a previous friend request between these users was declined")
	ErrAlreadyFriends    = errors.New("these users are already friends")
	ErrChatNotAccepted   = errors.New("chat request has not been accepted")
	ErrNotChatReceiver   = errors.New("only the receiver can respond to this request")
	ErrRequestNotPending = errors.New("friend request is no longer pending")

	ErrFeaturedLimit = errors.New("cannot have more than 6 featured blogs")
)
