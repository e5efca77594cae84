package contract

import (
	"context"
	"time"

	"counselconnect/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// SetOTP stores (or clears, when otp is nil) the transient verification code.
	SetOTP(ctx context.Context, id string, otp *entity.OTP) error
	// SetBanned toggles the ban flag and returns the new state.
	SetBanned(ctx context.Context, id string, banned bool) error
	// ListUsers returns all users ordered by creation time, newest first.
	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error)
	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
	// CountUsersPerDay buckets signups per day since the given time.
	CountUsersPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error)
	// CountUsersByRole buckets users by role.
	CountUsersByRole(ctx context.Context) ([]entity.RoleCount, error)
}
