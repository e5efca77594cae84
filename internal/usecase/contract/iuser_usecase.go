package usecasecontract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// IUserUseCase defines the interface for identity operations.
type IUserUseCase interface {
	Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error)
	VerifyOTP(ctx context.Context, email, code string) (*entity.User, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, userID string, updates ProfileUpdates) (*entity.User, error)
	LoginWithOAuth(ctx context.Context, name, email string) (string, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}

// ProfileUpdates carries the optional profile fields of an update request.
// Role-detail blobs are applied only when they match the user's role.
type ProfileUpdates struct {
	Name                  *string
	Bio                   *string
	StudentDetails        *entity.StudentDetails
	CollegeStudentDetails *entity.CollegeStudentDetails
	CounsellorDetails     *entity.CounsellorDetails
}
