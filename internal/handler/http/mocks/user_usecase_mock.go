package mocks

import (
	"context"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// MockUserUsecase is a hand-written mock of the user usecase. Setting one
// of the *Err fields makes the matching method fail with that error.
type MockUserUsecase struct {
	RegisterErr       error
	VerifyOTPErr      error
	ResendOTPErr      error
	LoginErr          error
	AuthenticateErr   error
	RefreshTokenErr   error
	LogoutErr         error
	UpdateProfileErr  error
	LoginWithOAuthErr error
	GetByIDErr        error

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:         "mock-user-id",
			Name:       "Test User",
			Email:      "test@example.com",
			Role:       entity.RoleStudent,
			IsVerified: true,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) VerifyOTP(ctx context.Context, email, code string) (*entity.User, error) {
	if m.VerifyOTPErr != nil {
		return nil, m.VerifyOTPErr
	}
	user := m.MockUser
	user.IsVerified = true
	return &user, nil
}

func (m *MockUserUsecase) ResendOTP(ctx context.Context, email string) error {
	return m.ResendOTPErr
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.LoginErr != nil {
		return nil, "", "", m.LoginErr
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.AuthenticateErr != nil {
		return nil, m.AuthenticateErr
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.RefreshTokenErr != nil {
		return "", "", m.RefreshTokenErr
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	return m.LogoutErr
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates usecasecontract.ProfileUpdates) (*entity.User, error) {
	if m.UpdateProfileErr != nil {
		return nil, m.UpdateProfileErr
	}
	user := m.MockUser
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Bio != nil {
		user.Bio = updates.Bio
	}
	return &user, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	if m.LoginWithOAuthErr != nil {
		return "", "", m.LoginWithOAuthErr
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return &m.MockUser, nil
}
