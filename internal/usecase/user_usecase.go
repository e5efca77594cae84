package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	uc "counselconnect/internal/usecase/contract"
)

const otpDigits = 6

// UserUsecase implements registration, OTP verification, login and
// profile management on top of the user and token repositories.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	tokenRepo  contract.ITokenRepository
	hasher     contract.IHasher
	uuidGen    contract.IUUIDGenerator
	randomGen  contract.IRandomGenerator
	emailSvc   contract.IEmailService
	jwtSvc     JWTService
	validator  uc.IValidator
	logger     uc.IAppLogger
	otpTTL     time.Duration
	refreshTTL time.Duration
}

var _ uc.IUserUseCase = (*UserUsecase)(nil)

func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	uuidGen contract.IUUIDGenerator,
	randomGen contract.IRandomGenerator,
	emailSvc contract.IEmailService,
	jwtSvc JWTService,
	validator uc.IValidator,
	logger uc.IAppLogger,
	otpTTL time.Duration,
	refreshTTL time.Duration,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		hasher:     hasher,
		uuidGen:    uuidGen,
		randomGen:  randomGen,
		emailSvc:   emailSvc,
		jwtSvc:     jwtSvc,
		validator:  validator,
		logger:     logger,
		otpTTL:     otpTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates an unverified account and emails a one-time code.
// Registering again with an unverified email refreshes the account and
// re-sends the code instead of failing.
func (u *UserUsecase) Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = entity.DefaultRole()
	}
	if !role.IsRegistrable() {
		return nil, fmt.Errorf("role %q cannot be used for registration", role)
	}
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("weak password: %w", err)
	}

	passwordHash, err := u.hasher.HashPassword(password)
	if err != nil {
		u.logger.Errorf("register: hash password: %v", err)
		return nil, errors.New("failed to process password")
	}

	existing, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		u.logger.Errorf("register: lookup %s: %v", email, err)
		return nil, errors.New("failed to register user")
	}
	if existing != nil && existing.IsVerified {
		return nil, ErrEmailTaken
	}

	otp, code, err := u.newOTP()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := existing
	if user == nil {
		user = &entity.User{
			ID:        u.uuidGen.NewUUID(),
			CreatedAt: now,
		}
	}
	user.Name = name
	user.Email = email
	user.PasswordHash = passwordHash
	user.Role = role
	user.IsVerified = false
	user.OTP = otp
	user.UpdatedAt = now

	if existing == nil {
		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			u.logger.Errorf("register: create user %s: %v", email, err)
			return nil, errors.New("failed to register user")
		}
	} else {
		if _, err := u.userRepo.UpdateUser(ctx, user); err != nil {
			u.logger.Errorf("register: refresh unverified user %s: %v", email, err)
			return nil, errors.New("failed to register user")
		}
	}

	if err := u.sendOTPEmail(ctx, user, code); err != nil {
		return nil, errors.New("failed to send verification email")
	}
	return user, nil
}

// VerifyOTP activates an account when the submitted code matches the
// stored hash and has not expired.
func (u *UserUsecase) VerifyOTP(ctx context.Context, email, code string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		u.logger.Errorf("verify otp: lookup %s: %v", email, err)
		return nil, errors.New("failed to verify account")
	}
	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}
	if user.OTP == nil {
		return nil, ErrOTPInvalid
	}
	if time.Now().UTC().After(user.OTP.ExpiresAt) {
		return nil, ErrOTPExpired
	}
	if err := u.hasher.ComparePasswordHash(code, user.OTP.CodeHash); err != nil {
		return nil, ErrOTPInvalid
	}

	user.IsVerified = true
	user.OTP = nil
	user.UpdatedAt = time.Now().UTC()
	updated, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		u.logger.Errorf("verify otp: update user %s: %v", user.ID, err)
		return nil, errors.New("failed to verify account")
	}
	if err := u.userRepo.SetOTP(ctx, user.ID, nil); err != nil {
		u.logger.Errorf("verify otp: clear otp for %s: %v", user.ID, err)
	}
	return updated, nil
}

// ResendOTP replaces the pending code for an unverified account.
func (u *UserUsecase) ResendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return ErrNotFound
		}
		u.logger.Errorf("resend otp: lookup %s: %v", email, err)
		return errors.New("failed to resend verification code")
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	otp, code, err := u.newOTP()
	if err != nil {
		return err
	}
	if err := u.userRepo.SetOTP(ctx, user.ID, otp); err != nil {
		u.logger.Errorf("resend otp: store otp for %s: %v", user.ID, err)
		return errors.New("failed to resend verification code")
	}
	if err := u.sendOTPEmail(ctx, user, code); err != nil {
		return errors.New("failed to send verification email")
	}
	return nil
}

// Login authenticates a verified, unbanned account and returns the user
// together with an access and a refresh token.
func (u *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		u.logger.Errorf("login: lookup %s: %v", email, err)
		return nil, "", "", errors.New("failed to log in")
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, "", "", ErrAccountNotVerified
	}
	if user.IsBanned {
		return nil, "", "", ErrAccountBanned
	}

	access, refresh, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// Authenticate resolves an access token to a live user record so that
// bans and role changes take effect immediately.
func (u *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := u.jwtSvc.ParseAccessToken(accessToken)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		u.logger.Errorf("authenticate: lookup %s: %v", claims.UserID, err)
		return nil, errors.New("failed to authenticate")
	}
	if user.IsBanned {
		return nil, ErrAccountBanned
	}
	return user, nil
}

// RefreshToken rotates the refresh token and issues a new access token.
func (u *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwtSvc.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", ErrUnauthorized
	}

	stored, err := u.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrTokenNotFound) {
			return "", "", errors.New("refresh token not found, please log in again")
		}
		u.logger.Errorf("refresh: lookup token for %s: %v", claims.UserID, err)
		return "", "", errors.New("failed to refresh token")
	}
	if stored.Revoke {
		return "", "", errors.New("refresh token has been revoked, please log in again")
	}
	if time.Now().UTC().After(stored.ExpiresAt) {
		return "", "", errors.New("refresh token expired, please log in again")
	}
	if !u.hasher.CheckHash(refreshToken, stored.TokenHash) {
		return "", "", ErrUnauthorized
	}

	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrUnauthorized
	}
	if user.IsBanned {
		return "", "", ErrAccountBanned
	}

	access, err := u.jwtSvc.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", errors.New("failed to generate new access token")
	}
	refresh, err := u.jwtSvc.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", errors.New("failed to generate new refresh token")
	}
	expiry := time.Now().UTC().Add(u.refreshTTL)
	if err := u.tokenRepo.UpdateToken(ctx, stored.ID, u.hasher.HashString(refresh), expiry); err != nil {
		u.logger.Errorf("refresh: rotate token %s: %v", stored.ID, err)
		return "", "", errors.New("failed to update token")
	}
	return access, refresh, nil
}

// Logout revokes all refresh tokens for the token's owner.
func (u *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.jwtSvc.ParseRefreshToken(refreshToken)
	if err != nil {
		return ErrUnauthorized
	}
	if err := u.tokenRepo.RevokeAllTokensForUser(ctx, claims.UserID, entity.TokenTypeRefresh); err != nil {
		u.logger.Errorf("logout: revoke tokens for %s: %v", claims.UserID, err)
		return errors.New("failed to log out")
	}
	return nil
}

// UpdateProfile applies the submitted profile fields. Role-detail blobs
// that do not match the account's role are ignored.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates uc.ProfileUpdates) (*entity.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		u.logger.Errorf("update profile: lookup %s: %v", userID, err)
		return nil, errors.New("failed to update profile")
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Bio != nil {
		user.Bio = updates.Bio
	}
	switch user.Role {
	case entity.RoleStudent:
		if updates.StudentDetails != nil {
			user.StudentDetails = updates.StudentDetails
		}
	case entity.RoleCollegeStudent:
		if updates.CollegeStudentDetails != nil {
			user.CollegeStudentDetails = updates.CollegeStudentDetails
		}
	case entity.RoleCounsellor:
		if updates.CounsellorDetails != nil {
			user.CounsellorDetails = updates.CounsellorDetails
		}
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		u.logger.Errorf("update profile: save %s: %v", userID, err)
		return nil, errors.New("failed to update profile")
	}
	return updated, nil
}

// LoginWithOAuth signs in a provider-verified email, creating a student
// account on first login. The provider already proved ownership of the
// address, so the account is created verified.
func (u *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		u.logger.Errorf("oauth login: lookup %s: %v", email, err)
		return "", "", errors.New("failed to log in")
	}
	if user == nil {
		randomSecret, err := u.randomGen.GenerateRandomToken(32)
		if err != nil {
			return "", "", errors.New("failed to log in")
		}
		passwordHash, err := u.hasher.HashPassword(randomSecret)
		if err != nil {
			return "", "", errors.New("failed to log in")
		}
		now := time.Now().UTC()
		user = &entity.User{
			ID:           u.uuidGen.NewUUID(),
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         entity.DefaultRole(),
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			u.logger.Errorf("oauth login: create user %s: %v", email, err)
			return "", "", errors.New("failed to log in")
		}
	}
	if user.IsBanned {
		return "", "", ErrAccountBanned
	}
	return u.issueTokens(ctx, user)
}

func (u *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		u.logger.Errorf("get user %s: %v", userID, err)
		return nil, errors.New("failed to fetch user")
	}
	return user, nil
}

func (u *UserUsecase) newOTP() (*entity.OTP, string, error) {
	code, err := u.randomGen.GenerateOTPCode(otpDigits)
	if err != nil {
		u.logger.Errorf("generate otp code: %v", err)
		return nil, "", errors.New("failed to generate verification code")
	}
	codeHash, err := u.hasher.HashPassword(code)
	if err != nil {
		u.logger.Errorf("hash otp code: %v", err)
		return nil, "", errors.New("failed to generate verification code")
	}
	return &entity.OTP{
		CodeHash:  codeHash,
		ExpiresAt: time.Now().UTC().Add(u.otpTTL),
	}, code, nil
}

func (u *UserUsecase) sendOTPEmail(ctx context.Context, user *entity.User, code string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your verification code is <b>%s</b>. It expires in %d minutes.</p>",
		user.Name, code, int(u.otpTTL.Minutes()),
	)
	if err := u.emailSvc.SendEmail(ctx, user.Email, "Verify your account", body); err != nil {
		u.logger.Errorf("send otp email to %s: %v", user.Email, err)
		return err
	}
	return nil
}

// issueTokens generates an access/refresh pair and upserts the stored
// refresh token hash for the user.
func (u *UserUsecase) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	access, err := u.jwtSvc.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", errors.New("failed to generate token")
	}
	refresh, err := u.jwtSvc.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", errors.New("failed to generate token")
	}

	expiry := time.Now().UTC().Add(u.refreshTTL)
	stored, err := u.tokenRepo.GetTokenByUserID(ctx, user.ID)
	switch {
	case err == nil:
		if err := u.tokenRepo.UpdateToken(ctx, stored.ID, u.hasher.HashString(refresh), expiry); err != nil {
			u.logger.Errorf("issue tokens: update token for %s: %v", user.ID, err)
			return "", "", errors.New("failed to store token")
		}
	case errors.Is(err, contract.ErrTokenNotFound):
		token := &entity.Token{
			ID:        u.uuidGen.NewUUID(),
			UserID:    user.ID,
			TokenType: entity.TokenTypeRefresh,
			TokenHash: u.hasher.HashString(refresh),
			ExpiresAt: expiry,
			CreatedAt: time.Now().UTC(),
		}
		if err := u.tokenRepo.CreateToken(ctx, token); err != nil {
			u.logger.Errorf("issue tokens: create token for %s: %v", user.ID, err)
			return "", "", errors.New("failed to store token")
		}
	default:
		u.logger.Errorf("issue tokens: lookup token for %s: %v", user.ID, err)
		return "", "", errors.New("failed to store token")
	}
	return access, refresh, nil
}
