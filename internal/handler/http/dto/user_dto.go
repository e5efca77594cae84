package dto

import (
	"time"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,userrole"`
}

// VerifyOTPRequest carries the emailed one-time code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest carries optional profile fields. Only the
// details blob matching the account's role is applied.
type UpdateProfileRequest struct {
	Name                  *string                       `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Bio                   *string                       `json:"bio,omitempty"`
	StudentDetails        *entity.StudentDetails        `json:"student_details,omitempty"`
	CollegeStudentDetails *entity.CollegeStudentDetails `json:"college_student_details,omitempty"`
	CounsellorDetails     *entity.CounsellorDetails     `json:"counsellor_details,omitempty"`
}

func (r UpdateProfileRequest) ToProfileUpdates() usecasecontract.ProfileUpdates {
	return usecasecontract.ProfileUpdates{
		Name:                  r.Name,
		Bio:                   r.Bio,
		StudentDetails:        r.StudentDetails,
		CollegeStudentDetails: r.CollegeStudentDetails,
		CounsellorDetails:     r.CounsellorDetails,
	}
}

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID                    string                        `json:"id"`
	Name                  string                        `json:"name"`
	Email                 string                        `json:"email"`
	Role                  string                        `json:"role"`
	Bio                   *string                       `json:"bio,omitempty"`
	IsVerified            bool                          `json:"is_verified"`
	IsBanned              bool                          `json:"is_banned"`
	StudentDetails        *entity.StudentDetails        `json:"student_details,omitempty"`
	CollegeStudentDetails *entity.CollegeStudentDetails `json:"college_student_details,omitempty"`
	CounsellorDetails     *entity.CounsellorDetails     `json:"counsellor_details,omitempty"`
	CreatedAt             string                        `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenPairResponse is the DTO for a token refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:                    user.ID,
		Name:                  user.Name,
		Email:                 user.Email,
		Role:                  string(user.Role),
		Bio:                   user.Bio,
		IsVerified:            user.IsVerified,
		IsBanned:              user.IsBanned,
		StudentDetails:        user.StudentDetails,
		CollegeStudentDetails: user.CollegeStudentDetails,
		CounsellorDetails:     user.CounsellorDetails,
		CreatedAt:             user.CreatedAt.Format(time.RFC3339),
	}
}
