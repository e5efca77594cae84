package entity

import (
	"time"
)

// User represents a registered member of the platform.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	Bio          *string   `bson:"bio,omitempty" json:"bio,omitempty"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	IsBanned     bool      `bson:"is_banned" json:"is_banned"`
	OTP          *OTP      `bson:"otp,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`

	StudentDetails        *StudentDetails        `bson:"student_details,omitempty" json:"student_details,omitempty"`
	CollegeStudentDetails *CollegeStudentDetails `bson:"college_student_details,omitempty" json:"college_student_details,omitempty"`
	CounsellorDetails     *CounsellorDetails     `bson:"counsellor_details,omitempty" json:"counsellor_details,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleStudent UserRole = "student"
	// RoleCollegeStudent keeps the historical wire value.
	RoleCollegeStudent UserRole = "collage_student"
	RoleCounsellor     UserRole = "counsellor"
	RoleAdmin          UserRole = "admin"
)

func DefaultRole() UserRole {
	return RoleStudent
}

// IsRegistrable reports whether a role may be chosen at self-registration.
// Admin accounts are provisioned out of band.
func (r UserRole) IsRegistrable() bool {
	switch r {
	case RoleStudent, RoleCollegeStudent, RoleCounsellor:
		return true
	}
	return false
}

// OTP is the transient one-time verification code attached to an
// unverified user. Only the bcrypt hash is stored.
type OTP struct {
	CodeHash  string    `bson:"code_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"-"`
}

// StudentDetails holds profile fields specific to the student role.
type StudentDetails struct {
	CollegeDetails string  `bson:"college_details,omitempty" json:"college_details,omitempty"`
	CatScore       float64 `bson:"cat_score,omitempty" json:"cat_score,omitempty"`
	Address        string  `bson:"address,omitempty" json:"address,omitempty"`
}

// CollegeStudentDetails holds profile fields specific to the collage_student role.
type CollegeStudentDetails struct {
	CollegeName  string `bson:"college_name,omitempty" json:"college_name,omitempty"`
	CurrentYear  int    `bson:"current_year,omitempty" json:"current_year,omitempty"`
	Branch       string `bson:"branch,omitempty" json:"branch,omitempty"`
	CollegeEmail string `bson:"college_email,omitempty" json:"college_email,omitempty"`
}

// CounsellorDetails holds profile fields specific to the counsellor role.
type CounsellorDetails struct {
	CounsellorEmail string `bson:"counsellor_email,omitempty" json:"counsellor_email,omitempty"`
	Details         string `bson:"details,omitempty" json:"details,omitempty"`
}
