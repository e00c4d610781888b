package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister    = "user created successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetMe       = "user retrieved successfully"
	MessageSuccessUpdatePhoto = "profile photo updated successfully"
	MessageSuccessRemovePhoto = "profile photo removed successfully"
	MessageSuccessGetUsers    = "users retrieved successfully"

	MessageFailedRegister    = "failed to create user"
	MessageFailedLogin       = "invalid credentials"
	MessageFailedGetMe       = "failed to retrieve user"
	MessageFailedUpdatePhoto = "failed to update profile photo"
	MessageFailedGetUsers    = "failed to retrieve users"

	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username or email already registered")
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrPhotoRequired      = errors.New("photo file is required")
)

type (
	RegisterRequest struct {
		FullName string `json:"full_name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Username string `json:"username" validate:"required,min=3"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID string `json:"id"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID        string     `json:"id"`
		FullName  string     `json:"full_name"`
		Email     string     `json:"email"`
		Username  string     `json:"username"`
		Role      string     `json:"role"`
		PhotoURL  string     `json:"photo_url,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
		LastLogin *time.Time `json:"last_login,omitempty"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdatePhotoRequest struct {
		Photo *multipart.FileHeader `json:"photo" form:"photo"`
	}

	AdminProfile struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	AdminLoginResponse struct {
		Token string       `json:"token"`
		Admin AdminProfile `json:"admin"`
	}

	// AdminUserSummary is one row of the admin user table, donation totals
	// joined in.
	AdminUserSummary struct {
		ID            string     `json:"id"`
		FullName      string     `json:"full_name"`
		Email         string     `json:"email"`
		Username      string     `json:"username"`
		RegisteredAt  time.Time  `json:"registered_at"`
		LastLogin     *time.Time `json:"last_login,omitempty"`
		Status        string     `json:"status"`
		DonationCount int64      `json:"donation_count"`
		DonationTotal float64    `json:"donation_total"`
	}

	AdminUserDetail struct {
		AdminUserSummary
		LastDonationAt *time.Time          `json:"last_donation_at,omitempty"`
		Donations      []*DonationResponse `json:"donations"`
	}
)
