package user

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"rotasol-backend/domain"
	"rotasol-backend/entities"
	"rotasol-backend/internal/utils/storage"
	"rotasol-backend/pkg/donation"
	"rotasol-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		AdminLogin(ctx context.Context, req domain.LoginRequest) (*domain.AdminLoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdatePhoto(ctx context.Context, userID string, photo *multipart.FileHeader) (string, error)
		RemovePhoto(ctx context.Context, userID string) error
		GetUsers(ctx context.Context) ([]*domain.AdminUserSummary, error)
		GetUserDetail(ctx context.Context, userID string) (*domain.AdminUserDetail, error)
	}

	userService struct {
		userRepository     UserRepository
		donationRepository donation.DonationRepository
		jwtService         jwt.JWTService
		s3                 storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, donationRepository donation.DonationRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository:     userRepository,
		donationRepository: donationRepository,
		jwtService:         jwtService,
		s3:                 s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		Role:     domain.RoleDonor,
		Active:   true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &domain.RegisterResponse{ID: user.ID.String()}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if !user.Active {
		return nil, domain.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	if err := s.userRepository.UpdateLastLogin(ctx, user.ID.String()); err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// AdminLogin checks the credential against an admin user row and issues the
// same signed expiring token regular users get, with role admin. There is
// no hardcoded credential and no unsigned token scheme.
func (s *userService) AdminLogin(ctx context.Context, req domain.LoginRequest) (*domain.AdminLoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if user.Role != domain.RoleAdmin || !user.Active {
		return nil, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleAdmin)

	return &domain.AdminLoginResponse{
		Token: token,
		Admin: domain.AdminProfile{
			ID:       user.ID.String(),
			Username: user.Username,
		},
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdatePhoto(ctx context.Context, userID string, photo *multipart.FileHeader) (string, error) {
	if photo == nil {
		return "", domain.ErrPhotoRequired
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("profile-%s", userID),
		photo,
		"profiles",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	photoURL := s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdatePhoto(ctx, userID, &photoURL); err != nil {
		return "", err
	}

	return photoURL, nil
}

func (s *userService) RemovePhoto(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if user.PhotoURL == "" {
		return nil
	}

	return s.userRepository.UpdatePhoto(ctx, userID, nil)
}

func (s *userService) GetUsers(ctx context.Context) ([]*domain.AdminUserSummary, error) {
	rows, err := s.userRepository.GetUsersWithTotals(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AdminUserSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, toAdminUserSummary(row))
	}
	return result, nil
}

func (s *userService) GetUserDetail(ctx context.Context, userID string) (*domain.AdminUserDetail, error) {
	row, err := s.userRepository.GetUserWithTotals(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	donations, err := s.donationRepository.GetUserDonations(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		resp := &domain.DonationResponse{
			ID:         d.ID,
			Code:       donation.DonationCode(d.ID),
			UserID:     d.UserID.String(),
			Category:   d.Category,
			Quantity:   d.Quantity,
			Unit:       d.Unit,
			LocationID: d.LocationID,
			Notes:      d.Notes,
			Status:     d.Status,
			StockValue: d.StockValue,
			CreatedAt:  d.CreatedAt,
		}
		if d.Location != nil {
			resp.LocationName = d.Location.Name
		}
		history = append(history, resp)
	}

	return &domain.AdminUserDetail{
		AdminUserSummary: *toAdminUserSummary(row),
		LastDonationAt:   row.LastDonationAt,
		Donations:        history,
	}, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		PhotoURL:  user.PhotoURL,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLoginAt,
	}
}

func toAdminUserSummary(row *adminUserRow) *domain.AdminUserSummary {
	status := "ativo"
	if !row.Active {
		status = "inativo"
	}
	return &domain.AdminUserSummary{
		ID:            row.ID.String(),
		FullName:      row.FullName,
		Email:         row.Email,
		Username:      row.Username,
		RegisteredAt:  row.CreatedAt,
		LastLogin:     row.LastLoginAt,
		Status:        status,
		DonationCount: row.DonationCount,
		DonationTotal: row.DonationTotal,
	}
}
