package user

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"rotasol-backend/domain"
	"rotasol-backend/entities"
	"rotasol-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*entities.User{}}
}

func (m *mockUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.CreatedAt = time.Now()
	copied := *user
	m.users[user.ID.String()] = &copied
	return nil
}

func (m *mockUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) UpdateLastLogin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		now := time.Now()
		u.LastLoginAt = &now
	}
	return nil
}

func (m *mockUserRepository) UpdatePhoto(_ context.Context, id string, photoURL *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if photoURL == nil {
		u.PhotoURL = ""
	} else {
		u.PhotoURL = *photoURL
	}
	return nil
}

func (m *mockUserRepository) GetUsersWithTotals(_ context.Context) ([]*adminUserRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*adminUserRow
	for _, u := range m.users {
		rows = append(rows, &adminUserRow{
			ID:          u.ID,
			FullName:    u.FullName,
			Email:       u.Email,
			Username:    u.Username,
			Active:      u.Active,
			CreatedAt:   u.CreatedAt,
			LastLoginAt: u.LastLoginAt,
		})
	}
	return rows, nil
}

func (m *mockUserRepository) GetUserWithTotals(_ context.Context, id string) (*adminUserRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &adminUserRow{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Username:    u.Username,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}, nil
}

type stubDonationRepository struct{}

func (stubDonationRepository) CreateDonation(_ context.Context, _ *entities.Donation) error {
	return nil
}

func (stubDonationRepository) GetDonationByID(_ context.Context, _ uint) (*entities.Donation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (stubDonationRepository) DeleteDonation(_ context.Context, _ uint) error { return nil }

func (stubDonationRepository) GetUserDonations(_ context.Context, _ string) ([]*entities.Donation, error) {
	return nil, nil
}

func (stubDonationRepository) GetUserMonthTotals(_ context.Context, _ string) (int64, float64, error) {
	return 0, 0, nil
}

func (stubDonationRepository) GetAllDonations(_ context.Context) ([]*entities.Donation, error) {
	return nil, nil
}

type stubS3 struct{}

func (stubS3) UploadFile(name string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + name, nil
}

func (stubS3) DeleteFile(_ string) error { return nil }

func (stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://example.test/" + objectKey
}

func newTestUserService(repo UserRepository) UserService {
	return NewUserService(repo, stubDonationRepository{}, jwt.NewJWTService(), stubS3{})
}

func registerDonor(t *testing.T, service UserService, username string) string {
	t.Helper()
	resp, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Maria da Silva",
		Email:    username + "@example.com",
		Username: username,
		Password: "segredo-forte",
	})
	require.NoError(t, err)
	return resp.ID
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)

	id := registerDonor(t, service, "maria")

	stored, err := repo.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDonor, stored.Role)
	assert.True(t, stored.Active)
	assert.NotEqual(t, "segredo-forte", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("segredo-forte")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)

	registerDonor(t, service, "maria")

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Outra Maria",
		Email:    "outra@example.com",
		Username: "maria",
		Password: "outro-segredo",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLoginIssuesTokenAndUpdatesLastLogin(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	id := registerDonor(t, service, "maria")

	resp, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "maria",
		Password: "segredo-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, id, resp.User.ID)

	tokenID, role, err := jwt.NewJWTService().GetUserIDByToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, id, tokenID)
	assert.Equal(t, domain.RoleDonor, role)

	stored, err := repo.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	registerDonor(t, service, "maria")

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "maria",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownUser(t *testing.T) {
	service := newTestUserService(newMockUserRepository())

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "ninguem",
		Password: "tanto-faz",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	id := registerDonor(t, service, "maria")

	repo.mu.Lock()
	repo.users[id].Active = false
	repo.mu.Unlock()

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "maria",
		Password: "segredo-forte",
	})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestAdminLoginRejectsDonor(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	registerDonor(t, service, "maria")

	_, err := service.AdminLogin(context.Background(), domain.LoginRequest{
		Username: "maria",
		Password: "segredo-forte",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestAdminLoginIssuesAdminToken(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	id := registerDonor(t, service, "admin")

	repo.mu.Lock()
	repo.users[id].Role = domain.RoleAdmin
	repo.mu.Unlock()

	resp, err := service.AdminLogin(context.Background(), domain.LoginRequest{
		Username: "admin",
		Password: "segredo-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Admin.Username)

	_, role, err := jwt.NewJWTService().GetUserIDByToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestGetUsersReportsStatus(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	id := registerDonor(t, service, "maria")

	repo.mu.Lock()
	repo.users[id].Active = false
	repo.mu.Unlock()

	users, err := service.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "inativo", users[0].Status)
}

func TestRemovePhotoNoop(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestUserService(repo)
	id := registerDonor(t, service, "maria")

	// no photo set, nothing to remove
	assert.NoError(t, service.RemovePhoto(context.Background(), id))
}
