package user

import (
	"context"
	"time"

	"rotasol-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
		UpdateLastLogin(ctx context.Context, id string) error
		UpdatePhoto(ctx context.Context, id string, photoURL *string) error
		GetUsersWithTotals(ctx context.Context) ([]*adminUserRow, error)
		GetUserWithTotals(ctx context.Context, id string) (*adminUserRow, error)
	}

	userRepository struct {
		db *gorm.DB
	}

	// adminUserRow carries the user columns joined with donation totals for
	// the admin listing queries.
	adminUserRow struct {
		ID             uuid.UUID  `gorm:"column:id"`
		FullName       string     `gorm:"column:nome_completo"`
		Email          string     `gorm:"column:email"`
		Username       string     `gorm:"column:usuario"`
		Active         bool       `gorm:"column:ativo"`
		CreatedAt      time.Time  `gorm:"column:data_criacao"`
		LastLoginAt    *time.Time `gorm:"column:ultimo_login"`
		DonationCount  int64      `gorm:"column:quantidade_doacoes"`
		DonationTotal  float64    `gorm:"column:total_doacoes"`
		LastDonationAt *time.Time `gorm:"column:ultima_doacao"`
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("usuario = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("usuario = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("ultimo_login", time.Now()).Error
}

// UpdatePhoto sets or clears the profile photo URL; nil removes it.
func (r *userRepository) UpdatePhoto(ctx context.Context, id string, photoURL *string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("foto_perfil", photoURL).Error
}

func (r *userRepository) GetUsersWithTotals(ctx context.Context) ([]*adminUserRow, error) {
	var rows []*adminUserRow

	query := `
		SELECT u.id, u.nome_completo, u.email, u.usuario, u.ativo,
		       u.data_criacao, u.ultimo_login,
		       COUNT(d.id) as quantidade_doacoes,
		       COALESCE(SUM(d.valor_estoque), 0) as total_doacoes
		FROM usuarios u
		LEFT JOIN doacoes d ON u.id = d.usuario_id
		GROUP BY u.id
		ORDER BY u.nome_completo
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepository) GetUserWithTotals(ctx context.Context, id string) (*adminUserRow, error) {
	var row adminUserRow

	query := `
		SELECT u.id, u.nome_completo, u.email, u.usuario, u.ativo,
		       u.data_criacao, u.ultimo_login,
		       COUNT(d.id) as quantidade_doacoes,
		       COALESCE(SUM(d.valor_estoque), 0) as total_doacoes,
		       MAX(d.data_doacao) as ultima_doacao
		FROM usuarios u
		LEFT JOIN doacoes d ON u.id = d.usuario_id
		WHERE u.id = ?
		GROUP BY u.id
	`

	result := r.db.WithContext(ctx).Raw(query, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
