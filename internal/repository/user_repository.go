package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lanca/lanca-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateUser is returned when the email or provider id already exists
var ErrDuplicateUser = errors.New("Já existe um usuário com este e-mail")

// UserRepository defines the interface for user profile access
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByAuthID(ctx context.Context, authID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context, query *ListQuery) ([]models.User, error)
}

var userSortable = columnSet("id", "full_name", "email", "role", "created_at")

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByAuthID(ctx context.Context, authID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("auth_id = ?", authID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func (r *userRepository) List(ctx context.Context, query *ListQuery) ([]models.User, error) {
	db, err := query.apply(
		r.db.WithContext(ctx).Model(&models.User{}),
		userSortable,
		clause.OrderByColumn{Column: clause.Column{Name: "full_name"}},
	)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	err = db.Find(&users).Error
	return users, err
}
