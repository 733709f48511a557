package postgres

import (
	"context"
	"encoding/json"

	"smachna/internal/domain/entity"
	"smachna/internal/domain/repository"
	"smachna/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface. It is a
// read-only view: account management belongs to the dedicated auth service.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM)
}

// toUserDomain converts a GORM model into its domain entity.
func toUserDomain(userM *model.UserModel) (*entity.User, error) {
	user := &entity.User{
		ID:        userM.ID,
		Email:     userM.Email,
		Name:      userM.Name,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}

	if len(userM.Roles) > 0 {
		var roles []string
		if err := json.Unmarshal(userM.Roles, &roles); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal user roles")
		}
		user.Roles = entity.RolesFromStrings(roles)
	}

	return user, nil
}
