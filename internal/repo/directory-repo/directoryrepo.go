package directoryrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/domain"
	"github.com/GlebRadaev/pawction/internal/pg"
)

// Repository reads the user and pet rows owned by the registration and pet
// catalogue services.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, created_at FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Login, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindPet(ctx context.Context, id int64) (*domain.Pet, error) {
	var pet domain.Pet
	err := repo.db.QueryRow(ctx, "SELECT id, owner_id, name, details, updated_at FROM pets WHERE id = $1", id).
		Scan(&pet.ID, &pet.OwnerID, &pet.Name, &pet.Details, &pet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find pet", zap.Error(err))
		return nil, err
	}
	return &pet, nil
}

func (repo *Repository) UpdatePet(ctx context.Context, pet *domain.Pet) error {
	query := `
		UPDATE pets
		SET name = $1, details = $2, updated_at = $3
		WHERE id = $4
	`
	_, err := repo.db.Exec(ctx, query, pet.Name, pet.Details, pet.UpdatedAt, pet.ID)
	if err != nil {
		zap.L().Error("failed to update pet", zap.Int64("pet_id", pet.ID), zap.Error(err))
		return err
	}
	return nil
}
