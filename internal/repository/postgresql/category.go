package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

type CategoryRepo struct {
	db db.DB
}

func NewCategoryRepo(db db.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) GetAll(ctx context.Context) ([]*repository.Category, error) {
	var categories []*repository.Category
	err := r.db.Select(ctx, &categories, "SELECT * FROM categories ORDER BY name ASC")
	return categories, err
}

func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*repository.Category, error) {
	var category repository.Category
	err := r.db.Get(ctx, &category,
		"SELECT * FROM categories WHERE lower(name) = lower($1)", name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.ExecQueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM categories WHERE lower(name) = lower($1))", name).Scan(&exists)
	return exists, err
}
