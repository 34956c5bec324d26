package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx,
		"INSERT INTO users (user_name, email) VALUES ($1, $2) RETURNING id",
		user.UserName, user.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches the email exactly, case-sensitive.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailsForItem returns the addresses of every user associated with the
// item, either as claimant or through a claim request.
func (r *UserRepo) EmailsForItem(ctx context.Context, itemID int64) ([]string, error) {
	var emails []string
	err := r.db.Select(ctx, &emails, `
        SELECT DISTINCT u.email
        FROM users u
        WHERE u.id IN (
            SELECT user_id FROM claim_requests WHERE item_id = $1
            UNION
            SELECT claimant_user_id FROM items WHERE id = $1 AND claimant_user_id IS NOT NULL
        )
    `, itemID)
	return emails, err
}

type AdminRepo struct {
	db db.DB
}

func NewAdminRepo(db db.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) CreateAdmin(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO admin_users (username, password) VALUES ($1, $2)",
		username, string(hashedPassword))
	return err
}

func (r *AdminRepo) ValidateAdmin(ctx context.Context, username, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM admin_users WHERE username = $1", username).Scan(&hashedPassword)
	if err != nil {
		return false, errors.New("admin user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
