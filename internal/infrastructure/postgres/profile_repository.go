package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL (usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un nuevo perfil. El email es único.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Email, profile.PasswordHash, profile.FullName, profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// GetByEmail obtiene un perfil por email.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM profiles WHERE email = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	return &p, nil
}

// Update actualiza el perfil (self-update: solo full_name).
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE profiles SET full_name = $2 WHERE id = $1`,
		profile.ID, profile.FullName,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
