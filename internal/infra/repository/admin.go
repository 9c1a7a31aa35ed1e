package repository

import (
	"context"

	"event-coupon-admin/internal/domain/admin"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"

	"github.com/google/uuid"
)

type AdminRepository struct {
	db db.DBTX
}

func NewAdminRepository(db db.DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) (uuid.UUID, error) {
	const query = `
		INSERT INTO admins (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, a.ID(), a.Name(), a.Email().Value(), a.PasswordHash()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("admin email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create admin", err)
	}
	return id, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM admins`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count admins", err)
	}
	return count, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, adminID uuid.UUID) error {
	const query = `UPDATE admins SET last_login_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, adminID); err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	return nil
}
