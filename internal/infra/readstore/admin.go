package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(db db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: db}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedAdminView, error) {
	const query = `SELECT id, name, email FROM admins WHERE id = $1`

	var view queries.AuthorizedAdminView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}
	return &view, nil
}

func (r *AdminReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedAdminView, string, error) {
	const query = `SELECT id, name, email, password_hash FROM admins WHERE email = $1`

	var (
		view         queries.AuthorizedAdminView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Name, &view.Email, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find admin by email", err)
	}
	return &view, passwordHash, nil
}
