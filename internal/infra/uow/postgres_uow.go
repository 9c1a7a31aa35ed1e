package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/infra/readstore"
	"event-coupon-admin/internal/infra/repository"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/queries"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	attendeeRepo shared.AttendeeRepository
	couponRepo   shared.CouponRepository
	guestRepo    shared.GuestRepository
	adminRepo    shared.AdminRepository
	settingsRepo shared.SettingsRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Attendees() shared.AttendeeRepository {
	if t.attendeeRepo == nil {
		t.attendeeRepo = repository.NewAttendeeRepository(t.dbtx)
	}
	return t.attendeeRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.dbtx)
	}
	return t.couponRepo
}

func (t *pgTx) Guests() shared.GuestRepository {
	if t.guestRepo == nil {
		t.guestRepo = repository.NewGuestRepository(t.dbtx)
	}
	return t.guestRepo
}

func (t *pgTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.dbtx)
	}
	return t.adminRepo
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settingsRepo == nil {
		t.settingsRepo = repository.NewSettingsRepository(t.dbtx)
	}
	return t.settingsRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	attendeeStore *readstore.AttendeeReadStore
	guestStore    *readstore.GuestReadStore
	couponStore   *readstore.CouponReadStore
	settingsStore *readstore.SettingsReadStore
}

func (r *commandReads) AttendeeByID(ctx context.Context, id uuid.UUID) (*shared.AttendeeSnapshot, error) {
	if r.attendeeStore == nil {
		r.attendeeStore = readstore.NewAttendeeReadStore(r.dbtx)
	}

	view, err := r.attendeeStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return attendeeSnapshotFromView(view), nil
}

func (r *commandReads) AttendeeByEmail(ctx context.Context, email string) (*shared.AttendeeSnapshot, error) {
	if r.attendeeStore == nil {
		r.attendeeStore = readstore.NewAttendeeReadStore(r.dbtx)
	}

	view, err := r.attendeeStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return attendeeSnapshotFromView(view), nil
}

func (r *commandReads) GuestByLumaID(ctx context.Context, lumaGuestID string) (*shared.GuestSnapshot, error) {
	if r.guestStore == nil {
		r.guestStore = readstore.NewGuestReadStore(r.dbtx)
	}

	view, err := r.guestStore.FindByLumaID(ctx, lumaGuestID)
	if err != nil {
		return nil, err
	}

	return &shared.GuestSnapshot{
		ID:                 view.ID,
		LumaGuestID:        view.LumaGuestID,
		LumaEventID:        view.LumaEventID,
		GuestKey:           view.GuestKey,
		Name:               view.Name,
		Email:              view.Email,
		RegistrationStatus: view.RegistrationStatus,
		ApprovalStatus:     view.ApprovalStatus,
		CouponCodeID:       view.CouponCodeID,
		EmailSentAt:        view.EmailSentAt,
	}, nil
}

func attendeeSnapshotFromView(view *queries.AttendeeView) *shared.AttendeeSnapshot {
	return &shared.AttendeeSnapshot{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		CouponCodeID: view.CouponCodeID,
		Source:       view.Source,
		LumaGuestID:  view.LumaGuestID,
		LumaEventID:  view.LumaEventID,
	}
}

func (r *commandReads) CouponByID(ctx context.Context, id uuid.UUID) (*shared.CouponSnapshot, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.dbtx)
	}

	view, err := r.couponStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.CouponSnapshot{
		ID:         view.ID,
		Code:       view.Code,
		IsUsed:     view.IsUsed,
		UsedAt:     view.UsedAt,
		UsedByKind: view.UsedByKind,
		UsedByRef:  view.UsedByRef,
	}, nil
}

func (r *commandReads) Settings(ctx context.Context) (*shared.SettingsSnapshot, error) {
	if r.settingsStore == nil {
		r.settingsStore = readstore.NewSettingsReadStore(r.dbtx)
	}

	view, err := r.settingsStore.Get(ctx)
	if err != nil {
		return nil, err
	}

	snap := &shared.SettingsSnapshot{
		CityName:     view.CityName,
		Timezone:     view.Timezone,
		LumaEventID:  view.LumaEventID,
		LumaAPIKey:   view.LumaAPIKey,
		ResendAPIKey: view.ResendAPIKey,
	}
	if view.UpdatedAt != nil {
		snap.UpdatedAt = *view.UpdatedAt
	}
	return snap, nil
}
