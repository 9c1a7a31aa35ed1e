package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AttendeeReadStore struct {
	db db.DBTX
}

func NewAttendeeReadStore(db db.DBTX) *AttendeeReadStore {
	return &AttendeeReadStore{db: db}
}

const attendeeViewQuery = `
	SELECT a.id, a.name, a.email, a.coupon_code_id, c.code, a.source,
	       a.luma_guest_id, a.luma_event_id, a.registered_at, a.created_at
	FROM attendees a
	LEFT JOIN coupon_codes c ON c.id = a.coupon_code_id`

func (r *AttendeeReadStore) List(ctx context.Context, filter queries.AttendeeFilter) ([]*queries.AttendeeView, error) {
	// $1/$2 pairs: NULL disables the corresponding filter.
	query := attendeeViewQuery + `
	WHERE ($1::boolean IS NULL OR ($1 AND a.coupon_code_id IS NOT NULL) OR (NOT $1 AND a.coupon_code_id IS NULL))
	  AND ($2::text IS NULL OR a.source = $2)
	ORDER BY a.registered_at DESC`

	var hasCoupon pgtype.Bool
	if filter.HasCoupon != nil {
		hasCoupon = pgtype.Bool{Bool: *filter.HasCoupon, Valid: true}
	}

	rows, err := r.db.Query(ctx, query, hasCoupon, pgconv.StringPtrToPgtype(filter.Source))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list attendees", err)
	}
	defer rows.Close()

	var views []*queries.AttendeeView
	for rows.Next() {
		view, err := scanAttendeeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan attendee row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate attendee rows", err)
	}
	return views, nil
}

func (r *AttendeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AttendeeView, error) {
	row := r.db.QueryRow(ctx, attendeeViewQuery+` WHERE a.id = $1`, id)

	view, err := scanAttendeeView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("attendee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find attendee by ID", err)
	}
	return view, nil
}

func (r *AttendeeReadStore) FindByEmail(ctx context.Context, email string) (*queries.AttendeeView, error) {
	row := r.db.QueryRow(ctx, attendeeViewQuery+` WHERE a.email = $1`, email)

	view, err := scanAttendeeView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("attendee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find attendee by email", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendeeView(row rowScanner) (*queries.AttendeeView, error) {
	var (
		view         queries.AttendeeView
		couponCodeID pgtype.UUID
		couponCode   pgtype.Text
		lumaGuestID  pgtype.Text
		lumaEventID  pgtype.Text
		registeredAt pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.Name, &view.Email, &couponCodeID, &couponCode,
		&view.Source, &lumaGuestID, &lumaEventID, &registeredAt, &createdAt)
	if err != nil {
		return nil, err
	}

	view.CouponCodeID = pgconv.UUIDPtrFromPgtype(couponCodeID)
	view.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	view.LumaGuestID = pgconv.StringPtrFromPgtype(lumaGuestID)
	view.LumaEventID = pgconv.StringPtrFromPgtype(lumaEventID)
	view.RegisteredAt = pgconv.TimeFromPgtype(registeredAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
