package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(db db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: db}
}

const guestViewQuery = `
	SELECT g.id, g.luma_guest_id, g.luma_event_id, g.guest_key, g.name, g.email,
	       g.registration_status, g.approval_status, g.attendance_status,
	       g.registered_at, g.coupon_code_id, c.code, g.email_sent_at, g.synced_at
	FROM luma_guests g
	LEFT JOIN coupon_codes c ON c.id = g.coupon_code_id`

func (r *GuestReadStore) ListByEvent(ctx context.Context, lumaEventID string, status *string) ([]*queries.GuestView, error) {
	query := guestViewQuery + `
	WHERE g.luma_event_id = $1
	  AND ($2::text IS NULL OR g.registration_status = $2)
	ORDER BY g.registered_at DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, lumaEventID, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var views []*queries.GuestView
	for rows.Next() {
		view, err := scanGuestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guest rows", err)
	}
	return views, nil
}

func (r *GuestReadStore) FindByLumaID(ctx context.Context, lumaGuestID string) (*queries.GuestView, error) {
	row := r.db.QueryRow(ctx, guestViewQuery+` WHERE g.luma_guest_id = $1`, lumaGuestID)

	view, err := scanGuestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by luma ID", err)
	}
	return view, nil
}

func scanGuestView(row rowScanner) (*queries.GuestView, error) {
	var (
		view             queries.GuestView
		approvalStatus   pgtype.Text
		attendanceStatus pgtype.Text
		registeredAt     pgtype.Timestamptz
		couponCodeID     pgtype.UUID
		couponCode       pgtype.Text
		emailSentAt      pgtype.Timestamptz
		syncedAt         pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.LumaGuestID, &view.LumaEventID, &view.GuestKey,
		&view.Name, &view.Email, &view.RegistrationStatus, &approvalStatus,
		&attendanceStatus, &registeredAt, &couponCodeID, &couponCode, &emailSentAt, &syncedAt)
	if err != nil {
		return nil, err
	}

	view.ApprovalStatus = pgconv.StringPtrFromPgtype(approvalStatus)
	view.AttendanceStatus = pgconv.StringPtrFromPgtype(attendanceStatus)
	view.RegisteredAt = pgconv.TimePtrFromPgtype(registeredAt)
	view.CouponCodeID = pgconv.UUIDPtrFromPgtype(couponCodeID)
	view.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	view.EmailSentAt = pgconv.TimePtrFromPgtype(emailSentAt)
	view.SyncedAt = pgconv.TimePtrFromPgtype(syncedAt)
	return &view, nil
}
