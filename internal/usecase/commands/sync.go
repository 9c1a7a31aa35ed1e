package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoEventConfigured = errs.New("no luma event configured")
	ErrLumaNotConfigured = errs.New("luma api key not configured")
	ErrSyncFailed        = errs.New("guest sync failed")
)

const (
	syncTypeGuests = "guests"

	defaultGuestStatus = "confirmed"

	// Upsert batching keeps individual statements short and gives the
	// pool room between bursts.
	guestBatchSize  = 50
	guestBatchDelay = 100 * time.Millisecond
)

type SyncResult struct {
	LumaEventID     string
	GuestsSynced    int32
	GuestsAdded     int32
	GuestsUpdated   int32
	CouponsAssigned int32
	Errors          []string
}

type SyncCommands interface {
	SyncGuests(ctx context.Context, lumaEventID *string) (*SyncResult, error)
	TestConnection(ctx context.Context) error
}

type syncCommandsImpl struct {
	uow        shared.UnitOfWork
	store      SyncStore
	newClient  LumaClientFactory
	clock      clock.Clock
	batchDelay time.Duration
}

func NewSyncCommands(uow shared.UnitOfWork, store SyncStore, newClient LumaClientFactory, clk clock.Clock) SyncCommands {
	return &syncCommandsImpl{
		uow:        uow,
		store:      store,
		newClient:  newClient,
		clock:      clk,
		batchDelay: guestBatchDelay,
	}
}

// SyncGuests pulls the guest list for the given event, or the
// configured one when nil, and upserts events and guests keyed by their
// Luma IDs. Per-guest failures are collected and the sync continues;
// only failures before any guest work mark the run as failed.
func (s *syncCommandsImpl) SyncGuests(ctx context.Context, lumaEventID *string) (*SyncResult, error) {
	client, eventID, err := s.resolveClient(ctx, lumaEventID)
	if err != nil {
		return nil, err
	}

	logID, err := s.store.StartSyncLog(ctx, eventID, syncTypeGuests)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{LumaEventID: eventID}
	counters := SyncCounters{}

	remoteEvent, err := client.GetEvent(ctx, eventID)
	if err != nil {
		s.failSync(ctx, logID, counters, err)
		return nil, errs.Mark(err, ErrSyncFailed)
	}
	if err := s.store.UpsertEvent(ctx, *remoteEvent); err != nil {
		s.failSync(ctx, logID, counters, err)
		return nil, errs.Mark(err, ErrSyncFailed)
	}

	guests, err := s.fetchAllGuests(ctx, client, eventID)
	if err != nil {
		s.failSync(ctx, logID, counters, err)
		return nil, errs.Mark(err, ErrSyncFailed)
	}

	syncedAt := s.clock.Now()
	for start := 0; start < len(guests); start += guestBatchSize {
		end := min(start+guestBatchSize, len(guests))

		for _, guest := range guests[start:end] {
			// Counts attempts, not successes, so the log shows how many
			// guests the run covered even when some upserts fail.
			counters.GuestsSynced++
			inserted, err := s.store.UpsertGuest(ctx, eventID, guest, syncedAt)
			if err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("guest %s: %s", guest.LumaGuestID, err.Error()))
				continue
			}
			if inserted {
				counters.GuestsAdded++
			} else {
				counters.GuestsUpdated++
			}
		}

		if end < len(guests) {
			select {
			case <-ctx.Done():
				s.failSync(ctx, logID, counters, ctx.Err())
				return nil, ctx.Err()
			case <-time.After(s.batchDelay):
			}
		}
	}

	if err := s.store.TouchEventSynced(ctx, eventID, syncedAt); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("event touch: %s", err.Error()))
	}

	if err := s.store.CompleteSyncLog(ctx, logID, counters, result.Errors); err != nil {
		slog.Warn("failed to complete sync log", "log_id", logID, "error", err.Error())
	}

	result.GuestsSynced = counters.GuestsSynced
	result.GuestsAdded = counters.GuestsAdded
	result.GuestsUpdated = counters.GuestsUpdated
	result.CouponsAssigned = counters.CouponsAssigned
	return result, nil
}

// TestConnection checks the stored API key against the Luma API.
func (s *syncCommandsImpl) TestConnection(ctx context.Context) error {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}
	if settings.LumaAPIKey == nil || *settings.LumaAPIKey == "" {
		return ErrLumaNotConfigured
	}
	return s.newClient(*settings.LumaAPIKey).GetSelf(ctx)
}

func (s *syncCommandsImpl) resolveClient(ctx context.Context, lumaEventID *string) (LumaClient, string, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, "", err
	}

	eventID := ""
	if lumaEventID != nil && *lumaEventID != "" {
		eventID = *lumaEventID
	} else if settings.LumaEventID != nil {
		eventID = *settings.LumaEventID
	}
	if eventID == "" {
		return nil, "", ErrNoEventConfigured
	}

	if settings.LumaAPIKey == nil || *settings.LumaAPIKey == "" {
		return nil, "", ErrLumaNotConfigured
	}

	return s.newClient(*settings.LumaAPIKey), eventID, nil
}

func (s *syncCommandsImpl) loadSettings(ctx context.Context) (*shared.SettingsSnapshot, error) {
	settings, err := s.uow.CommandReads().Settings(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &shared.SettingsSnapshot{}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *syncCommandsImpl) fetchAllGuests(ctx context.Context, client LumaClient, eventID string) ([]RemoteGuest, error) {
	var guests []RemoteGuest
	cursor := ""
	for {
		page, err := client.ListGuests(ctx, eventID, defaultGuestStatus, cursor)
		if err != nil {
			return nil, err
		}
		guests = append(guests, page.Guests...)
		if !page.HasMore || page.NextCursor == "" {
			return guests, nil
		}
		cursor = page.NextCursor
	}
}

func (s *syncCommandsImpl) failSync(ctx context.Context, logID uuid.UUID, counters SyncCounters, cause error) {
	message := strings.TrimSpace(cause.Error())
	if err := s.store.FailSyncLog(ctx, logID, counters, message); err != nil {
		slog.Warn("failed to mark sync log as failed", "log_id", logID, "error", err.Error())
	}
}
