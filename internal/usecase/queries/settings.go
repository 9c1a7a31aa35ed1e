package queries

import (
	"context"

	"event-coupon-admin/internal/infra"
)

const (
	DefaultCityName = "Cafe Cursor"
	DefaultTimezone = "America/Toronto"
)

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
	GetPublic(ctx context.Context) (*PublicSettingsView, error)
}

type SettingsReadStore interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{
		readStore: readStore,
	}
}

// Get falls back to defaults when the singleton row has not been
// created yet, so the admin UI always has something to render.
func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	view, err := q.readStore.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &SettingsView{
				CityName: DefaultCityName,
				Timezone: DefaultTimezone,
			}, nil
		}
		return nil, err
	}
	return view, nil
}

func (q *settingsQueriesImpl) GetPublic(ctx context.Context) (*PublicSettingsView, error) {
	view, err := q.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &PublicSettingsView{
		CityName: view.CityName,
		Timezone: view.Timezone,
	}, nil
}
