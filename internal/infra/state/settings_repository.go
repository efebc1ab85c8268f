package state

import (
	"context"
	"strconv"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

type settingsRepository struct {
	store repository.StateStore
}

// NewSettingsRepository stores catalog overrides as two independent state keys.
func NewSettingsRepository(store repository.StateStore) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) GetCatalogSettings(ctx context.Context) (*entity.CatalogSettings, error) {
	settings := &entity.CatalogSettings{}

	baseURL, err := r.store.Get(ctx, constants.StateKeyCatalogBaseURL)
	switch {
	case err == nil:
		settings.BaseURL = string(baseURL)
	case !errors.Is(err, repository.ErrStateNotFound):
		return nil, err
	}

	limit, err := r.store.Get(ctx, constants.StateKeyCatalogDefaultLimit)
	switch {
	case err == nil:
		// A corrupted limit is treated as unset.
		if n, convErr := strconv.Atoi(string(limit)); convErr == nil && n > 0 {
			settings.DefaultLimit = n
		}
	case !errors.Is(err, repository.ErrStateNotFound):
		return nil, err
	}

	return settings, nil
}

func (r *settingsRepository) SaveCatalogSettings(ctx context.Context, settings *entity.CatalogSettings) error {
	if settings.BaseURL == "" {
		if err := r.store.Delete(ctx, constants.StateKeyCatalogBaseURL); err != nil {
			return err
		}
	} else if err := r.store.Set(ctx, constants.StateKeyCatalogBaseURL, []byte(settings.BaseURL), 0); err != nil {
		return err
	}

	if settings.DefaultLimit <= 0 {
		return r.store.Delete(ctx, constants.StateKeyCatalogDefaultLimit)
	}

	return r.store.Set(ctx, constants.StateKeyCatalogDefaultLimit, []byte(strconv.Itoa(settings.DefaultLimit)), 0)
}

func (r *settingsRepository) ResetCatalogSettings(ctx context.Context) error {
	return errors.Join(
		r.store.Delete(ctx, constants.StateKeyCatalogBaseURL),
		r.store.Delete(ctx, constants.StateKeyCatalogDefaultLimit),
	)
}
