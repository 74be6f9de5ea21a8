package store

import (
	"context"

	"dashd/internal/models"
	"dashd/internal/providers"
)

// MirrorStore duplicates every Put to a secondary store. The secondary
// write is best effort: its failure is logged and swallowed, never
// retried or rolled back, so the primary stays the source of truth.
// Reads only ever hit the primary.
type MirrorStore struct {
	primary   DocumentStore
	secondary DocumentStore
	logger    providers.Logger
}

func NewMirrorStore(primary, secondary DocumentStore, logger providers.Logger) *MirrorStore {
	return &MirrorStore{primary: primary, secondary: secondary, logger: logger}
}

func (m *MirrorStore) Get(ctx context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error) {
	return m.primary.Get(ctx, typ, date)
}

func (m *MirrorStore) Put(ctx context.Context, typ models.StatType, date models.DateKey, doc *models.StatDocument) error {
	if err := m.primary.Put(ctx, typ, date, doc); err != nil {
		return err
	}
	if err := m.secondary.Put(ctx, typ, date, doc); err != nil {
		m.logger.Errorf(providers.TypeCollector, "Mirror write failed for %s/%s: %s", typ, date, err)
	}
	return nil
}
