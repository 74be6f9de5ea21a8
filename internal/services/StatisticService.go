package services

import (
	"context"

	"dashd/internal/models"
	"dashd/internal/store"
)

type StatisticServiceInterface interface {
	GetDocument(ctx context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error)
	GetLatestSnapshot(ctx context.Context, typ models.StatType, date models.DateKey) (*models.Snapshot, error)
	Types() []models.StatType
}

// StatisticService is the read side: controllers go through it rather
// than holding the store themselves.
type StatisticService struct {
	docs store.DocumentStore
}

func NewStatisticService(docs store.DocumentStore) StatisticServiceInterface {
	return &StatisticService{docs: docs}
}

func (ss *StatisticService) GetDocument(ctx context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error) {
	return ss.docs.Get(ctx, typ, date)
}

func (ss *StatisticService) GetLatestSnapshot(ctx context.Context, typ models.StatType, date models.DateKey) (*models.Snapshot, error) {
	doc, err := ss.docs.Get(ctx, typ, date)
	if err != nil {
		return nil, err
	}
	snap := doc.LastSnapshot()
	if snap == nil {
		return nil, store.ErrNotFound
	}
	return snap, nil
}

func (ss *StatisticService) Types() []models.StatType {
	return models.AllStatTypes()
}
