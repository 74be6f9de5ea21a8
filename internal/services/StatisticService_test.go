package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashd/internal/models"
	"dashd/internal/store"
	"dashd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDoc(t *testing.T, docs *testutil.MockStore, typ models.StatType, date models.DateKey, snapshots int) {
	t.Helper()
	doc := models.NewStatDocument(typ, date)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < snapshots; i++ {
		doc.Append(models.Snapshot{
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Period:    models.PeriodOf(base),
			Data:      models.VisitorPayload{TotalVisitors: 100 + i},
		}, 24)
	}
	require.NoError(t, docs.Put(context.Background(), typ, date, doc))
}

func TestStatisticService_GetDocument(t *testing.T) {
	docs := testutil.NewMockStore()
	seedDoc(t, docs, models.TypeVisitors, "20240301", 3)
	ss := NewStatisticService(docs)

	doc, err := ss.GetDocument(context.Background(), models.TypeVisitors, "20240301")
	require.NoError(t, err)
	assert.Len(t, doc.History, 3)
}

func TestStatisticService_GetDocument_NotFound(t *testing.T) {
	ss := NewStatisticService(testutil.NewMockStore())

	_, err := ss.GetDocument(context.Background(), models.TypeVisitors, "20240301")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStatisticService_GetLatestSnapshot(t *testing.T) {
	docs := testutil.NewMockStore()
	seedDoc(t, docs, models.TypeVisitors, "20240301", 3)
	ss := NewStatisticService(docs)

	snap, err := ss.GetLatestSnapshot(context.Background(), models.TypeVisitors, "20240301")
	require.NoError(t, err)
	assert.Equal(t, 102, snap.Data.(models.VisitorPayload).TotalVisitors)
}

func TestStatisticService_GetLatestSnapshot_EmptyHistory(t *testing.T) {
	docs := testutil.NewMockStore()
	doc := models.NewStatDocument(models.TypeVisitors, "20240301")
	require.NoError(t, docs.Put(context.Background(), models.TypeVisitors, "20240301", doc))
	ss := NewStatisticService(docs)

	_, err := ss.GetLatestSnapshot(context.Background(), models.TypeVisitors, "20240301")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStatisticService_GetLatestSnapshot_ReadError(t *testing.T) {
	docs := testutil.NewMockStore()
	docs.GetErr = errors.New("backend down")
	ss := NewStatisticService(docs)

	_, err := ss.GetLatestSnapshot(context.Background(), models.TypeVisitors, "20240301")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestStatisticService_Types(t *testing.T) {
	ss := NewStatisticService(testutil.NewMockStore())
	assert.Equal(t, models.AllStatTypes(), ss.Types())
}
