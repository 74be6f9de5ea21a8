package testutil

import (
	"context"
	"sync"
	"time"

	"dashd/internal/models"
	"dashd/internal/providers"
	"dashd/internal/store"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the recorded log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.Logs))
	copy(out, m.Logs)
	return out
}

// MockStore is an in-memory store.DocumentStore with injectable failures.
type MockStore struct {
	mu       sync.Mutex
	Docs     map[string]*models.StatDocument
	GetErr   error
	PutErr   error
	PutCalls int
	GetCalls int
}

func NewMockStore() *MockStore {
	return &MockStore{Docs: make(map[string]*models.StatDocument)}
}

func storeKey(typ models.StatType, date models.DateKey) string {
	return string(typ) + "/" + string(date)
}

func (m *MockStore) Get(_ context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	doc, ok := m.Docs[storeKey(typ, date)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (m *MockStore) Put(_ context.Context, typ models.StatType, date models.DateKey, doc *models.StatDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.PutErr != nil {
		return m.PutErr
	}
	cp := *doc
	m.Docs[storeKey(typ, date)] = &cp
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// calls.
type MockMetrics struct {
	mu            sync.Mutex
	Requests      int
	CacheHits     int
	CacheMisses   int
	Cycles        map[string]int
	HistoryLength map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Cycles:        make(map[string]int),
		HistoryLength: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncCollectorCycles(statType, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cycles[statType+":"+result]++
}

func (m *MockMetrics) ObserveCycleDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) SetHistoryLength(statType string, length int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistoryLength[statType] = length
}
