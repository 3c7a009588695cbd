package storemetrics

import (
	"context"
	"time"

	"github.com/nkmlv/photobooth-booking/pkg/metrics"
)

// Store минимальный контракт key-value хранилища, который оборачивается метриками
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// Wrapper оборачивает Store, замеряя длительность и результат операций
type Wrapper struct {
	store Store
	m     *metrics.Metrics
}

// Wrap возвращает Store с учётом метрик
func Wrap(store Store, m *metrics.Metrics) *Wrapper {
	return &Wrapper{store: store, m: m}
}

// Get замеряет и делегирует чтение
func (w *Wrapper) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := w.store.Get(ctx, key)
	w.observe("get", start, err)
	return value, ok, err
}

// Set замеряет и делегирует запись
func (w *Wrapper) Set(ctx context.Context, key string, value string) error {
	start := time.Now()
	err := w.store.Set(ctx, key, value)
	w.observe("set", start, err)
	return err
}

func (w *Wrapper) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	w.m.StorageOpsTotal.WithLabelValues(op, result).Inc()
	w.m.StorageOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
