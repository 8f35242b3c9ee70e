package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

var _ domain.Repository = (*RecordRepository)(nil)

// RecordRepository maps the typed snapshot onto the raw collection store.
// Writes are serialized and complete before Update returns.
type RecordRepository struct {
	store store.Store
	log   *zap.Logger

	mu sync.Mutex
}

func NewRecordRepository(s store.Store, log *zap.Logger) *RecordRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordRepository{store: s, log: log}
}

func (r *RecordRepository) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, _, err := r.load(ctx)
	return snap, err
}

func (r *RecordRepository) Update(ctx context.Context, fn func(s *domain.Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, raw, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	encoded := map[store.Collection]any{
		store.Clients:      snap.Clients,
		store.Services:     snap.Services,
		store.Appointments: snap.Appointments,
		store.History:      snap.History,
	}

	for _, c := range store.Collections {
		b, err := encode(encoded[c])
		if err != nil {
			return fmt.Errorf("encode %s: %w", c, err)
		}
		if bytes.Equal(b, raw[c]) {
			continue
		}
		if err := r.store.Save(ctx, c, b); err != nil {
			r.log.Error("save collection failed", zap.String("collection", string(c)), zap.Error(err))
			return err
		}
		r.log.Debug("collection saved", zap.String("collection", string(c)), zap.Int("bytes", len(b)))
	}
	return nil
}

func (r *RecordRepository) load(ctx context.Context) (*domain.Snapshot, map[store.Collection][]byte, error) {
	raw := make(map[store.Collection][]byte, len(store.Collections))
	for _, c := range store.Collections {
		b, err := r.store.Load(ctx, c)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		raw[c] = b
	}

	snap := &domain.Snapshot{}
	var err error
	if snap.Clients, err = decode[models.Client](store.Clients, raw[store.Clients]); err != nil {
		return nil, nil, err
	}
	if snap.Services, err = decode[models.Service](store.Services, raw[store.Services]); err != nil {
		return nil, nil, err
	}
	if snap.Appointments, err = decode[models.Appointment](store.Appointments, raw[store.Appointments]); err != nil {
		return nil, nil, err
	}
	if snap.History, err = decode[models.HistoryEvent](store.History, raw[store.History]); err != nil {
		return nil, nil, err
	}
	return snap, raw, nil
}

func decode[T any](c store.Collection, b []byte) ([]T, error) {
	out := make([]T, 0)
	if len(bytes.TrimSpace(b)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", c, store.ErrInvalidFormat, err)
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

func encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}
