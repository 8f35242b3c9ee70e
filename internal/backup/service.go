package backup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type Service struct {
	repo    domain.Repository
	clock   timezone.Clock
	archive *Archive
	log     *zap.Logger
}

func NewService(repo domain.Repository, clock timezone.Clock, archive *Archive, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, clock: clock, archive: archive, log: log}
}

// Export returns the export document of one collection.
func (s *Service) Export(ctx context.Context, c store.Collection) ([]byte, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Export(c, records(snap, c), s.clock.Now())
}

// Import replaces the whole collection with the document's records and
// returns how many were imported. Nothing changes when the document is
// invalid.
func (s *Service) Import(ctx context.Context, c store.Collection, data []byte) (int, error) {
	var (
		n     int
		apply func(*domain.Snapshot)
	)

	switch c {
	case store.Clients:
		list, err := Import[models.Client](c, data)
		if err != nil {
			return 0, err
		}
		n, apply = len(list), func(sn *domain.Snapshot) { sn.Clients = list }
	case store.Services:
		list, err := Import[models.Service](c, data)
		if err != nil {
			return 0, err
		}
		n, apply = len(list), func(sn *domain.Snapshot) { sn.Services = list }
	case store.Appointments:
		list, err := Import[models.Appointment](c, data)
		if err != nil {
			return 0, err
		}
		n, apply = len(list), func(sn *domain.Snapshot) { sn.Appointments = list }
	case store.History:
		list, err := Import[models.HistoryEvent](c, data)
		if err != nil {
			return 0, err
		}
		n, apply = len(list), func(sn *domain.Snapshot) { sn.History = list }
	default:
		return 0, httperr.Validation("invalid_collection", "coleção desconhecida")
	}

	err := s.repo.Update(ctx, func(sn *domain.Snapshot) error {
		apply(sn)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("collection imported", zap.String("collection", string(c)), zap.Int("records", n))
	return n, nil
}

// Archive uploads one export per collection and returns the object keys.
func (s *Service) Archive(ctx context.Context) ([]string, error) {
	if !s.archive.Enabled() {
		return nil, httperr.Validation("archive_disabled", "backup em nuvem não configurado")
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	keys := make([]string, 0, len(store.Collections))
	for _, c := range store.Collections {
		doc, err := Export(c, records(snap, c), now)
		if err != nil {
			return keys, err
		}

		key := fmt.Sprintf("backups/%d/%02d/%02d/%s", now.Year(), now.Month(), now.Day(), FileName(c, now))
		if err := s.archive.Put(ctx, key, doc); err != nil {
			s.log.Error("archive upload failed", zap.String("key", key), zap.Error(err))
			return keys, err
		}
		keys = append(keys, key)
	}

	s.log.Info("backup archived", zap.Strings("keys", keys))
	return keys, nil
}

func records(snap *domain.Snapshot, c store.Collection) any {
	switch c {
	case store.Clients:
		return snap.Clients
	case store.Services:
		return snap.Services
	case store.Appointments:
		return snap.Appointments
	case store.History:
		return snap.History
	}
	return []any{}
}

// FileName is the download name of today's export of c.
func (s *Service) FileName(c store.Collection) string {
	return FileName(c, s.clock.Now())
}
