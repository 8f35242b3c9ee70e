package history

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// CLIENT TIMELINE
// ======================================================

type ListClientHistory struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListClientHistory(repo domain.Repository, clock timezone.Clock) *ListClientHistory {
	return &ListClientHistory{repo: repo, clock: clock}
}

// Execute returns the client's events newest first, described in pt-BR in
// the shop timezone. Events of deleted clients are still returned.
func (uc *ListClientHistory) Execute(ctx context.Context, clientID models.ID) ([]audit.Entry, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	loc := uc.clock.Now().Location()
	events := audit.ForClient(s.History, clientID)

	out := make([]audit.Entry, 0, len(events))
	for _, ev := range events {
		out = append(out, audit.Describe(ev, s.Services, loc))
	}
	return out, nil
}

// ======================================================
// STATS
// ======================================================

type GetClientStats struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetClientStats(repo domain.Repository, clock timezone.Clock) *GetClientStats {
	return &GetClientStats{repo: repo, clock: clock}
}

func (uc *GetClientStats) Execute(ctx context.Context, clientID models.ID) (*audit.Stats, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	st := audit.ComputeStats(s.History, clientID, uc.clock.Now())
	return &st, nil
}

// ======================================================
// CLEAR
// ======================================================

type ClearHistory struct {
	repo domain.Repository
}

func NewClearHistory(repo domain.Repository) *ClearHistory {
	return &ClearHistory{repo: repo}
}

// Execute drops every event of every client and returns how many were
// removed.
func (uc *ClearHistory) Execute(ctx context.Context) (int, error) {
	removed := 0
	err := uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		removed = len(s.History)
		s.History = []models.HistoryEvent{}
		return nil
	})
	return removed, err
}

// ======================================================
// FULL LOG (filtros + paginação)
// ======================================================

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type ListInput struct {
	Kind     string
	ClientID models.ID
	From     time.Time // inclusive, zero = open
	To       time.Time // inclusive day, zero = open
	Page     int
	Limit    int
}

type Page struct {
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Total   int           `json:"total"`
	Entries []audit.Entry `json:"entries"`
}

type ListHistory struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListHistory(repo domain.Repository, clock timezone.Clock) *ListHistory {
	return &ListHistory{repo: repo, clock: clock}
}

// Execute returns the whole log newest first, filtered and paginated.
func (uc *ListHistory) Execute(ctx context.Context, in ListInput) (*Page, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 || in.Limit > MaxPageSize {
		in.Limit = DefaultPageSize
	}

	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	loc := uc.clock.Now().Location()
	var until time.Time
	if !in.To.IsZero() {
		until = in.To.AddDate(0, 0, 1)
	}

	matched := make([]models.HistoryEvent, 0)
	for _, ev := range s.History {
		if in.Kind != "" && ev.Kind != in.Kind {
			continue
		}
		if in.ClientID != "" && ev.ClientID != in.ClientID {
			continue
		}
		day := calendar.Day(ev.Timestamp.In(loc))
		if !in.From.IsZero() && day.Before(in.From) {
			continue
		}
		if !until.IsZero() && !day.Before(until) {
			continue
		}
		matched = append(matched, ev)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	out := &Page{Page: in.Page, Limit: in.Limit, Total: len(matched), Entries: []audit.Entry{}}
	if in.Page-1 > len(matched)/in.Limit {
		return out, nil
	}
	offset := (in.Page - 1) * in.Limit
	if offset >= len(matched) {
		return out, nil
	}
	end := min(offset+in.Limit, len(matched))
	for _, ev := range matched[offset:end] {
		out.Entries = append(out.Entries, audit.Describe(ev, s.Services, loc))
	}
	return out, nil
}
