package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/pkg/errcodes"
)

type slotStore interface {
	Load(ctx context.Context) ([]entity.Team, error)
	Save(ctx context.Context, teams []entity.Team) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// BreakerSettings задаёт, когда размыкать цепь и сколько ждать перед пробой.
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// BreakerStore размыкает цепь после серии сбоев хранилища, чтобы действия
// пользователя сразу получали ошибку, а не висели на мёртвом бэкенде.
// Пустой слот и битый документ сбоем не считаются.
type BreakerStore struct {
	next slotStore
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerStore(next slotStore, settings BreakerSettings) *BreakerStore {
	failures := settings.ConsecutiveFailures
	if failures == 0 {
		failures = 3
	}

	st := gobreaker.Settings{
		Name:    settings.Name,
		Timeout: settings.OpenTimeout,
	}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool { return counts.ConsecutiveFailures >= failures }
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, ErrSlotEmpty) || domain.HasCode(err, errcodes.CorruptedState)
	}

	return &BreakerStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(st),
	}
}

func (s *BreakerStore) Load(ctx context.Context) ([]entity.Team, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.Load(ctx)
	})
	if err != nil {
		return nil, breakerError(err)
	}

	teams, _ := res.([]entity.Team)

	return teams, nil
}

func (s *BreakerStore) Save(ctx context.Context, teams []entity.Team) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Save(ctx, teams)
	})

	return breakerError(err)
}

// Ping проверяет бэкенд в обход цепи, если он это умеет.
func (s *BreakerStore) Ping(ctx context.Context) error {
	if p, ok := s.next.(pinger); ok {
		return p.Ping(ctx)
	}

	return nil
}

func (s *BreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.WrapError(err, errcodes.StorageUnavailable, "storage circuit is open")
	}

	return err
}
