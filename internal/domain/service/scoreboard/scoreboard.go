package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/service/ranking"
	"scoreboard/internal/domain/service/registry"
	"scoreboard/internal/domain/value"
	"scoreboard/pkg/errcodes"
	"scoreboard/pkg/logx"
)

// Операции для метрик и логов.
const (
	OpBootstrap  = "bootstrap"
	OpAdd        = "add"
	OpRemove     = "remove"
	OpAdjust     = "adjust"
	OpSettlement = "settlement"
)

// DefaultTeams используется, пока слот ещё пуст.
func DefaultTeams() []entity.Team {
	return []entity.Team{
		{Name: "开发一组", Score: 100},
		{Name: "测试二组", Score: 95},
		{Name: "设计三组", Score: 90},
		{Name: "产品四组", Score: 85},
		{Name: "运维五组", Score: 80},
	}
}

type TeamStore interface {
	Load(ctx context.Context) ([]entity.Team, error)
	Save(ctx context.Context, teams []entity.Team) error
}

// Recorder получает результат каждой операции.
type Recorder interface {
	ObserveOperation(op string, err error)
	SetTeamCount(n int)
}

// Settlement содержит итоговый пьедестал.
type Settlement struct {
	Podium []entity.RankedTeam
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, error) {}
func (nopRecorder) SetTeamCount(int)               {}

// Service связывает реестр, рейтинг и хранилище.
// Каждая мутация сразу сохраняется; если сохранить не удалось, мутация
// откатывается, чтобы память и слот не расходились.
type Service struct {
	mu             sync.Mutex
	store          TeamStore
	registry       *registry.Registry
	recorder       Recorder
	seed           []entity.Team
	resetOnCorrupt bool
	sinks          []chan<- Settlement
}

func NewService(store TeamStore) *Service {
	return &Service{
		store:    store,
		recorder: nopRecorder{},
		seed:     DefaultTeams(),
	}
}

func (s *Service) WithRecorder(r Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithSeed заменяет стартовый набор команд.
func (s *Service) WithSeed(teams []entity.Team) *Service {
	s.seed = teams
	return s
}

// WithResetOnCorrupt: при битом документе в слоте стартовать с набора по
// умолчанию и перезаписать слот. Без этой опции старт завершается ошибкой.
func (s *Service) WithResetOnCorrupt(reset bool) *Service {
	s.resetOnCorrupt = reset
	return s
}

// WithSettlementSink подписывает канал на итоги. Отправка неблокирующая.
func (s *Service) WithSettlementSink(ch chan<- Settlement) *Service {
	s.sinks = append(s.sinks, ch)
	return s
}

// Bootstrap загружает слот или заполняет реестр стартовым набором.
func (s *Service) Bootstrap(ctx context.Context) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.recorder.ObserveOperation(OpBootstrap, err) }()

	teams, err := s.store.Load(ctx)
	switch {
	case err == nil:
		reg, regErr := registry.New(teams...)
		if regErr == nil {
			s.setRegistry(reg)
			logger(ctx).Info("scoreboard loaded", slog.Int(logx.FieldTeamCount, reg.Len()))
			return nil
		}
		err = domain.WrapError(regErr, errcodes.CorruptedState, "stored teams are inconsistent")
	case errors.Is(err, domain.ErrNoState):
		logger(ctx).Info("slot is empty, seeding default teams")
		return s.seedLocked(ctx)
	}

	if !domain.HasCode(err, errcodes.CorruptedState) {
		return fmt.Errorf("store.Load: %w", err)
	}

	if !s.resetOnCorrupt {
		return fmt.Errorf("store.Load: %w", err)
	}

	logger(ctx).Warn("stored teams are corrupted, resetting to defaults", logx.Error(err))

	return s.seedLocked(ctx)
}

func (s *Service) seedLocked(ctx context.Context) error {
	reg, err := registry.New(s.seed...)
	if err != nil {
		return fmt.Errorf("registry.New: %w", err)
	}

	if err := s.store.Save(ctx, reg.List()); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}

	s.setRegistry(reg)

	return nil
}

func (s *Service) setRegistry(reg *registry.Registry) {
	s.registry = reg
	s.recorder.SetTeamCount(reg.Len())
}

// AddTeam добавляет команду со счётом 0.
func (s *Service) AddTeam(ctx context.Context, name string) (team entity.Team, err error) {
	err = s.mutate(ctx, OpAdd, func(reg *registry.Registry) error {
		team, err = reg.Add(name)
		return err
	})
	if err != nil {
		return entity.Team{}, err
	}

	logger(ctx).Info("team added", slog.String(logx.FieldTeam, team.Name))

	return team, nil
}

// RemoveTeam удаляет команду. Вызывается только после подтверждения.
func (s *Service) RemoveTeam(ctx context.Context, name string) error {
	err := s.mutate(ctx, OpRemove, func(reg *registry.Registry) error {
		return reg.Remove(name)
	})
	if err != nil {
		return err
	}

	logger(ctx).Info("team removed", slog.String(logx.FieldTeam, name))

	return nil
}

// AdjustScore увеличивает или уменьшает счёт (не ниже нуля).
func (s *Service) AdjustScore(ctx context.Context, name string, delta int, direction value.Direction) (team entity.Team, err error) {
	err = s.mutate(ctx, OpAdjust, func(reg *registry.Registry) error {
		team, err = reg.AdjustScore(name, delta, direction)
		return err
	})
	if err != nil {
		return entity.Team{}, err
	}

	logger(ctx).Info("score adjusted",
		slog.String(logx.FieldTeam, team.Name),
		slog.String(logx.FieldOperation, direction.String()),
		slog.Int(logx.FieldScore, team.Score),
	)

	return team, nil
}

// mutate применяет изменение к копии реестра и подменяет реестр только
// после успешного сохранения.
func (s *Service) mutate(ctx context.Context, op string, fn func(reg *registry.Registry) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.recorder.ObserveOperation(op, err) }()

	if s.registry == nil {
		return errNotBootstrapped
	}

	draft, err := registry.New(s.registry.List()...)
	if err != nil {
		return fmt.Errorf("registry.New: %w", err)
	}

	if err := fn(draft); err != nil {
		return err
	}

	if err := s.store.Save(ctx, draft.List()); err != nil {
		logger(ctx).Error("failed to save teams, change discarded", slog.String(logx.FieldOperation, op), logx.Error(err))
		return fmt.Errorf("store.Save: %w", err)
	}

	s.setRegistry(draft)

	return nil
}

// Team возвращает одну команду (выбор команды в UI).
func (s *Service) Team(_ context.Context, name string) (entity.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry == nil {
		return entity.Team{}, errNotBootstrapped
	}

	return s.registry.Get(name)
}

// Teams возвращает команды в порядке добавления.
func (s *Service) Teams(_ context.Context) ([]entity.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry == nil {
		return nil, errNotBootstrapped
	}

	return s.registry.List(), nil
}

// Ranking пересчитывает рейтинг при каждом вызове.
func (s *Service) Ranking(ctx context.Context) ([]entity.RankedTeam, error) {
	teams, err := s.Teams(ctx)
	if err != nil {
		return nil, err
	}

	return ranking.Compute(teams), nil
}

// Settlement возвращает тройку лидеров и рассылает её подписчикам.
func (s *Service) Settlement(ctx context.Context) (result Settlement, err error) {
	defer func() { s.recorder.ObserveOperation(OpSettlement, err) }()

	teams, err := s.Teams(ctx)
	if err != nil {
		return Settlement{}, err
	}

	result = Settlement{Podium: ranking.TopN(teams, ranking.SettlementSize)}

	for _, ch := range s.sinks {
		select {
		case ch <- result:
		default:
			logger(ctx).Warn("settlement sink is full, dropping")
		}
	}

	return result, nil
}

var errNotBootstrapped = domain.NewError(errcodes.InternalServerError, "scoreboard is not bootstrapped")
