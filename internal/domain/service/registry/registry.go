package registry

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/value"
	"scoreboard/pkg/errcodes"
)

// Registry единолично владеет списком команд и их счётом.
// Команды идут в порядке добавления, место в рейтинге вычисляется отдельно.
// Registry не потокобезопасен, синхронизация на стороне вызывающего.
type Registry struct {
	teams []entity.Team
}

// New собирает реестр из сохранённых или стартовых записей.
// Имена принимаются только в нормализованном виде, без повторной обрезки.
func New(teams ...entity.Team) (*Registry, error) {
	r := &Registry{teams: make([]entity.Team, 0, len(teams))}

	for _, team := range teams {
		if name, err := value.NormalizeTeamName(team.Name); err == nil && name != team.Name {
			return nil, domain.NewError(errcodes.InvalidTeamName, fmt.Sprintf("team name %q is not trimmed", team.Name))
		}

		if _, err := r.Add(team.Name); err != nil {
			return nil, fmt.Errorf("add %q: %w", team.Name, err)
		}

		r.teams[len(r.teams)-1].Score = max(0, team.Score)
	}

	return r, nil
}

// Add добавляет команду с нулевым счётом в конец списка.
func (r *Registry) Add(rawName string) (entity.Team, error) {
	name, err := value.NormalizeTeamName(rawName)
	if err != nil {
		return entity.Team{}, err
	}

	if r.has(name) {
		return entity.Team{}, domain.NewError(errcodes.TeamNameAlreadyInUse, "team "+name+" already exists")
	}

	team := entity.Team{Name: name}
	r.teams = append(r.teams, team)

	return team, nil
}

// Remove удаляет команду. Подтверждение остаётся на стороне UI.
func (r *Registry) Remove(name string) error {
	idx := r.indexOf(name)
	if idx < 0 {
		return notFound(name)
	}

	r.teams = slices.Delete(r.teams, idx, idx+1)

	return nil
}

// AdjustScore меняет счёт на delta. При уменьшении счёт не опускается ниже нуля.
func (r *Registry) AdjustScore(name string, delta int, direction value.Direction) (entity.Team, error) {
	idx := r.indexOf(name)
	if idx < 0 {
		return entity.Team{}, notFound(name)
	}

	if delta <= 0 {
		return entity.Team{}, domain.NewError(errcodes.InvalidScoreDelta, fmt.Sprintf("score delta must be positive, got %d", delta))
	}

	team := &r.teams[idx]

	switch direction {
	case value.Increase:
		if delta > math.MaxInt-team.Score {
			return entity.Team{}, domain.NewError(errcodes.InvalidScoreDelta, fmt.Sprintf("score delta %d overflows score %d", delta, team.Score))
		}

		team.Score += delta
	case value.Decrease:
		team.Score = max(0, team.Score-delta)
	default:
		return entity.Team{}, domain.NewError(errcodes.InvalidDirection, "unknown score direction "+direction.String())
	}

	return *team, nil
}

// Get возвращает команду по точному имени.
func (r *Registry) Get(name string) (entity.Team, error) {
	team, ok := lo.Find(r.teams, func(t entity.Team) bool { return t.Name == name })
	if !ok {
		return entity.Team{}, notFound(name)
	}

	return team, nil
}

// List возвращает копию списка в порядке добавления.
func (r *Registry) List() []entity.Team {
	return slices.Clone(r.teams)
}

func (r *Registry) Len() int {
	return len(r.teams)
}

func (r *Registry) has(name string) bool {
	return lo.ContainsBy(r.teams, func(t entity.Team) bool { return t.Name == name })
}

func (r *Registry) indexOf(name string) int {
	_, idx, ok := lo.FindIndexOf(r.teams, func(t entity.Team) bool { return t.Name == name })
	if !ok {
		return -1
	}

	return idx
}

func notFound(name string) error {
	return domain.NewError(errcodes.TeamNotFound, "team "+name+" not found")
}
