// Package ranking строит рейтинг команд по счёту. Состояния нет: всё
// пересчитывается после каждой мутации реестра.
package ranking

import (
	"cmp"
	"slices"

	"scoreboard/internal/domain/entity"
)

// SettlementSize: сколько мест показывает итоговый пьедестал.
const SettlementSize = 3

// Compute сортирует команды по убыванию счёта. Сортировка стабильная:
// при равном счёте раньше идёт команда, добавленная раньше.
func Compute(teams []entity.Team) []entity.RankedTeam {
	sorted := slices.Clone(teams)
	slices.SortStableFunc(sorted, func(a, b entity.Team) int {
		return cmp.Compare(b.Score, a.Score)
	})

	result := make([]entity.RankedTeam, 0, len(sorted))
	for i, team := range sorted {
		rank := i + 1
		result = append(result, entity.RankedTeam{
			Rank: rank,
			Team: team,
			Tier: TierFor(rank),
		})
	}

	return result
}

// TopN возвращает первые n мест или всех, если команд меньше.
func TopN(teams []entity.Team, n int) []entity.RankedTeam {
	if n <= 0 {
		return []entity.RankedTeam{}
	}

	ranked := Compute(teams)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// TierFor сопоставляет место и оформление.
func TierFor(rank int) entity.Tier {
	switch rank {
	case 1:
		return entity.TierFirst
	case 2:
		return entity.TierSecond
	case 3:
		return entity.TierThird
	default:
		return entity.TierDefault
	}
}
