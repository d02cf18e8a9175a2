package persistence

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/pkg/errcodes"
	"scoreboard/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// DefaultSlot хранит весь список команд одним документом.
const DefaultSlot = "scoreLeaderboardTeams"

// ErrSlotEmpty: слот ещё ни разу не сохраняли (первый запуск).
var ErrSlotEmpty = domain.ErrNoState

// teamSchema описывает запись документа слота: {"name": ..., "score": ...}.
type teamSchema struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// slotSchema соответствует строке таблицы kv_slots.
type slotSchema struct {
	Slot      string    `db:"slot"`
	Document  string    `db:"document"`
	UpdatedAt time.Time `db:"updated_at"`
}

func fromTeam(t entity.Team) teamSchema {
	return teamSchema{Name: t.Name, Score: t.Score}
}

func (s teamSchema) toDomain() (entity.Team, error) {
	if s.Name == "" {
		return entity.Team{}, domain.NewError(errcodes.CorruptedState, "stored team has no name")
	}

	return entity.Team{Name: s.Name, Score: s.Score}, nil
}

// encodeTeams сериализует весь список целиком, порядок сохраняется.
func encodeTeams(teams []entity.Team) ([]byte, error) {
	doc, err := json.Marshal(lo.Map(teams, func(t entity.Team, _ int) teamSchema { return fromTeam(t) }))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to encode teams")
	}

	return doc, nil
}

// decodeTeams разбирает документ слота. На битый документ отдаёт CorruptedState.
func decodeTeams(doc []byte) ([]entity.Team, error) {
	var schemas []teamSchema
	if err := json.Unmarshal(doc, &schemas); err != nil {
		return nil, domain.WrapError(err, errcodes.CorruptedState, "failed to decode stored teams")
	}

	teams, err := lox.MapErr(schemas, teamSchema.toDomain)
	if err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []entity.Team{}
	}

	return teams, nil
}
