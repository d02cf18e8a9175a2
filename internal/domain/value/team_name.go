package value

import (
	"strings"

	"scoreboard/internal/domain"
	"scoreboard/pkg/errcodes"
)

// NormalizeTeamName обрезает пробелы по краям и отклоняет пустое имя.
func NormalizeTeamName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.NewError(errcodes.InvalidTeamName, "team name is empty")
	}

	return name, nil
}
