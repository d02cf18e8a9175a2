// Package view рендерит ответы бота: HTML-текст и инлайн-клавиатуры.
package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/value"
	"scoreboard/pkg/errcodes"
)

// Reply содержит HTML-текст ответа и необязательную клавиатуру.
type Reply struct {
	Text     string
	Keyboard *telego.InlineKeyboardMarkup
}

func Text(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...)}
}

// Button хранит подпись и callback data одной кнопки.
type Button struct {
	Label string
	Data  string
}

// Medal возвращает значок места для первой тройки.
func Medal(tier entity.Tier) string {
	switch tier {
	case entity.TierFirst:
		return "🥇"
	case entity.TierSecond:
		return "🥈"
	case entity.TierThird:
		return "🥉"
	default:
		return ""
	}
}

// Board рендерит рейтинг целиком.
func Board(ranked []entity.RankedTeam) Reply {
	if len(ranked) == 0 {
		return Reply{Text: BoardEmpty}
	}

	var sb strings.Builder

	sb.WriteString("🏆 <b>Рейтинг</b>\n\n")

	for _, rt := range ranked {
		sb.WriteString(rankLine(rt))
		sb.WriteByte('\n')
	}

	return Reply{Text: sb.String()}
}

// TeamCard рендерит карточку выбранной команды.
func TeamCard(team entity.Team) Reply {
	return Reply{Text: fmt.Sprintf("📌 <b>%s</b>\nТекущий счёт: %d очк.", escape(team.Name), team.Score)}
}

// TeamsKeyboard выводит по одной кнопке на строку.
func TeamsKeyboard(buttons []Button) Reply {
	if len(buttons) == 0 {
		return Reply{Text: BoardEmpty}
	}

	rows := make([][]telego.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(b.Label).WithCallbackData(b.Data),
		))
	}

	return Reply{Text: TeamsPrompt, Keyboard: tu.InlineKeyboard(rows...)}
}

// TeamLabel нужна только для показа, обратно не разбирается.
func TeamLabel(team entity.Team) string {
	return fmt.Sprintf("%s (%d)", team.Name, team.Score)
}

// ConfirmRemoval спрашивает подтверждение удаления.
func ConfirmRemoval(team string, yesData, noData string) Reply {
	return Reply{
		Text: fmt.Sprintf(RemoveConfirm, escape(team)),
		Keyboard: tu.InlineKeyboard(tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(ButtonYes).WithCallbackData(yesData),
			tu.InlineKeyboardButton(ButtonNo).WithCallbackData(noData),
		)),
	}
}

func Added(team entity.Team) Reply {
	return Text(TeamAdded, escape(team.Name))
}

func Removed(team string) Reply {
	return Text(TeamRemoved, escape(team))
}

func Adjusted(team entity.Team, delta int, direction value.Direction) Reply {
	if direction == value.Decrease {
		return Text(ScoreLowered, escape(team.Name), delta, team.Score)
	}

	return Text(ScoreRaised, escape(team.Name), delta, team.Score)
}

// Settlement рендерит пьедестал с праздничным баннером.
func Settlement(podium []entity.RankedTeam) Reply {
	if len(podium) == 0 {
		return Reply{Text: SettlementEmpty}
	}

	var sb strings.Builder

	sb.WriteString(SettlementBanner)
	sb.WriteString("\n\n")

	for _, rt := range podium {
		sb.WriteString(rankLine(rt))
		sb.WriteByte('\n')
	}

	return Reply{Text: sb.String()}
}

// Error переводит ошибку в сообщение для оператора.
func Error(err error) string {
	code, ok := domain.GetCode(err)
	if !ok {
		return ErrInternal
	}

	switch code {
	case errcodes.InvalidTeamName:
		return ErrInvalidName
	case errcodes.TeamNameAlreadyInUse:
		return ErrDuplicateName
	case errcodes.TeamNotFound, errcodes.NotFound:
		return ErrTeamNotFound
	case errcodes.InvalidScoreDelta, errcodes.InvalidDirection, errcodes.ValidationError:
		return ErrInvalidDelta
	case errcodes.StorageUnavailable, errcodes.CorruptedState:
		return ErrStorage
	default:
		return ErrInternal
	}
}

func rankLine(rt entity.RankedTeam) string {
	marker := Medal(rt.Tier)
	if marker == "" {
		marker = fmt.Sprintf("%d.", rt.Rank)
	}

	name := escape(rt.Team.Name)
	if rt.Tier != entity.TierDefault {
		name = "<b>" + name + "</b>"
	}

	return fmt.Sprintf("%s %s — %d очк.", marker, name, rt.Team.Score)
}

func escape(s string) string {
	return html.EscapeString(s)
}
