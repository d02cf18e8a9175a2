package view

const StartMessage = `🏆 <b>Табло команд</b>

/board — рейтинг
/teams — выбрать команду
/add <code>название</code> — добавить команду
/plus <code>N</code> — начислить очки выбранной команде
/minus <code>N</code> — снять очки (не ниже нуля)
/remove — удалить выбранную команду
/settle — подвести итоги`

const (
	BoardEmpty      = "📋 Команд пока нет. Добавьте первую: /add <code>название</code>"
	TeamsPrompt     = "👇 Выберите команду:"
	NoTeamSelected  = "⚠️ Сначала выберите команду: /teams"
	SelectionGone   = "⌛ Кнопка устарела, откройте /teams заново"
	RemoveCancelled = "↩️ Удаление отменено"

	AddUsage   = "❌ Использование: /add <code>название</code>"
	AddTooLong = "❌ Название длиннее %d символов"
	DeltaUsage = "❌ Использование: /%s <code>N</code>, где N — целое от 1 до 1000000"

	TeamAdded    = "✅ Команда <b>%s</b> добавлена"
	TeamRemoved  = "🗑 Команда <b>%s</b> удалена"
	ScoreRaised  = "⬆️ <b>%s</b>: +%d → %d очк."
	ScoreLowered = "⬇️ <b>%s</b>: −%d → %d очк."

	RemoveConfirm = "❓ Удалить команду <b>%s</b>?"
	ButtonYes     = "✅ Да, удалить"
	ButtonNo      = "❌ Отмена"

	SettlementBanner = "🎉🎊 <b>Итоги соревнования</b> 🎊🎉"
	SettlementEmpty  = "🤷 Некого награждать: команд нет"

	ErrInvalidName   = "❌ Введите название команды"
	ErrDuplicateName = "⚠️ Команда с таким названием уже есть"
	ErrTeamNotFound  = "⚠️ Такой команды больше нет, откройте /teams"
	ErrInvalidDelta  = "❌ Введите корректное количество очков"
	ErrStorage       = "💾 Не удалось сохранить изменения, попробуйте позже"
	ErrInternal      = "🔥 Что-то пошло не так"
)
