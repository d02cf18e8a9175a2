package session

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"
)

// Action описывает, что сделать с командой по нажатию кнопки.
type Action string

const (
	ActionSelect        Action = "select"
	ActionConfirmRemove Action = "confirm-remove"
	ActionCancelRemove  Action = "cancel-remove"
)

// Intent привязан к одноразовому токену в callback data.
type Intent struct {
	Action Action
	ChatID int64
	Team   string
}

// Store хранит выбранную команду по чату и намерения по токенам.
// Записи живут ttl, потом кнопки просто перестают работать.
type Store struct {
	selected *cache.Cache
	intents  *cache.Cache
}

func New(ttl time.Duration) *Store {
	return &Store{
		selected: cache.New(ttl, 2*ttl),
		intents:  cache.New(ttl, 2*ttl),
	}
}

func (s *Store) Select(chatID int64, team string) {
	s.selected.SetDefault(chatKey(chatID), team)
}

// Selected возвращает выбранную в чате команду.
func (s *Store) Selected(chatID int64) (string, bool) {
	v, ok := s.selected.Get(chatKey(chatID))
	if !ok {
		return "", false
	}

	team, ok := v.(string)

	return team, ok
}

func (s *Store) Deselect(chatID int64) {
	s.selected.Delete(chatKey(chatID))
}

// Issue выдаёт токен для кнопки. Токен короче лимита callback data в 64 байта.
func (s *Store) Issue(intent Intent) string {
	token := xid.New().String()
	s.intents.SetDefault(token, intent)

	return token
}

// Resolve возвращает намерение по токену, не удаляя его.
func (s *Store) Resolve(token string) (Intent, bool) {
	v, ok := s.intents.Get(token)
	if !ok {
		return Intent{}, false
	}

	intent, ok := v.(Intent)

	return intent, ok
}

// Consume возвращает намерение и гасит токен: подтверждение срабатывает один раз.
func (s *Store) Consume(token string) (Intent, bool) {
	intent, ok := s.Resolve(token)
	if ok {
		s.intents.Delete(token)
	}

	return intent, ok
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
