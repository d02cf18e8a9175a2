package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/pkg/errcodes"
)

// PostgresStore хранит документ слота в строке таблицы kv_slots.
type PostgresStore struct {
	db   *sqlx.DB
	slot string
}

func NewPostgresStore(db *sqlx.DB, slot string) *PostgresStore {
	if slot == "" {
		slot = DefaultSlot
	}

	return &PostgresStore{db: db, slot: slot}
}

// withTx выполняет функцию в транзакции.
func (s *PostgresStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "failed to commit")
	}

	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]entity.Team, error) {
	query := `SELECT document FROM kv_slots WHERE slot = $1`

	var doc []byte
	if err := s.db.GetContext(ctx, &doc, query, s.slot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "failed to read slot")
	}

	return decodeTeams(doc)
}

// Save делает upsert всего документа.
func (s *PostgresStore) Save(ctx context.Context, teams []entity.Team) error {
	doc, err := encodeTeams(teams)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO kv_slots (slot, document, updated_at)
			VALUES (:slot, :document, :updated_at)
			ON CONFLICT (slot) DO UPDATE SET
				document = EXCLUDED.document,
				updated_at = EXCLUDED.updated_at`

		schema := slotSchema{
			Slot:      s.slot,
			Document:  string(doc),
			UpdatedAt: time.Now(),
		}

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.StorageUnavailable, "failed to write slot")
		}
		return nil
	})
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "postgres ping failed")
	}

	return nil
}
