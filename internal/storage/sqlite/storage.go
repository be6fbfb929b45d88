package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alvarobarcelona/PadelUp-sub000/gen/model"
	"github.com/alvarobarcelona/PadelUp-sub000/gen/table"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	migrate "github.com/alvarobarcelona/PadelUp-sub000/internal/migrate"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.TournamentStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	db, err := sql.Open("sqlite3", "file:"+fileName+"?cache=shared&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = migrate.Up(db)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log := l.WithField("from", "storage")
	log.Info("storage connected")
	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.CreatedAt.ASC()).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) Add(player domain.Player) (domain.Player, error) {
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		Exec(s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) ApplyRatings(updates map[uuid.UUID]storage.RatingUpdate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for id, update := range updates {
		res, err := table.Players.
			UPDATE(table.Players.Rating, table.Players.GamesPlayed).
			SET(sqlite.Int(int64(update.Rating)), sqlite.Int(int64(update.GamesPlayed))).
			WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
			Exec(tx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n != 1 {
			return fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
		}
	}
	return tx.Commit()
}

func (s *Storage) ImportPlayers(players []domain.Player) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, player := range players {
		_, err := table.Players.
			INSERT(table.Players.AllColumns).
			MODEL(convertPlayerFromDomain(player)).
			ON_CONFLICT(table.Players.ID).
			DO_UPDATE(sqlite.SET(
				table.Players.Rating.SET(sqlite.Int(int64(player.EloRating))),
				table.Players.GamesPlayed.SET(sqlite.Int(int64(player.GamesPlayed))),
			)).
			Exec(tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Storage) ListMatches() ([]domain.MatchRecord, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.CreatedAt.ASC(), table.Matches.ID.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) GetMatch(id uuid.UUID) (domain.MatchRecord, error) {
	var match model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &match)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.MatchRecord{}, fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
		}
		return domain.MatchRecord{}, err
	}
	return convertMatchToDomain(match)
}

func (s *Storage) CreateMatch(match domain.MatchRecord) (domain.MatchRecord, error) {
	m, err := convertMatchFromDomain(match)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	_, err = table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(m).
		Exec(s.db)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	return match, nil
}

func (s *Storage) SetMatchStatus(id uuid.UUID, status domain.MatchStatus) error {
	res, err := table.Matches.
		UPDATE(table.Matches.Status).
		SET(sqlite.String(string(status))).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		Exec(s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteMatch(id uuid.UUID) error {
	res, err := table.Matches.
		DELETE().
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		Exec(s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) ImportMatches(matches []domain.MatchRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, match := range matches {
		m, err := convertMatchFromDomain(match)
		if err != nil {
			return err
		}
		_, err = table.Matches.
			INSERT(table.Matches.AllColumns).
			MODEL(m).
			ON_CONFLICT(table.Matches.ID).
			DO_NOTHING().
			Exec(tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
