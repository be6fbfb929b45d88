package sqlite

import (
	"errors"
	"fmt"

	"github.com/alvarobarcelona/PadelUp-sub000/gen/model"
	"github.com/alvarobarcelona/PadelUp-sub000/gen/table"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) CreateTournament(t domain.Tournament) (domain.Tournament, error) {
	_, err := table.Tournaments.
		INSERT(table.Tournaments.AllColumns).
		MODEL(convertTournamentFromDomain(t)).
		Exec(s.db)
	if err != nil {
		return domain.Tournament{}, err
	}
	return t, nil
}

func (s *Storage) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	var t model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		WHERE(table.Tournaments.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &t)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Tournament{}, fmt.Errorf("tournament %s: %w", id, storage.ErrNotFound)
		}
		return domain.Tournament{}, err
	}
	return convertTournamentToDomain(t)
}

func (s *Storage) AddParticipant(tournamentID uuid.UUID, p domain.Participant) error {
	_, err := table.TournamentPlayers.
		INSERT(table.TournamentPlayers.AllColumns).
		MODEL(convertParticipantFromDomain(tournamentID, p)).
		Exec(s.db)
	return err
}

func (s *Storage) ListParticipants(tournamentID uuid.UUID) ([]domain.Participant, error) {
	var participants []model.TournamentPlayers
	err := table.TournamentPlayers.
		SELECT(table.TournamentPlayers.AllColumns).
		FROM(table.TournamentPlayers).
		WHERE(table.TournamentPlayers.TournamentID.EQ(sqlite.String(tournamentID.String()))).
		ORDER_BY(table.TournamentPlayers.DisplayName.ASC()).
		Query(s.db, &participants)
	if err != nil {
		return nil, err
	}
	return convertParticipantsToDomain(participants)
}

func (s *Storage) UpdateParticipants(tournamentID uuid.UUID, ps []domain.Participant) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, p := range ps {
		res, err := table.TournamentPlayers.
			UPDATE(
				table.TournamentPlayers.Score,
				table.TournamentPlayers.MatchesPlayed,
				table.TournamentPlayers.Active,
			).
			SET(
				sqlite.Int(int64(p.Score)),
				sqlite.Int(int64(p.MatchesPlayed)),
				sqlite.Bool(p.Active),
			).
			WHERE(
				table.TournamentPlayers.TournamentID.EQ(sqlite.String(tournamentID.String())).
					AND(table.TournamentPlayers.DisplayName.EQ(sqlite.String(p.Player.Name))),
			).
			Exec(tx)
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
	}
	return tx.Commit()
}

func (s *Storage) ListTournamentMatches(tournamentID uuid.UUID) ([]domain.Match, error) {
	var matches []model.TournamentMatches
	err := table.TournamentMatches.
		SELECT(table.TournamentMatches.AllColumns).
		FROM(table.TournamentMatches).
		WHERE(table.TournamentMatches.TournamentID.EQ(sqlite.String(tournamentID.String()))).
		ORDER_BY(table.TournamentMatches.RoundNumber.ASC(), table.TournamentMatches.CourtNumber.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertTournamentMatchesToDomain(matches)
}

func (s *Storage) CreateTournamentMatches(matches []domain.Match) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, m := range matches {
		_, err := table.TournamentMatches.
			INSERT(table.TournamentMatches.AllColumns).
			MODEL(convertTournamentMatchFromDomain(m)).
			Exec(tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Storage) CompleteTournamentMatch(m domain.Match) error {
	res, err := table.TournamentMatches.
		UPDATE(
			table.TournamentMatches.ScoreTeam1,
			table.TournamentMatches.ScoreTeam2,
			table.TournamentMatches.Completed,
		).
		SET(
			sqlite.Int(int64(m.ScoreTeam1)),
			sqlite.Int(int64(m.ScoreTeam2)),
			sqlite.Bool(true),
		).
		WHERE(table.TournamentMatches.ID.EQ(sqlite.String(m.ID.String()))).
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
