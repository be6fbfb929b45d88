package storage

import (
	"errors"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// RatingUpdate is one player's post-commit state.
type RatingUpdate struct {
	Rating      int
	GamesPlayed int
}

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(uuid.UUID) (domain.Player, error)
	Add(domain.Player) (domain.Player, error)
	// ApplyRatings writes new ratings and games-played counts for all
	// given players in one transaction: confirming or reversing a match
	// moves four ratings as a unit or not at all.
	ApplyRatings(map[uuid.UUID]RatingUpdate) error

	ImportPlayers([]domain.Player) error
}

type MatchStorage interface {
	// ListMatches returns all ladder records oldest first.
	ListMatches() ([]domain.MatchRecord, error)
	GetMatch(uuid.UUID) (domain.MatchRecord, error)
	CreateMatch(domain.MatchRecord) (domain.MatchRecord, error)
	SetMatchStatus(id uuid.UUID, status domain.MatchStatus) error
	DeleteMatch(uuid.UUID) error

	ImportMatches([]domain.MatchRecord) error
}

type TournamentStorage interface {
	CreateTournament(domain.Tournament) (domain.Tournament, error)
	GetTournament(uuid.UUID) (domain.Tournament, error)
	AddParticipant(tournamentID uuid.UUID, p domain.Participant) error
	ListParticipants(tournamentID uuid.UUID) ([]domain.Participant, error)
	// UpdateParticipants overwrites score/matches-played/active for the
	// given roster entries in one transaction.
	UpdateParticipants(tournamentID uuid.UUID, ps []domain.Participant) error
	// ListTournamentMatches returns a tournament's matches ordered by
	// round then court.
	ListTournamentMatches(tournamentID uuid.UUID) ([]domain.Match, error)
	CreateTournamentMatches(matches []domain.Match) error
	CompleteTournamentMatch(m domain.Match) error
}
