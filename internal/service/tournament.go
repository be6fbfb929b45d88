package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/pairing"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrCannotGenerate    = errors.New("cannot generate round for current roster")
	ErrCycleComplete     = errors.New("tournament cycle is complete")
	ErrDuplicatePlayer   = errors.New("player already in tournament")
	ErrMatchesIncomplete = errors.New("current round has unscored matches")
)

// TournamentService runs social tournaments: roster management, round
// generation via the format's pairing strategy, additive scoring and
// cycle detection. Tournament scores never touch ladder ratings.
type TournamentService struct {
	storage    storage.TournamentStorage
	strategies map[domain.Format]pairing.Strategy
	log        *logrus.Entry
}

func NewTournamentService(ts storage.TournamentStorage, l *logrus.Logger) *TournamentService {
	return &TournamentService{
		storage: ts,
		strategies: map[domain.Format]pairing.Strategy{
			domain.FormatAmericano: pairing.Americano{},
			domain.FormatMexicano:  pairing.NewMexicano(nil),
		},
		log: l.WithField("from", "tournament-service"),
	}
}

func (s *TournamentService) Create(name string, format domain.Format, pointsPerMatch int) (domain.Tournament, error) {
	if name == "" {
		return domain.Tournament{}, errors.New("empty tournament name")
	}
	if !format.Valid() {
		return domain.Tournament{}, fmt.Errorf("unknown format %q", format)
	}
	if pointsPerMatch <= 0 {
		pointsPerMatch = domain.DefaultPointsPerMatch
	}
	t := domain.Tournament{
		ID:             uuid.New(),
		Name:           name,
		Format:         format,
		PointsPerMatch: pointsPerMatch,
		CreatedAt:      time.Now(),
	}
	return s.storage.CreateTournament(t)
}

func (s *TournamentService) Get(id uuid.UUID) (domain.Tournament, error) {
	return s.storage.GetTournament(id)
}

// AddPlayer registers a roster entry. Names are unique within a
// tournament after normalization, so "Ana" and "ana " are the same
// participant.
func (s *TournamentService) AddPlayer(tournamentID uuid.UUID, player domain.PlayerRef) error {
	if player.Name == "" {
		return errors.New("empty player name")
	}
	roster, err := s.storage.ListParticipants(tournamentID)
	if err != nil {
		return err
	}
	for _, p := range roster {
		if p.Player.Key() == player.Key() {
			return fmt.Errorf("%q: %w", player.Name, ErrDuplicatePlayer)
		}
	}
	return s.storage.AddParticipant(tournamentID, domain.Participant{
		Player: player,
		Active: true,
	})
}

func (s *TournamentService) SetPlayerActive(tournamentID uuid.UUID, player domain.PlayerRef, active bool) error {
	roster, err := s.storage.ListParticipants(tournamentID)
	if err != nil {
		return err
	}
	for _, p := range roster {
		if p.Player.Key() == player.Key() {
			p.Active = active
			return s.storage.UpdateParticipants(tournamentID, []domain.Participant{p})
		}
	}
	return fmt.Errorf("participant %q: %w", player.Name, storage.ErrNotFound)
}

func (s *TournamentService) Roster(tournamentID uuid.UUID) ([]domain.Participant, error) {
	return s.storage.ListParticipants(tournamentID)
}

// Standings returns the roster sorted by score descending. Ties keep
// roster insertion order.
func (s *TournamentService) Standings(tournamentID uuid.UUID) ([]domain.Participant, error) {
	roster, err := s.storage.ListParticipants(tournamentID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Score > roster[j].Score
	})
	return roster, nil
}

func (s *TournamentService) Matches(tournamentID uuid.UUID) ([]domain.Match, error) {
	return s.storage.ListTournamentMatches(tournamentID)
}

// GenerateNextRound produces and persists the next round of matches.
// The round number is derived from stored history, so the caller never
// tracks it. Fails if the previous round still has unscored matches, if
// the cycle is already complete, or if the active roster does not fit
// the format.
func (s *TournamentService) GenerateNextRound(tournamentID uuid.UUID) ([]domain.Match, error) {
	t, err := s.storage.GetTournament(tournamentID)
	if err != nil {
		return nil, err
	}
	roster, err := s.storage.ListParticipants(tournamentID)
	if err != nil {
		return nil, err
	}
	history, err := s.storage.ListTournamentMatches(tournamentID)
	if err != nil {
		return nil, err
	}
	round := 0
	for _, m := range history {
		if !m.Completed {
			return nil, fmt.Errorf("round %d: %w", m.Round, ErrMatchesIncomplete)
		}
		if m.Round > round {
			round = m.Round
		}
	}
	if pairing.CycleComplete(t.Format, roster, round, history) {
		return nil, ErrCycleComplete
	}
	strategy, ok := s.strategies[t.Format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", t.Format)
	}
	matches := strategy.GenerateRound(round+1, roster, history)
	if len(matches) == 0 {
		return nil, ErrCannotGenerate
	}
	for i := range matches {
		matches[i].ID = uuid.New()
		matches[i].TournamentID = tournamentID
	}
	if err := s.storage.CreateTournamentMatches(matches); err != nil {
		return nil, err
	}
	s.log.WithField("tournament", t.Name).Infof("generated round %d, %d matches", round+1, len(matches))
	return matches, nil
}

// RecordResult scores a generated match. Every player on a team earns
// that team's points, added to their running total.
func (s *TournamentService) RecordResult(tournamentID, matchID uuid.UUID, scoreTeam1, scoreTeam2 int) error {
	if scoreTeam1 < 0 || scoreTeam2 < 0 {
		return fmt.Errorf("%w: negative score", domain.ErrInvalidMatch)
	}
	t, err := s.storage.GetTournament(tournamentID)
	if err != nil {
		return err
	}
	history, err := s.storage.ListTournamentMatches(tournamentID)
	if err != nil {
		return err
	}
	var match domain.Match
	found := false
	for _, m := range history {
		if m.ID == matchID {
			match = m
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("match %s: %w", matchID, storage.ErrNotFound)
	}
	if match.Completed {
		return fmt.Errorf("match %s: %w", matchID, ErrBadStatus)
	}
	if scoreTeam1+scoreTeam2 != t.PointsPerMatch {
		s.log.WithField("tournament", t.Name).
			Warnf("match %s scored %d+%d, expected %d total",
				matchID, scoreTeam1, scoreTeam2, t.PointsPerMatch)
	}
	match.ScoreTeam1 = scoreTeam1
	match.ScoreTeam2 = scoreTeam2
	match.Completed = true
	if err := s.storage.CompleteTournamentMatch(match); err != nil {
		return err
	}
	roster, err := s.storage.ListParticipants(tournamentID)
	if err != nil {
		return err
	}
	points := map[string]int{
		match.Team1[0].Key(): scoreTeam1,
		match.Team1[1].Key(): scoreTeam1,
		match.Team2[0].Key(): scoreTeam2,
		match.Team2[1].Key(): scoreTeam2,
	}
	updated := make([]domain.Participant, 0, 4)
	for _, p := range roster {
		pts, ok := points[p.Player.Key()]
		if !ok {
			continue
		}
		p.Score += pts
		p.MatchesPlayed++
		updated = append(updated, p)
	}
	return s.storage.UpdateParticipants(tournamentID, updated)
}

// CycleComplete reports whether the tournament's fairness cycle is done
// for the current roster.
func (s *TournamentService) CycleComplete(tournamentID uuid.UUID) (bool, error) {
	t, err := s.storage.GetTournament(tournamentID)
	if err != nil {
		return false, err
	}
	roster, err := s.storage.ListParticipants(tournamentID)
	if err != nil {
		return false, err
	}
	history, err := s.storage.ListTournamentMatches(tournamentID)
	if err != nil {
		return false, err
	}
	round := 0
	for _, m := range history {
		if m.Round > round {
			round = m.Round
		}
	}
	return pairing.CycleComplete(t.Format, roster, round, history), nil
}
