package service

import (
	"fmt"
	"io"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// In-memory storage fakes for service tests.

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type memPlayerStorage struct {
	players map[uuid.UUID]domain.Player
	order   []uuid.UUID
}

var _ storage.PlayerStorage = (*memPlayerStorage)(nil)

func newMemPlayerStorage() *memPlayerStorage {
	return &memPlayerStorage{players: make(map[uuid.UUID]domain.Player)}
}

func (s *memPlayerStorage) ListPlayers() ([]domain.Player, error) {
	out := make([]domain.Player, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.players[id])
	}
	return out, nil
}

func (s *memPlayerStorage) Get(id uuid.UUID) (domain.Player, error) {
	p, ok := s.players[id]
	if !ok {
		return domain.Player{}, fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
	}
	return p, nil
}

func (s *memPlayerStorage) Add(p domain.Player) (domain.Player, error) {
	s.players[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *memPlayerStorage) ApplyRatings(updates map[uuid.UUID]storage.RatingUpdate) error {
	for id := range updates {
		if _, ok := s.players[id]; !ok {
			return fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
		}
	}
	for id, u := range updates {
		p := s.players[id]
		p.EloRating = u.Rating
		p.GamesPlayed = u.GamesPlayed
		s.players[id] = p
	}
	return nil
}

func (s *memPlayerStorage) ImportPlayers(players []domain.Player) error {
	for _, p := range players {
		if _, ok := s.players[p.ID]; !ok {
			s.order = append(s.order, p.ID)
		}
		s.players[p.ID] = p
	}
	return nil
}

type memMatchStorage struct {
	matches []domain.MatchRecord
}

var _ storage.MatchStorage = (*memMatchStorage)(nil)

func (s *memMatchStorage) ListMatches() ([]domain.MatchRecord, error) {
	out := make([]domain.MatchRecord, len(s.matches))
	copy(out, s.matches)
	return out, nil
}

func (s *memMatchStorage) GetMatch(id uuid.UUID) (domain.MatchRecord, error) {
	for _, m := range s.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.MatchRecord{}, fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
}

func (s *memMatchStorage) CreateMatch(m domain.MatchRecord) (domain.MatchRecord, error) {
	s.matches = append(s.matches, m)
	return m, nil
}

func (s *memMatchStorage) SetMatchStatus(id uuid.UUID, status domain.MatchStatus) error {
	for i := range s.matches {
		if s.matches[i].ID == id {
			s.matches[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
}

func (s *memMatchStorage) DeleteMatch(id uuid.UUID) error {
	for i := range s.matches {
		if s.matches[i].ID == id {
			s.matches = append(s.matches[:i], s.matches[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
}

func (s *memMatchStorage) ImportMatches(matches []domain.MatchRecord) error {
	for _, m := range matches {
		_ = s.DeleteMatch(m.ID)
		s.matches = append(s.matches, m)
	}
	return nil
}

type memTournamentStorage struct {
	tournaments  map[uuid.UUID]domain.Tournament
	participants map[uuid.UUID][]domain.Participant
	matches      map[uuid.UUID][]domain.Match
}

var _ storage.TournamentStorage = (*memTournamentStorage)(nil)

func newMemTournamentStorage() *memTournamentStorage {
	return &memTournamentStorage{
		tournaments:  make(map[uuid.UUID]domain.Tournament),
		participants: make(map[uuid.UUID][]domain.Participant),
		matches:      make(map[uuid.UUID][]domain.Match),
	}
}

func (s *memTournamentStorage) CreateTournament(t domain.Tournament) (domain.Tournament, error) {
	s.tournaments[t.ID] = t
	return t, nil
}

func (s *memTournamentStorage) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	t, ok := s.tournaments[id]
	if !ok {
		return domain.Tournament{}, fmt.Errorf("tournament %s: %w", id, storage.ErrNotFound)
	}
	return t, nil
}

func (s *memTournamentStorage) AddParticipant(tournamentID uuid.UUID, p domain.Participant) error {
	s.participants[tournamentID] = append(s.participants[tournamentID], p)
	return nil
}

func (s *memTournamentStorage) ListParticipants(tournamentID uuid.UUID) ([]domain.Participant, error) {
	out := make([]domain.Participant, len(s.participants[tournamentID]))
	copy(out, s.participants[tournamentID])
	return out, nil
}

func (s *memTournamentStorage) UpdateParticipants(tournamentID uuid.UUID, ps []domain.Participant) error {
	roster := s.participants[tournamentID]
	for _, p := range ps {
		found := false
		for i := range roster {
			if roster[i].Player.Key() == p.Player.Key() {
				roster[i] = p
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("participant %q: %w", p.Player.Name, storage.ErrNotFound)
		}
	}
	return nil
}

func (s *memTournamentStorage) ListTournamentMatches(tournamentID uuid.UUID) ([]domain.Match, error) {
	out := make([]domain.Match, len(s.matches[tournamentID]))
	copy(out, s.matches[tournamentID])
	return out, nil
}

func (s *memTournamentStorage) CreateTournamentMatches(matches []domain.Match) error {
	for _, m := range matches {
		s.matches[m.TournamentID] = append(s.matches[m.TournamentID], m)
	}
	return nil
}

func (s *memTournamentStorage) CompleteTournamentMatch(m domain.Match) error {
	for i, existing := range s.matches[m.TournamentID] {
		if existing.ID == m.ID {
			s.matches[m.TournamentID][i] = m
			return nil
		}
	}
	return fmt.Errorf("match %s: %w", m.ID, storage.ErrNotFound)
}
