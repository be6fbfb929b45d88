package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/cache/mem"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/elo"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNameTaken = errors.New("player name already taken")
	ErrBadStatus = errors.New("invalid match status transition")
)

// PlayerService owns the rated ladder: players, pending/confirmed match
// records and the commit/reversal protocol around stored ratings.
type PlayerService struct {
	playerStorage storage.PlayerStorage
	matchStorage  storage.MatchStorage
	cache         *mem.Cache
	log           *logrus.Entry
}

func New(playerStorage storage.PlayerStorage, matchStorage storage.MatchStorage, l *logrus.Logger) (*PlayerService, error) {
	s := PlayerService{
		playerStorage: playerStorage,
		matchStorage:  matchStorage,
		cache:         mem.New(),
		log:           l.WithField("from", "player-service"),
	}
	if err := s.reloadCache(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *PlayerService) reloadCache() error {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return err
	}
	s.cache.Update(players)
	return nil
}

func (s *PlayerService) CreatePlayer(name string) (domain.Player, error) {
	if name == "" {
		return domain.Player{}, errors.New("empty player name")
	}
	if _, ok := s.cache.GetPlayerByName(name); ok {
		return domain.Player{}, fmt.Errorf("%q: %w", name, ErrNameTaken)
	}
	player := domain.Player{
		ID:           uuid.New(),
		Name:         name,
		RegisteredAt: time.Now(),
		EloRating:    elo.InitialRating,
	}
	player, err := s.playerStorage.Add(player)
	if err != nil {
		return domain.Player{}, err
	}
	if err := s.reloadCache(); err != nil {
		return domain.Player{}, err
	}
	s.log.WithField("player", player.Name).Info("player created")
	return player, nil
}

func (s *PlayerService) ListPlayers() ([]domain.Player, error) {
	return s.playerStorage.ListPlayers()
}

func (s *PlayerService) Get(id uuid.UUID) (domain.Player, error) {
	return s.playerStorage.Get(id)
}

func (s *PlayerService) GetByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	// The cache can lag behind an import; retry against storage once.
	if err := s.reloadCache(); err != nil {
		return domain.Player{}, err
	}
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	return domain.Player{}, fmt.Errorf("player %q: %w", name, storage.ErrNotFound)
}

// GetRatings lists all players best first with their rank filled in.
func (s *PlayerService) GetRatings() ([]domain.Player, error) {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].EloRating > players[j].EloRating
	})
	for i := range players {
		players[i].RatingRank = i + 1
	}
	return players, nil
}

// GetMatches returns the ladder log newest first, with each confirmed
// record's per-team rating delta reconstructed from the snapshot.
func (s *PlayerService) GetMatches() ([]domain.MatchRecord, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	reverse(matches)
	return matches, nil
}

func reverse(m []domain.MatchRecord) {
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

// CreateMatch records a declared result. The elo snapshot (what every
// player's rating becomes on confirmation) is computed now, against the
// players' current stored state, but no rating changes until the record
// is confirmed. Trusted entry can confirm immediately.
func (s *PlayerService) CreateMatch(match domain.MatchRecord, confirmNow bool) (domain.MatchRecord, error) {
	if err := match.Validate(); err != nil {
		return domain.MatchRecord{}, err
	}
	players := make(map[uuid.UUID]domain.Player, 4)
	for _, id := range match.PlayerIDs() {
		player, err := s.playerStorage.Get(id)
		if err != nil {
			return domain.MatchRecord{}, err
		}
		players[id] = player
	}

	rate := func(id uuid.UUID) elo.PlayerRating {
		return elo.PlayerRating{
			Rating:      players[id].EloRating,
			GamesPlayed: players[id].GamesPlayed,
		}
	}
	new1, new2 := elo.ComputeNewRatings(
		[2]elo.PlayerRating{rate(match.Team1[0]), rate(match.Team1[1])},
		[2]elo.PlayerRating{rate(match.Team2[0]), rate(match.Team2[1])},
		match.WinnerTeam,
	)
	match.EloSnapshot = map[uuid.UUID]int{
		match.Team1[0]: new1[0],
		match.Team1[1]: new1[1],
		match.Team2[0]: new2[0],
		match.Team2[1]: new2[1],
	}

	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	match.Status = domain.StatusPending
	match.CreatedAt = time.Now()

	match, err := s.matchStorage.CreateMatch(match)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	if confirmNow {
		if err := s.ConfirmMatch(match.ID); err != nil {
			return domain.MatchRecord{}, err
		}
		match.Status = domain.StatusConfirmed
	}
	return match, nil
}

// ConfirmMatch applies a pending record's elo snapshot: the four players'
// stored ratings are overwritten with the snapshot values as one unit.
func (s *PlayerService) ConfirmMatch(id uuid.UUID) error {
	match, err := s.matchStorage.GetMatch(id)
	if err != nil {
		return err
	}
	if match.Status != domain.StatusPending {
		return fmt.Errorf("%w: %s is %s", ErrBadStatus, id, match.Status)
	}
	updates := make(map[uuid.UUID]storage.RatingUpdate, 4)
	for _, pid := range match.PlayerIDs() {
		player, err := s.playerStorage.Get(pid)
		if err != nil {
			return err
		}
		newRating, ok := match.EloSnapshot[pid]
		if !ok {
			return fmt.Errorf("%w: snapshot missing player %s", domain.ErrInvalidMatch, pid)
		}
		updates[pid] = storage.RatingUpdate{
			Rating:      newRating,
			GamesPlayed: player.GamesPlayed + 1,
		}
	}
	if err := s.playerStorage.ApplyRatings(updates); err != nil {
		return err
	}
	if err := s.matchStorage.SetMatchStatus(id, domain.StatusConfirmed); err != nil {
		return err
	}
	s.log.WithField("match", id).Info("match confirmed")
	return s.reloadCache()
}

func (s *PlayerService) RejectMatch(id uuid.UUID) error {
	match, err := s.matchStorage.GetMatch(id)
	if err != nil {
		return err
	}
	if match.Status != domain.StatusPending {
		return fmt.Errorf("%w: %s is %s", ErrBadStatus, id, match.Status)
	}
	return s.matchStorage.SetMatchStatus(id, domain.StatusRejected)
}

// DeleteMatch removes a record. Deleting a confirmed record reverses its
// rating effect first: the flat-K replay reconstructs the points the match
// exchanged, and the exact inverse is applied to the players' current
// stored ratings. The replay result is an approximation when a player's
// K tier changed since the original commit.
func (s *PlayerService) DeleteMatch(id uuid.UUID) error {
	match, err := s.matchStorage.GetMatch(id)
	if err != nil {
		return err
	}
	if match.Status == domain.StatusConfirmed {
		if err := s.reverseMatch(match); err != nil {
			return err
		}
	}
	if err := s.matchStorage.DeleteMatch(id); err != nil {
		return err
	}
	s.log.WithField("match", id).Info("match deleted")
	return s.reloadCache()
}

func (s *PlayerService) reverseMatch(match domain.MatchRecord) error {
	records, err := s.matchStorage.ListMatches()
	if err != nil {
		return err
	}
	result, err := elo.Replay(confirmedGames(records), match.ID)
	if err != nil {
		return fmt.Errorf("reverse match %s: %w", match.ID, err)
	}
	updates := make(map[uuid.UUID]storage.RatingUpdate, 4)
	add := func(ids [2]uuid.UUID, points int) error {
		for _, pid := range ids {
			player, err := s.playerStorage.Get(pid)
			if err != nil {
				return err
			}
			updates[pid] = storage.RatingUpdate{
				Rating:      player.EloRating + points,
				GamesPlayed: player.GamesPlayed - 1,
			}
		}
		return nil
	}
	if err := add(match.Winners(), -result.Points); err != nil {
		return err
	}
	if err := add(match.Losers(), result.Points); err != nil {
		return err
	}
	return s.playerStorage.ApplyRatings(updates)
}

// GetPlayerData is a player's card: the player plus win/loss tallies
// against every opponent faced on the ladder.
func (s *PlayerService) GetPlayerData(id uuid.UUID) (domain.Player, map[uuid.UUID]domain.PlayerStats, error) {
	player, err := s.playerStorage.Get(id)
	if err != nil {
		return domain.Player{}, nil, err
	}
	records, err := s.matchStorage.ListMatches()
	if err != nil {
		return domain.Player{}, nil, err
	}
	stats := make(map[uuid.UUID]domain.PlayerStats)
	for _, match := range records {
		if match.Status != domain.StatusConfirmed {
			continue
		}
		var own, opp [2]uuid.UUID
		switch {
		case match.Team1[0] == id || match.Team1[1] == id:
			own, opp = match.Team1, match.Team2
		case match.Team2[0] == id || match.Team2[1] == id:
			own, opp = match.Team2, match.Team1
		default:
			continue
		}
		won := match.Winners() == own
		for _, other := range opp {
			st := stats[other]
			if st.Player.ID == uuid.Nil {
				if p, err := s.playerStorage.Get(other); err == nil {
					st.Player = p
				}
			}
			if won {
				st.Wins++
			} else {
				st.Loses++
			}
			stats[other] = st
		}
	}
	return player, stats, nil
}

func confirmedGames(records []domain.MatchRecord) []elo.Game {
	games := make([]elo.Game, 0, len(records))
	for _, r := range records {
		if r.Status != domain.StatusConfirmed {
			continue
		}
		games = append(games, elo.Game{
			ID:         r.ID,
			Team1:      r.Team1,
			Team2:      r.Team2,
			WinnerTeam: r.WinnerTeam,
		})
	}
	return games
}
