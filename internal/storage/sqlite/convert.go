package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/alvarobarcelona/PadelUp-sub000/gen/model"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"

	"github.com/google/uuid"
)

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player id: %w", err)
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
		EloRating:    int(player.Rating),
		GamesPlayed:  int(player.GamesPlayed),
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:          player.ID.String(),
		Name:        player.Name,
		CreatedAt:   player.RegisteredAt,
		Rating:      int32(player.EloRating),
		GamesPlayed: int32(player.GamesPlayed),
	}
}

func convertMatchToDomain(match model.Matches) (domain.MatchRecord, error) {
	id, err := uuid.Parse(match.ID)
	if err != nil {
		return domain.MatchRecord{}, fmt.Errorf("match id: %w", err)
	}
	var team1, team2 [2]uuid.UUID
	for i, raw := range []string{match.Team1Player1, match.Team1Player2} {
		team1[i], err = uuid.Parse(raw)
		if err != nil {
			return domain.MatchRecord{}, fmt.Errorf("team 1 player: %w", err)
		}
	}
	for i, raw := range []string{match.Team2Player1, match.Team2Player2} {
		team2[i], err = uuid.Parse(raw)
		if err != nil {
			return domain.MatchRecord{}, fmt.Errorf("team 2 player: %w", err)
		}
	}
	var sets []domain.SetScore
	if err := json.Unmarshal([]byte(match.Sets), &sets); err != nil {
		return domain.MatchRecord{}, fmt.Errorf("sets: %w", err)
	}
	rawSnapshot := make(map[string]int)
	if err := json.Unmarshal([]byte(match.EloSnapshot), &rawSnapshot); err != nil {
		return domain.MatchRecord{}, fmt.Errorf("elo snapshot: %w", err)
	}
	snapshot := make(map[uuid.UUID]int, len(rawSnapshot))
	for k, v := range rawSnapshot {
		pid, err := uuid.Parse(k)
		if err != nil {
			return domain.MatchRecord{}, fmt.Errorf("elo snapshot player: %w", err)
		}
		snapshot[pid] = v
	}
	return domain.MatchRecord{
		ID:          id,
		Team1:       team1,
		Team2:       team2,
		Sets:        sets,
		WinnerTeam:  int(match.WinnerTeam),
		Status:      domain.MatchStatus(match.Status),
		EloSnapshot: snapshot,
		CreatedAt:   match.CreatedAt,
	}, nil
}

func convertMatchesToDomain(matches []model.Matches) ([]domain.MatchRecord, error) {
	converted := make([]domain.MatchRecord, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertMatchFromDomain(match domain.MatchRecord) (model.Matches, error) {
	sets, err := json.Marshal(match.Sets)
	if err != nil {
		return model.Matches{}, err
	}
	rawSnapshot := make(map[string]int, len(match.EloSnapshot))
	for id, rating := range match.EloSnapshot {
		rawSnapshot[id.String()] = rating
	}
	snapshot, err := json.Marshal(rawSnapshot)
	if err != nil {
		return model.Matches{}, err
	}
	return model.Matches{
		ID:           match.ID.String(),
		Team1Player1: match.Team1[0].String(),
		Team1Player2: match.Team1[1].String(),
		Team2Player1: match.Team2[0].String(),
		Team2Player2: match.Team2[1].String(),
		Sets:         string(sets),
		WinnerTeam:   int32(match.WinnerTeam),
		Status:       string(match.Status),
		EloSnapshot:  string(snapshot),
		CreatedAt:    match.CreatedAt,
	}, nil
}

func convertTournamentFromDomain(t domain.Tournament) model.Tournaments {
	return model.Tournaments{
		ID:             t.ID.String(),
		Name:           t.Name,
		Format:         string(t.Format),
		PointsPerMatch: int32(t.PointsPerMatch),
		CreatedAt:      t.CreatedAt,
	}
}

func convertTournamentToDomain(t model.Tournaments) (domain.Tournament, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("tournament id: %w", err)
	}
	return domain.Tournament{
		ID:             id,
		Name:           t.Name,
		Format:         domain.Format(t.Format),
		PointsPerMatch: int(t.PointsPerMatch),
		CreatedAt:      t.CreatedAt,
	}, nil
}

func convertParticipantFromDomain(tournamentID uuid.UUID, p domain.Participant) model.TournamentPlayers {
	return model.TournamentPlayers{
		TournamentID:  tournamentID.String(),
		PlayerID:      refID(p.Player),
		DisplayName:   p.Player.Name,
		Score:         int32(p.Score),
		MatchesPlayed: int32(p.MatchesPlayed),
		Active:        p.Active,
	}
}

func convertParticipantsToDomain(ps []model.TournamentPlayers) ([]domain.Participant, error) {
	converted := make([]domain.Participant, 0, len(ps))
	for _, p := range ps {
		ref, err := parseRef(p.PlayerID, p.DisplayName)
		if err != nil {
			return nil, err
		}
		converted = append(converted, domain.Participant{
			Player:        ref,
			Score:         int(p.Score),
			MatchesPlayed: int(p.MatchesPlayed),
			Active:        p.Active,
		})
	}
	return converted, nil
}

func convertTournamentMatchFromDomain(m domain.Match) model.TournamentMatches {
	return model.TournamentMatches{
		ID:           m.ID.String(),
		TournamentID: m.TournamentID.String(),
		RoundNumber:  int32(m.Round),
		CourtNumber:  int32(m.Court),
		Team1P1ID:    refID(m.Team1[0]),
		Team1P1Name:  m.Team1[0].Name,
		Team1P2ID:    refID(m.Team1[1]),
		Team1P2Name:  m.Team1[1].Name,
		Team2P1ID:    refID(m.Team2[0]),
		Team2P1Name:  m.Team2[0].Name,
		Team2P2ID:    refID(m.Team2[1]),
		Team2P2Name:  m.Team2[1].Name,
		ScoreTeam1:   int32(m.ScoreTeam1),
		ScoreTeam2:   int32(m.ScoreTeam2),
		Completed:    m.Completed,
	}
}

func convertTournamentMatchesToDomain(matches []model.TournamentMatches) ([]domain.Match, error) {
	converted := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return nil, fmt.Errorf("tournament match id: %w", err)
		}
		tournamentID, err := uuid.Parse(m.TournamentID)
		if err != nil {
			return nil, fmt.Errorf("tournament id: %w", err)
		}
		t1p1, err := parseRef(m.Team1P1ID, m.Team1P1Name)
		if err != nil {
			return nil, err
		}
		t1p2, err := parseRef(m.Team1P2ID, m.Team1P2Name)
		if err != nil {
			return nil, err
		}
		t2p1, err := parseRef(m.Team2P1ID, m.Team2P1Name)
		if err != nil {
			return nil, err
		}
		t2p2, err := parseRef(m.Team2P2ID, m.Team2P2Name)
		if err != nil {
			return nil, err
		}
		converted = append(converted, domain.Match{
			ID:           id,
			TournamentID: tournamentID,
			Round:        int(m.RoundNumber),
			Court:        int(m.CourtNumber),
			Team1:        [2]domain.PlayerRef{t1p1, t1p2},
			Team2:        [2]domain.PlayerRef{t2p1, t2p2},
			ScoreTeam1:   int(m.ScoreTeam1),
			ScoreTeam2:   int(m.ScoreTeam2),
			Completed:    m.Completed,
		})
	}
	return converted, nil
}

func refID(ref domain.PlayerRef) *string {
	if ref.IsGuest() {
		return nil
	}
	id := ref.ID.String()
	return &id
}

func parseRef(id *string, name string) (domain.PlayerRef, error) {
	if id == nil {
		return domain.PlayerRef{Name: name}, nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return domain.PlayerRef{}, fmt.Errorf("player ref: %w", err)
	}
	return domain.PlayerRef{ID: parsed, Name: name}, nil
}
