package web

import (
	"errors"
	"fmt"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrMissingPlayer = errors.New("all four players are required")
	ErrWrongWinner   = errors.New("winner team must be 1 or 2")
)

type createPlayerRequest struct {
	Name string `json:"name"`
}

func (r createPlayerRequest) Validate() error {
	if r.Name == "" {
		return errors.New("empty player name")
	}
	return nil
}

type createMatchRequest struct {
	Team1      [2]uuid.UUID      `json:"team1"`
	Team2      [2]uuid.UUID      `json:"team2"`
	Sets       []domain.SetScore `json:"sets"`
	WinnerTeam int               `json:"winnerTeam"`
	Confirm    bool              `json:"confirm"`
}

func (r createMatchRequest) Validate() error {
	for _, id := range [...]uuid.UUID{r.Team1[0], r.Team1[1], r.Team2[0], r.Team2[1]} {
		if id == uuid.Nil {
			return ErrMissingPlayer
		}
	}
	if r.WinnerTeam != 1 && r.WinnerTeam != 2 {
		return ErrWrongWinner
	}
	return nil
}

func (r createMatchRequest) toRecord() domain.MatchRecord {
	return domain.MatchRecord{
		Team1:      r.Team1,
		Team2:      r.Team2,
		Sets:       r.Sets,
		WinnerTeam: r.WinnerTeam,
	}
}

type createTournamentRequest struct {
	Name           string `json:"name"`
	Format         string `json:"format"`
	PointsPerMatch int    `json:"pointsPerMatch"`
}

func (r createTournamentRequest) Validate() error {
	if r.Name == "" {
		return errors.New("empty tournament name")
	}
	if !domain.Format(r.Format).Valid() {
		return fmt.Errorf("unknown format %q", r.Format)
	}
	if r.PointsPerMatch < 0 {
		return errors.New("negative points per match")
	}
	return nil
}

type addParticipantRequest struct {
	// PlayerID is empty for guests, who exist only inside the tournament.
	PlayerID uuid.UUID `json:"playerId"`
	Name     string    `json:"name"`
}

func (r addParticipantRequest) Validate() error {
	if r.Name == "" {
		return errors.New("empty participant name")
	}
	return nil
}

type recordResultRequest struct {
	MatchID    uuid.UUID `json:"matchId"`
	ScoreTeam1 int       `json:"scoreTeam1"`
	ScoreTeam2 int       `json:"scoreTeam2"`
}

func (r recordResultRequest) Validate() error {
	if r.MatchID == uuid.Nil {
		return errors.New("missing match id")
	}
	if r.ScoreTeam1 < 0 || r.ScoreTeam2 < 0 {
		return errors.New("negative score")
	}
	return nil
}
