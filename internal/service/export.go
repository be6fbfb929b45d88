package service

import (
	"encoding/json"
	"errors"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
)

const exportVersion = 2

type export struct {
	Version int
	Players []domain.Player
	Matches []domain.MatchRecord
}

// Export dumps the full ladder dataset as versioned JSON.
func (s *PlayerService) Export() ([]byte, error) {
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	return json.Marshal(export{
		Version: exportVersion,
		Players: players,
		Matches: matches,
	})
}

func (s *PlayerService) Import(data []byte) error {
	var importData export
	if err := json.Unmarshal(data, &importData); err != nil {
		return err
	}
	if importData.Version != exportVersion {
		return errors.New("invalid export file version")
	}
	if err := s.playerStorage.ImportPlayers(importData.Players); err != nil {
		return err
	}
	if err := s.matchStorage.ImportMatches(importData.Matches); err != nil {
		return err
	}
	return s.reloadCache()
}
