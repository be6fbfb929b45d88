package service

import (
	"testing"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/elo"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*PlayerService, *memPlayerStorage, *memMatchStorage) {
	t.Helper()
	ps := newMemPlayerStorage()
	ms := &memMatchStorage{}
	svc, err := New(ps, ms, testLogger())
	require.NoError(t, err)
	return svc, ps, ms
}

func addFourPlayers(t *testing.T, svc *PlayerService) [4]domain.Player {
	t.Helper()
	var players [4]domain.Player
	for i, name := range []string{"Ana", "Bruno", "Carla", "Diego"} {
		p, err := svc.CreatePlayer(name)
		require.NoError(t, err)
		players[i] = p
	}
	return players
}

func TestCreatePlayer(t *testing.T) {
	svc, _, _ := newTestService(t)
	p, err := svc.CreatePlayer("Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, elo.InitialRating, p.EloRating)
	assert.Equal(t, 0, p.GamesPlayed)

	_, err = svc.CreatePlayer("ana ")
	assert.ErrorIs(t, err, ErrNameTaken)

	_, err = svc.CreatePlayer("")
	assert.Error(t, err)
}

func TestGetByName(t *testing.T) {
	svc, ps, _ := newTestService(t)
	created, err := svc.CreatePlayer("Ana")
	require.NoError(t, err)

	got, err := svc.GetByName("ANA")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Added behind the cache's back, as an import would.
	direct := domain.Player{ID: uuid.New(), Name: "Bruno", EloRating: elo.InitialRating}
	_, err = ps.Add(direct)
	require.NoError(t, err)
	got, err = svc.GetByName("Bruno")
	require.NoError(t, err)
	assert.Equal(t, direct.ID, got.ID)

	_, err = svc.GetByName("nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateMatchPendingDoesNotRate(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	match, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, false)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, match.Status)
	// Four fresh players: expected score 0.5, placement K 48, so the
	// snapshot moves everyone by 24.
	assert.Equal(t, 1174, match.EloSnapshot[players[0].ID])
	assert.Equal(t, 1174, match.EloSnapshot[players[1].ID])
	assert.Equal(t, 1126, match.EloSnapshot[players[2].ID])
	assert.Equal(t, 1126, match.EloSnapshot[players[3].ID])

	for _, p := range players {
		stored, err := svc.Get(p.ID)
		require.NoError(t, err)
		assert.Equal(t, elo.InitialRating, stored.EloRating)
		assert.Equal(t, 0, stored.GamesPlayed)
	}
}

func TestConfirmMatchAppliesSnapshot(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	match, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, false)
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmMatch(match.ID))

	for i, want := range []int{1174, 1174, 1126, 1126} {
		stored, err := svc.Get(players[i].ID)
		require.NoError(t, err)
		assert.Equal(t, want, stored.EloRating)
		assert.Equal(t, 1, stored.GamesPlayed)
	}

	err = svc.ConfirmMatch(match.ID)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestConfirmNow(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	match, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 2,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, match.Status)

	stored, err := svc.Get(players[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 1174, stored.EloRating)
}

func TestRejectMatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	match, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, false)
	require.NoError(t, err)
	require.NoError(t, svc.RejectMatch(match.ID))

	for _, p := range players {
		stored, err := svc.Get(p.ID)
		require.NoError(t, err)
		assert.Equal(t, elo.InitialRating, stored.EloRating)
	}

	err = svc.ConfirmMatch(match.ID)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestDeleteConfirmedMatchReverses(t *testing.T) {
	svc, _, ms := newTestService(t)
	players := addFourPlayers(t, svc)

	match, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, true)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMatch(match.ID))

	_, err = ms.GetMatch(match.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// The commit used placement K (delta 24); the reversal replays with
	// the flat K and takes back 16. Games played returns to zero, the
	// rating residue is accepted.
	for i, want := range []int{1158, 1158, 1142, 1142} {
		stored, err := svc.Get(players[i].ID)
		require.NoError(t, err)
		assert.Equal(t, want, stored.EloRating, "player %d", i)
		assert.Equal(t, 0, stored.GamesPlayed)
	}
}

func TestDeletePendingMatchLeavesRatings(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	match, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, false)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMatch(match.ID))

	for _, p := range players {
		stored, err := svc.Get(p.ID)
		require.NoError(t, err)
		assert.Equal(t, elo.InitialRating, stored.EloRating)
	}
}

func TestGetRatings(t *testing.T) {
	svc, ps, _ := newTestService(t)
	ids := make([]uuid.UUID, 3)
	for i, r := range []int{1200, 1400, 1300} {
		p := domain.Player{ID: uuid.New(), Name: string(rune('A' + i)), EloRating: r}
		_, err := ps.Add(p)
		require.NoError(t, err)
		ids[i] = p.ID
	}

	ratings, err := svc.GetRatings()
	require.NoError(t, err)
	require.Len(t, ratings, 3)
	assert.Equal(t, ids[1], ratings[0].ID)
	assert.Equal(t, 1, ratings[0].RatingRank)
	assert.Equal(t, ids[2], ratings[1].ID)
	assert.Equal(t, 2, ratings[1].RatingRank)
	assert.Equal(t, ids[0], ratings[2].ID)
	assert.Equal(t, 3, ratings[2].RatingRank)
}

func TestGetPlayerData(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	_, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, true)
	require.NoError(t, err)
	_, err = svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[2].ID},
		Team2:      [2]uuid.UUID{players[1].ID, players[3].ID},
		WinnerTeam: 2,
	}, true)
	require.NoError(t, err)

	player, stats, err := svc.GetPlayerData(players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, players[0].ID, player.ID)
	// Faced Diego twice (one win, one loss), Carla once as opponent,
	// Bruno once as opponent.
	assert.Equal(t, 1, stats[players[3].ID].Wins)
	assert.Equal(t, 1, stats[players[3].ID].Loses)
	assert.Equal(t, 1, stats[players[2].ID].Wins)
	assert.Equal(t, 1, stats[players[1].ID].Loses)
}

func TestCreateMatchValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)

	_, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[0].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidMatch)

	_, err = svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 3,
	}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidMatch)

	_, err = svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, uuid.New()},
		WinnerTeam: 1,
	}, false)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	players := addFourPlayers(t, svc)
	_, err := svc.CreateMatch(domain.MatchRecord{
		Team1:      [2]uuid.UUID{players[0].ID, players[1].ID},
		Team2:      [2]uuid.UUID{players[2].ID, players[3].ID},
		WinnerTeam: 1,
	}, true)
	require.NoError(t, err)

	data, err := svc.Export()
	require.NoError(t, err)

	restored, _, _ := newTestService(t)
	require.NoError(t, restored.Import(data))

	got, err := restored.Get(players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1174, got.EloRating)
	matches, err := restored.GetMatches()
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, domain.StatusConfirmed, matches[0].Status)

	err = restored.Import([]byte(`{"Version":1}`))
	assert.Error(t, err)
}

func TestImportRejectsGarbage(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.Error(t, svc.Import([]byte("not json")))
}
