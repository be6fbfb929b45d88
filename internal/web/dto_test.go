package web

import (
	"testing"

	"github.com/google/uuid"
)

func fourIDs() [4]uuid.UUID {
	return [4]uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
}

func TestCreateMatchRequestValidate(t *testing.T) {
	ids := fourIDs()
	tests := []struct {
		name    string
		req     createMatchRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: createMatchRequest{
				Team1:      [2]uuid.UUID{ids[0], ids[1]},
				Team2:      [2]uuid.UUID{ids[2], ids[3]},
				WinnerTeam: 1,
			},
		},
		{
			name: "missing player",
			req: createMatchRequest{
				Team1:      [2]uuid.UUID{ids[0], uuid.Nil},
				Team2:      [2]uuid.UUID{ids[2], ids[3]},
				WinnerTeam: 1,
			},
			wantErr: true,
		},
		{
			name: "winner team out of range",
			req: createMatchRequest{
				Team1:      [2]uuid.UUID{ids[0], ids[1]},
				Team2:      [2]uuid.UUID{ids[2], ids[3]},
				WinnerTeam: 0,
			},
			wantErr: true,
		},
		{
			name: "winner team three",
			req: createMatchRequest{
				Team1:      [2]uuid.UUID{ids[0], ids[1]},
				Team2:      [2]uuid.UUID{ids[2], ids[3]},
				WinnerTeam: 3,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTournamentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     createTournamentRequest
		wantErr bool
	}{
		{name: "americano", req: createTournamentRequest{Name: "Friday", Format: "americano"}},
		{name: "mexicano with points", req: createTournamentRequest{Name: "Friday", Format: "mexicano", PointsPerMatch: 32}},
		{name: "empty name", req: createTournamentRequest{Format: "americano"}, wantErr: true},
		{name: "unknown format", req: createTournamentRequest{Name: "Friday", Format: "ladder"}, wantErr: true},
		{name: "negative points", req: createTournamentRequest{Name: "Friday", Format: "americano", PointsPerMatch: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordResultRequestValidate(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		req     recordResultRequest
		wantErr bool
	}{
		{name: "valid", req: recordResultRequest{MatchID: id, ScoreTeam1: 14, ScoreTeam2: 10}},
		{name: "zero scores", req: recordResultRequest{MatchID: id}},
		{name: "missing match", req: recordResultRequest{ScoreTeam1: 14, ScoreTeam2: 10}, wantErr: true},
		{name: "negative score", req: recordResultRequest{MatchID: id, ScoreTeam1: -2, ScoreTeam2: 10}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddParticipantRequestValidate(t *testing.T) {
	if err := (addParticipantRequest{Name: "Ana"}).Validate(); err != nil {
		t.Errorf("registered-less guest should be valid, got %v", err)
	}
	if err := (addParticipantRequest{PlayerID: uuid.New()}).Validate(); err == nil {
		t.Error("participant without a display name should be rejected")
	}
}
