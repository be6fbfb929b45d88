package webpath

const (
	Api = "/api"

	ApiPlayers    = Api + "/players"
	ApiPlayerByID = ApiPlayers + "/:id"
	ApiRatings    = Api + "/ratings"

	ApiMatches      = Api + "/matches"
	ApiMatchConfirm = ApiMatches + "/:id/confirm"
	ApiMatchReject  = ApiMatches + "/:id/reject"
	ApiMatchByID    = ApiMatches + "/:id"

	ApiTournaments         = Api + "/tournaments"
	ApiTournamentByID      = ApiTournaments + "/:id"
	ApiTournamentPlayers   = ApiTournaments + "/:id/players"
	ApiTournamentStandings = ApiTournaments + "/:id/standings"
	ApiTournamentRounds    = ApiTournaments + "/:id/rounds"
	ApiTournamentResults   = ApiTournaments + "/:id/results"
	ApiTournamentCycle     = ApiTournaments + "/:id/cycle"

	ApiExport = Api + "/export"
)
