package web

import (
	"errors"
	"strconv"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/config"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/elo"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Server is the JSON API over the ladder and tournament services.
type Server struct {
	players     *service.PlayerService
	tournaments *service.TournamentService
	app         *fiber.App
	cfg         config.Server
	log         *logrus.Entry
}

func New(ps *service.PlayerService, ts *service.TournamentService, cfg config.Server, l *logrus.Logger) *Server {
	server := Server{
		players:     ps,
		tournaments: ts,
		cfg:         cfg,
		log:         l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: server.handleError,
	})

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiPlayerByID, server.handlePlayerCard)
	app.Get(webpath.ApiRatings, server.handleRatings)

	app.Get(webpath.ApiMatches, server.handleListMatches)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Post(webpath.ApiMatchConfirm, server.handleConfirmMatch)
	app.Post(webpath.ApiMatchReject, server.handleRejectMatch)
	app.Delete(webpath.ApiMatchByID, server.handleDeleteMatch)

	app.Post(webpath.ApiTournaments, server.handleCreateTournament)
	app.Get(webpath.ApiTournamentByID, server.handleGetTournament)
	app.Post(webpath.ApiTournamentPlayers, server.handleAddParticipant)
	app.Get(webpath.ApiTournamentPlayers, server.handleRoster)
	app.Get(webpath.ApiTournamentStandings, server.handleStandings)
	app.Post(webpath.ApiTournamentRounds, server.handleGenerateRound)
	app.Get(webpath.ApiTournamentRounds, server.handleTournamentMatches)
	app.Post(webpath.ApiTournamentResults, server.handleRecordResult)
	app.Get(webpath.ApiTournamentCycle, server.handleCycle)

	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiExport, server.handleImport)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	code := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, elo.ErrMatchNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidMatch):
		code = fiber.StatusBadRequest
	case errors.Is(err, service.ErrNameTaken),
		errors.Is(err, service.ErrDuplicatePlayer),
		errors.Is(err, service.ErrBadStatus),
		errors.Is(err, service.ErrMatchesIncomplete),
		errors.Is(err, service.ErrCycleComplete),
		errors.Is(err, service.ErrCannotGenerate):
		code = fiber.StatusConflict
	}
	if code == fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}

type playerResponse struct {
	domain.Player
	Level string `json:"level"`
}

func toPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{Player: p, Level: elo.LevelFor(p.EloRating).Label}
}

// Players are listed ladder-style: best rating first, rank attached.
func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	return s.handleRatings(ctx)
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	player, err := s.players.CreatePlayer(req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(toPlayerResponse(player))
}

func (s *Server) handlePlayerCard(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad player id")
	}
	player, stats, err := s.players.GetPlayerData(id)
	if err != nil {
		return err
	}
	opponents := make([]domain.PlayerStats, 0, len(stats))
	for _, st := range stats {
		opponents = append(opponents, st)
	}
	return ctx.JSON(fiber.Map{
		"player":    toPlayerResponse(player),
		"opponents": opponents,
	})
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	players, err := s.players.GetRatings()
	if err != nil {
		return err
	}
	out := make([]playerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerResponse(p))
	}
	return ctx.JSON(out)
}

func (s *Server) handleListMatches(ctx *fiber.Ctx) error {
	matches, err := s.players.GetMatches()
	if err != nil {
		return err
	}
	return ctx.JSON(matches)
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	var req createMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	match, err := s.players.CreateMatch(req.toRecord(), req.Confirm)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(match)
}

func (s *Server) matchID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "bad match id")
	}
	return id, nil
}

func (s *Server) handleConfirmMatch(ctx *fiber.Ctx) error {
	id, err := s.matchID(ctx)
	if err != nil {
		return err
	}
	if err := s.players.ConfirmMatch(id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleRejectMatch(ctx *fiber.Ctx) error {
	id, err := s.matchID(ctx)
	if err != nil {
		return err
	}
	if err := s.players.RejectMatch(id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleDeleteMatch(ctx *fiber.Ctx) error {
	id, err := s.matchID(ctx)
	if err != nil {
		return err
	}
	if err := s.players.DeleteMatch(id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) tournamentID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "bad tournament id")
	}
	return id, nil
}

func (s *Server) handleCreateTournament(ctx *fiber.Ctx) error {
	var req createTournamentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	tournament, err := s.tournaments.Create(req.Name, domain.Format(req.Format), req.PointsPerMatch)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(tournament)
}

func (s *Server) handleGetTournament(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	tournament, err := s.tournaments.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(tournament)
}

func (s *Server) handleAddParticipant(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	var req addParticipantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	ref := domain.PlayerRef{ID: req.PlayerID, Name: req.Name}
	if err := s.tournaments.AddPlayer(id, ref); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleRoster(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	roster, err := s.tournaments.Roster(id)
	if err != nil {
		return err
	}
	return ctx.JSON(roster)
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	standings, err := s.tournaments.Standings(id)
	if err != nil {
		return err
	}
	return ctx.JSON(standings)
}

func (s *Server) handleGenerateRound(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	matches, err := s.tournaments.GenerateNextRound(id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(matches)
}

func (s *Server) handleTournamentMatches(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	matches, err := s.tournaments.Matches(id)
	if err != nil {
		return err
	}
	return ctx.JSON(matches)
}

func (s *Server) handleRecordResult(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	var req recordResultRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := s.tournaments.RecordResult(id, req.MatchID, req.ScoreTeam1, req.ScoreTeam2); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleCycle(ctx *fiber.Ctx) error {
	id, err := s.tournamentID(ctx)
	if err != nil {
		return err
	}
	done, err := s.tournaments.CycleComplete(id)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"complete": done})
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.players.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	if err := s.players.Import(ctx.Body()); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
