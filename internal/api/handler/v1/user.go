package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linkslog/scorecard-api/internal/api/handler/v1/request"
	"github.com/linkslog/scorecard-api/internal/api/handler/v1/response"
	"github.com/linkslog/scorecard-api/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
	Handicap(user domain.User) (float64, bool)
}

type RoundService interface {
	CreateRound(ctx context.Context, round domain.Round) (domain.Round, error)
	GetRound(ctx context.Context, userID, roundID uint) (domain.Round, error)
	ListRounds(ctx context.Context, userID uint) ([]domain.Round, error)
	UpdateRound(ctx context.Context, userID, roundID uint, patch domain.RoundPatch) (domain.Round, error)
}

type UserHandler struct {
	svc    UserService
	rounds RoundService
}

func NewUserHandler(svc UserService, rounds RoundService) *UserHandler {
	return &UserHandler{
		svc:    svc,
		rounds: rounds,
	}
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest  true  "request body"
// @Success      201      {object}  response.UserDetail
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.CreateUser(ctx.Request.Context(), domain.User{Name: req.Name})
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/users/%v", user.ID))
	ctx.JSON(http.StatusCreated, response.NewUserDetail(user, nil))
}

// HandleGetUser godoc
// @Summary      Get user detail
// @Description  Includes the user's handicap when it can be computed from their recent rounds.
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  response.UserDetail
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err))
		return
	}

	var handicap *float64
	if value, ok := h.svc.Handicap(user); ok {
		handicap = &value
	}

	ctx.JSON(http.StatusOK, response.NewUserDetail(user, handicap))
}

// HandleListRounds godoc
// @Summary      List a user's rounds
// @Tags         rounds
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   response.RoundBasic
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID}/rounds [get]
func (h *UserHandler) HandleListRounds(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rounds, err := h.rounds.ListRounds(ctx.Request.Context(), userID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleListRounds -> h.rounds.ListRounds -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRoundList(rounds))
}

// HandleCreateRound godoc
// @Summary      Record a played round
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Param        userID   path      int                         true  "User ID"
// @Param        request  body      request.CreateRoundRequest  true  "request body"
// @Success      201      {object}  response.RoundDetail
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID}/rounds [post]
func (h *UserHandler) HandleCreateRound(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateRoundRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	round := domain.Round{
		UserID:      userID,
		CourseID:    req.CourseID,
		TeeID:       req.TeeID,
		ScoreByHole: req.ScoreByHole,
		Putts:       req.Putts,
		Fairways:    req.Fairways,
		GIR:         req.GIR,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date: %w", err)))
			return
		}
		round.Date = date
	}

	created, err := h.rounds.CreateRound(ctx.Request.Context(), round)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleCreateRound -> h.rounds.CreateRound -> %w", err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/users/%v/rounds/%v", userID, created.ID))
	ctx.JSON(http.StatusCreated, response.NewRoundDetail(created))
}

// HandleGetRound godoc
// @Summary      Get round detail with derived score and handicap differential
// @Tags         rounds
// @Produce      json
// @Param        userID   path      int  true  "User ID"
// @Param        roundID  path      int  true  "Round ID"
// @Success      200      {object}  response.RoundDetail
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID}/rounds/{roundID} [get]
func (h *UserHandler) HandleGetRound(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	roundID, err := parseIDParam(ctx, "roundID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	round, err := h.rounds.GetRound(ctx.Request.Context(), userID, roundID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleGetRound -> h.rounds.GetRound -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRoundDetail(round))
}

// HandleUpdateRound godoc
// @Summary      Update a round's scores
// @Description  Only score-related fields may change; a round's course and tee are immutable once recorded.
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Param        userID   path      int                         true  "User ID"
// @Param        roundID  path      int                         true  "Round ID"
// @Param        request  body      request.UpdateRoundRequest  true  "request body"
// @Success      200      {object}  response.RoundDetail
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID}/rounds/{roundID} [patch]
func (h *UserHandler) HandleUpdateRound(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	roundID, err := parseIDParam(ctx, "roundID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateRoundRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	round, err := h.rounds.UpdateRound(ctx.Request.Context(), userID, roundID, domain.RoundPatch{
		CourseID:    req.CourseID,
		TeeID:       req.TeeID,
		ScoreByHole: req.ScoreByHole,
		Putts:       req.Putts,
		Fairways:    req.Fairways,
		GIR:         req.GIR,
	})
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleUpdateRound -> h.rounds.UpdateRound -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRoundDetail(round))
}
