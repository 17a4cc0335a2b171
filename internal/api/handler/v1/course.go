package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linkslog/scorecard-api/internal/api/handler/v1/request"
	"github.com/linkslog/scorecard-api/internal/api/handler/v1/response"
	"github.com/linkslog/scorecard-api/internal/domain"
)

type CourseService interface {
	CreateCourse(ctx context.Context, course domain.Course) (domain.Course, error)
	GetCourse(ctx context.Context, id uint) (domain.Course, error)
	ListCourses(ctx context.Context, page int) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, id uint, patch domain.CoursePatch) (domain.Course, error)
	AddTee(ctx context.Context, courseID uint, tee domain.Tee) (domain.Tee, error)
	GetTees(ctx context.Context, courseID uint) ([]domain.Tee, error)
	GetTee(ctx context.Context, courseID, teeID uint) (domain.Tee, error)
	UpdateTee(ctx context.Context, courseID, teeID uint, patch domain.TeePatch) (domain.Tee, error)
	AddHoles(ctx context.Context, courseID uint, specs []domain.HoleSpec) ([]domain.Hole, error)
	GetHoles(ctx context.Context, courseID uint) ([]domain.Hole, error)
	GetHole(ctx context.Context, courseID, holeID uint) (domain.Hole, error)
	UpdateHole(ctx context.Context, courseID, holeID uint, patch domain.HolePatch) (domain.Hole, error)
	CreateScorecard(ctx context.Context, courseID uint, spec domain.ScorecardSpec) (domain.Scorecard, error)
	GetScorecard(ctx context.Context, courseID uint) (domain.Scorecard, error)
}

type CourseHandler struct {
	svc CourseService
}

func NewCourseHandler(svc CourseService) *CourseHandler {
	return &CourseHandler{
		svc: svc,
	}
}

// HandleCreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCourseRequest  true  "request body"
// @Success      201      {object}  response.CourseDetail
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /courses [post]
func (h *CourseHandler) HandleCreateCourse(ctx *gin.Context) {
	var req request.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	course, err := h.svc.CreateCourse(ctx.Request.Context(), domain.Course{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleCreateCourse -> h.svc.CreateCourse -> %w", err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/courses/%v", course.ID))
	ctx.JSON(http.StatusCreated, response.NewCourseDetail(course))
}

// HandleListCourses godoc
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        page  query     int  false  "page number, 10 per page"
// @Success      200   {array}   response.CourseBasic
// @Failure      500   {object}  response.Err
// @Router       /courses [get]
func (h *CourseHandler) HandleListCourses(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid page: %w", err)))
		return
	}

	courses, err := h.svc.ListCourses(ctx.Request.Context(), page)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleListCourses -> h.svc.ListCourses -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCourseList(courses))
}

// HandleGetCourse godoc
// @Summary      Get course detail
// @Tags         courses
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {object}  response.CourseDetail
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID} [get]
func (h *CourseHandler) HandleGetCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	course, err := h.svc.GetCourse(ctx.Request.Context(), courseID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleGetCourse -> h.svc.GetCourse -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCourseDetail(course))
}

// HandleUpdateCourse godoc
// @Summary      Update a course's name or location
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                          true  "Course ID"
// @Param        request   body      request.UpdateCourseRequest  true  "request body"
// @Success      200       {object}  response.CourseDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID} [patch]
func (h *CourseHandler) HandleUpdateCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateCourseRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	course, err := h.svc.UpdateCourse(ctx.Request.Context(), courseID, domain.CoursePatch{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleUpdateCourse -> h.svc.UpdateCourse -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCourseDetail(course))
}

// HandleCreateScorecard godoc
// @Summary      Create a course's full scorecard in one call
// @Description  Creates all tees, holes and yardages atomically. A scorecard can be created exactly once per course.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                             true  "Course ID"
// @Param        request   body      request.CreateScorecardRequest  true  "request body"
// @Success      201       {object}  response.Scorecard
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/scorecard [post]
func (h *CourseHandler) HandleCreateScorecard(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateScorecardRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	spec := domain.ScorecardSpec{
		Tees:  make([]domain.TeeSpec, len(req.Tees)),
		Holes: make([]domain.HoleSpec, len(req.Holes)),
	}
	for i, tee := range req.Tees {
		spec.Tees[i] = domain.TeeSpec{
			Colour:       tee.Colour,
			CourseRating: tee.CourseRating,
			SlopeRating:  tee.SlopeRating,
		}
	}
	for i, hole := range req.Holes {
		spec.Holes[i] = holeSpecFromRequest(hole)
	}

	scorecard, err := h.svc.CreateScorecard(ctx.Request.Context(), courseID, spec)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleCreateScorecard -> h.svc.CreateScorecard -> %w", err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/courses/%v/scorecard", courseID))
	ctx.JSON(http.StatusCreated, response.NewScorecard(scorecard))
}

// HandleGetScorecard godoc
// @Summary      Get a course's scorecard
// @Tags         courses
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {object}  response.Scorecard
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/scorecard [get]
func (h *CourseHandler) HandleGetScorecard(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	scorecard, err := h.svc.GetScorecard(ctx.Request.Context(), courseID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleGetScorecard -> h.svc.GetScorecard -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewScorecard(scorecard))
}

func holeSpecFromRequest(req request.HoleRequest) domain.HoleSpec {
	spec := domain.HoleSpec{
		Number: req.Number,
		Par:    req.Par,
		Tees:   make([]domain.TeeYardageSpec, len(req.Tees)),
	}
	for i, tee := range req.Tees {
		spec.Tees[i] = domain.TeeYardageSpec{
			Colour: tee.Colour,
			Yards:  tee.Yardage,
		}
	}

	return spec
}
