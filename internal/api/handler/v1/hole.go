package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkslog/scorecard-api/internal/api/handler/v1/request"
	"github.com/linkslog/scorecard-api/internal/api/handler/v1/response"
	"github.com/linkslog/scorecard-api/internal/domain"
)

// HandleListHoles godoc
// @Summary      List a course's holes
// @Tags         holes
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {array}   response.HoleBasic
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/holes [get]
func (h *CourseHandler) HandleListHoles(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	holes, err := h.svc.GetHoles(ctx.Request.Context(), courseID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleListHoles -> h.svc.GetHoles -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHoleList(holes))
}

// HandleCreateHoles godoc
// @Summary      Add holes to a course
// @Description  Accepts a single hole object or a list of hole objects. Each hole's optional tees list records yardages against the course's existing tees by colour.
// @Tags         holes
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                  true  "Course ID"
// @Param        request   body      request.HoleRequest  true  "one hole, or a list of holes"
// @Success      201       {array}   response.HoleDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/holes [post]
func (h *CourseHandler) HandleCreateHoles(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateHolesRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	specs := make([]domain.HoleSpec, len(req.Holes))
	for i, hole := range req.Holes {
		specs[i] = holeSpecFromRequest(hole)
	}

	holes, err := h.svc.AddHoles(ctx.Request.Context(), courseID, specs)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleCreateHoles -> h.svc.AddHoles -> %w", err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/courses/%v/holes", courseID))
	ctx.JSON(http.StatusCreated, response.NewHoleDetailList(holes))
}

// HandleGetHole godoc
// @Summary      Get hole detail with per-tee yardages
// @Tags         holes
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Param        holeID    path      int  true  "Hole ID"
// @Success      200       {object}  response.HoleDetail
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/holes/{holeID} [get]
func (h *CourseHandler) HandleGetHole(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	holeID, err := parseIDParam(ctx, "holeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hole, err := h.svc.GetHole(ctx.Request.Context(), courseID, holeID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleGetHole -> h.svc.GetHole -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHoleDetail(hole))
}

// HandleUpdateHole godoc
// @Summary      Update a hole's yardages
// @Description  Upserts yardages from the tees list. A hole's number and par are fixed once recorded.
// @Tags         holes
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                  true  "Course ID"
// @Param        holeID    path      int                  true  "Hole ID"
// @Param        request   body      request.HoleRequest  true  "request body"
// @Success      200       {object}  response.HoleDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/holes/{holeID} [patch]
func (h *CourseHandler) HandleUpdateHole(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	holeID, err := parseIDParam(ctx, "holeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req struct {
		Number *int                        `json:"number"`
		Par    *int                        `json:"par"`
		Tees   []request.TeeYardageRequest `json:"tees"`
	}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	patch := domain.HolePatch{
		Number: req.Number,
		Par:    req.Par,
		Tees:   make([]domain.TeeYardageSpec, len(req.Tees)),
	}
	for i, tee := range req.Tees {
		patch.Tees[i] = domain.TeeYardageSpec{Colour: tee.Colour, Yards: tee.Yardage}
	}

	hole, err := h.svc.UpdateHole(ctx.Request.Context(), courseID, holeID, patch)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleUpdateHole -> h.svc.UpdateHole -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHoleDetail(hole))
}
