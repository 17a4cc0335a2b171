package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkslog/scorecard-api/internal/api/handler/v1/request"
	"github.com/linkslog/scorecard-api/internal/api/handler/v1/response"
	"github.com/linkslog/scorecard-api/internal/domain"
)

// HandleListTees godoc
// @Summary      List a course's tees
// @Tags         tees
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {array}   response.TeeBasic
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/tees [get]
func (h *CourseHandler) HandleListTees(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tees, err := h.svc.GetTees(ctx.Request.Context(), courseID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleListTees -> h.svc.GetTees -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTeeList(tees))
}

// HandleCreateTee godoc
// @Summary      Add a tee to a course
// @Tags         tees
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                       true  "Course ID"
// @Param        request   body      request.CreateTeeRequest  true  "request body"
// @Success      201       {object}  response.TeeDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/tees [post]
func (h *CourseHandler) HandleCreateTee(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateTeeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tee, err := h.svc.AddTee(ctx.Request.Context(), courseID, domain.Tee{
		Colour:       req.Colour,
		CourseRating: req.CourseRating,
		SlopeRating:  req.SlopeRating,
	})
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleCreateTee -> h.svc.AddTee -> %w", err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/courses/%v/tees/%v", courseID, tee.ID))
	ctx.JSON(http.StatusCreated, response.NewTeeDetail(tee))
}

// HandleGetTee godoc
// @Summary      Get tee detail with ratings and total yardage
// @Tags         tees
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Param        teeID     path      int  true  "Tee ID"
// @Success      200       {object}  response.TeeDetail
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/tees/{teeID} [get]
func (h *CourseHandler) HandleGetTee(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	teeID, err := parseIDParam(ctx, "teeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tee, err := h.svc.GetTee(ctx.Request.Context(), courseID, teeID)
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleGetTee -> h.svc.GetTee -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTeeDetail(tee))
}

// HandleUpdateTee godoc
// @Summary      Update a tee's ratings
// @Description  Any field except colour may change; colour is the tee's natural key.
// @Tags         tees
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                       true  "Course ID"
// @Param        teeID     path      int                       true  "Tee ID"
// @Param        request   body      request.UpdateTeeRequest  true  "request body"
// @Success      200       {object}  response.TeeDetail
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID}/tees/{teeID} [patch]
func (h *CourseHandler) HandleUpdateTee(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	teeID, err := parseIDParam(ctx, "teeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateTeeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tee, err := h.svc.UpdateTee(ctx.Request.Context(), courseID, teeID, domain.TeePatch{
		Colour:       req.Colour,
		CourseRating: req.CourseRating,
		SlopeRating:  req.SlopeRating,
	})
	if err != nil {
		renderDomainErr(ctx, fmt.Errorf("v1.HandleUpdateTee -> h.svc.UpdateTee -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTeeDetail(tee))
}
