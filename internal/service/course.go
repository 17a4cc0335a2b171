package service

import (
	"context"
	"fmt"

	"github.com/linkslog/scorecard-api/internal/domain"
)

// PageSize is the number of courses returned per list page.
const PageSize = 10

type CourseRepository interface {
	Create(ctx context.Context, course domain.Course) (domain.Course, error)
	FindByID(ctx context.Context, id uint) (domain.Course, error)
	List(ctx context.Context, offset, limit int) ([]domain.Course, error)
	Update(ctx context.Context, id uint, name, location string) error
	CountHoles(ctx context.Context, courseID uint) (int64, error)
	CountTees(ctx context.Context, courseID uint) (int64, error)
	CreateTee(ctx context.Context, tee domain.Tee) (domain.Tee, error)
	FindTees(ctx context.Context, courseID uint) ([]domain.Tee, error)
	FindTeeByID(ctx context.Context, id uint) (domain.Tee, error)
	UpdateTeeRatings(ctx context.Context, id uint, courseRating, slopeRating *float64) error
	CreateHole(ctx context.Context, hole domain.Hole, yardages []domain.Yardage) (domain.Hole, error)
	FindHoles(ctx context.Context, courseID uint) ([]domain.Hole, error)
	FindHoleByID(ctx context.Context, id uint) (domain.Hole, error)
	UpsertYardages(ctx context.Context, holeID uint, yardages []domain.Yardage) error
	CreateScorecard(ctx context.Context, courseID uint, spec domain.ScorecardSpec) ([]domain.Tee, []domain.Hole, error)
}

// CourseService owns the course aggregate: course CRUD, incremental
// hole and tee management and bulk scorecard creation.
type CourseService struct {
	repo CourseRepository
}

func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{
		repo: repo,
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, course domain.Course) (domain.Course, error) {
	if err := course.Validate(); err != nil {
		return domain.Course{}, err
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id uint) (domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context, page int) ([]domain.Course, error) {
	if page < 1 {
		page = 1
	}

	courses, err := s.repo.List(ctx, PageSize*(page-1), PageSize)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return courses, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id uint, patch domain.CoursePatch) (domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if patch.Name != nil {
		course.Name = *patch.Name
	}
	if patch.Location != nil {
		course.Location = *patch.Location
	}
	if err = course.Validate(); err != nil {
		return domain.Course{}, err
	}

	if err = s.repo.Update(ctx, id, course.Name, course.Location); err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return course, nil
}

func (s *CourseService) AddTee(ctx context.Context, courseID uint, tee domain.Tee) (domain.Tee, error) {
	if err := tee.Validate(); err != nil {
		return domain.Tee{}, err
	}

	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return domain.Tee{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	tee.CourseID = courseID
	created, err := s.repo.CreateTee(ctx, tee)
	if err != nil {
		return domain.Tee{}, fmt.Errorf("s.repo.CreateTee -> %w", err)
	}

	return created, nil
}

func (s *CourseService) GetTees(ctx context.Context, courseID uint) ([]domain.Tee, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	tees, err := s.repo.FindTees(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTees -> %w", err)
	}

	return tees, nil
}

func (s *CourseService) GetTee(ctx context.Context, courseID, teeID uint) (domain.Tee, error) {
	tee, err := s.repo.FindTeeByID(ctx, teeID)
	if err != nil {
		return domain.Tee{}, fmt.Errorf("s.repo.FindTeeByID -> %w", err)
	}
	if tee.CourseID != courseID {
		return domain.Tee{}, domain.NewNotFoundError("tee", teeID)
	}

	return tee, nil
}

// UpdateTee changes a tee's ratings. Colour is the natural key
// distinguishing tees within a course, so changing it is rejected.
func (s *CourseService) UpdateTee(ctx context.Context, courseID, teeID uint, patch domain.TeePatch) (domain.Tee, error) {
	tee, err := s.GetTee(ctx, courseID, teeID)
	if err != nil {
		return domain.Tee{}, err
	}

	if patch.Colour != nil && *patch.Colour != tee.Colour {
		return domain.Tee{}, domain.NewValidationError("a tee's colour cannot be changed")
	}

	if patch.CourseRating != nil {
		tee.CourseRating = patch.CourseRating
	}
	if patch.SlopeRating != nil {
		tee.SlopeRating = patch.SlopeRating
	}

	if err = s.repo.UpdateTeeRatings(ctx, teeID, tee.CourseRating, tee.SlopeRating); err != nil {
		return domain.Tee{}, fmt.Errorf("s.repo.UpdateTeeRatings -> %w", err)
	}

	return tee, nil
}

// AddHoles creates holes on a course that may already have some. Each
// hole's yardages reference existing tees by colour and are persisted
// atomically with that hole; the list as a whole is additive, not
// all-or-nothing.
func (s *CourseService) AddHoles(ctx context.Context, courseID uint, specs []domain.HoleSpec) ([]domain.Hole, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	tees, err := s.repo.FindTees(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTees -> %w", err)
	}
	teeByColour := make(map[string]domain.Tee, len(tees))
	for _, tee := range tees {
		teeByColour[tee.Colour] = tee
	}

	created := make([]domain.Hole, 0, len(specs))
	for _, spec := range specs {
		if err = domain.ValidateHoleNumber(spec.Number); err != nil {
			return created, err
		}
		if err = domain.ValidateHolePar(spec.Par); err != nil {
			return created, err
		}

		yardages := make([]domain.Yardage, 0, len(spec.Tees))
		for _, ty := range spec.Tees {
			tee, ok := teeByColour[ty.Colour]
			if !ok {
				return created, domain.NewValidationError("course %v has no %q tee", courseID, ty.Colour)
			}
			yardages = append(yardages, domain.Yardage{TeeID: tee.ID, Yards: ty.Yards})
		}

		hole, err := s.repo.CreateHole(ctx, domain.Hole{
			CourseID: courseID,
			Number:   spec.Number,
			Par:      spec.Par,
		}, yardages)
		if err != nil {
			return created, fmt.Errorf("s.repo.CreateHole -> %w", err)
		}

		created = append(created, hole)
	}

	return created, nil
}

func (s *CourseService) GetHoles(ctx context.Context, courseID uint) ([]domain.Hole, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	holes, err := s.repo.FindHoles(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindHoles -> %w", err)
	}

	return holes, nil
}

func (s *CourseService) GetHole(ctx context.Context, courseID, holeID uint) (domain.Hole, error) {
	hole, err := s.repo.FindHoleByID(ctx, holeID)
	if err != nil {
		return domain.Hole{}, fmt.Errorf("s.repo.FindHoleByID -> %w", err)
	}
	if hole.CourseID != courseID {
		return domain.Hole{}, domain.NewNotFoundError("hole", holeID)
	}

	return hole, nil
}

// UpdateHole upserts the hole's yardages from the patch's tee entries.
// A hole's number and par are fixed once recorded; attempts to change
// either are rejected.
func (s *CourseService) UpdateHole(ctx context.Context, courseID, holeID uint, patch domain.HolePatch) (domain.Hole, error) {
	hole, err := s.GetHole(ctx, courseID, holeID)
	if err != nil {
		return domain.Hole{}, err
	}

	if patch.Number != nil && *patch.Number != hole.Number {
		return domain.Hole{}, domain.NewValidationError("a hole's number cannot be changed")
	}
	if patch.Par != nil && *patch.Par != hole.Par {
		return domain.Hole{}, domain.NewValidationError("a hole's par cannot be changed")
	}

	if len(patch.Tees) > 0 {
		tees, err := s.repo.FindTees(ctx, courseID)
		if err != nil {
			return domain.Hole{}, fmt.Errorf("s.repo.FindTees -> %w", err)
		}
		teeByColour := make(map[string]domain.Tee, len(tees))
		for _, tee := range tees {
			teeByColour[tee.Colour] = tee
		}

		yardages := make([]domain.Yardage, 0, len(patch.Tees))
		for _, ty := range patch.Tees {
			tee, ok := teeByColour[ty.Colour]
			if !ok {
				return domain.Hole{}, domain.NewValidationError("course %v has no %q tee", courseID, ty.Colour)
			}
			yardages = append(yardages, domain.Yardage{TeeID: tee.ID, Yards: ty.Yards})
		}

		if err = s.repo.UpsertYardages(ctx, holeID, yardages); err != nil {
			return domain.Hole{}, fmt.Errorf("s.repo.UpsertYardages -> %w", err)
		}
	}

	updated, err := s.repo.FindHoleByID(ctx, holeID)
	if err != nil {
		return domain.Hole{}, fmt.Errorf("s.repo.FindHoleByID -> %w", err)
	}

	return updated, nil
}

// CreateScorecard creates a course's full scorecard as one atomic unit:
// tees first, then holes, then one yardage per referenced (hole, tee
// colour) pair. A scorecard may be created exactly once per course.
func (s *CourseService) CreateScorecard(ctx context.Context, courseID uint, spec domain.ScorecardSpec) (domain.Scorecard, error) {
	course, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	holeCount, err := s.repo.CountHoles(ctx, courseID)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("s.repo.CountHoles -> %w", err)
	}
	teeCount, err := s.repo.CountTees(ctx, courseID)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("s.repo.CountTees -> %w", err)
	}
	if holeCount > 0 || teeCount > 0 {
		return domain.Scorecard{}, domain.NewConflictError("course %v already has a scorecard", courseID)
	}

	spec.Tees = dedupeTees(spec.Tees)
	if err = spec.Validate(); err != nil {
		return domain.Scorecard{}, err
	}

	tees, holes, err := s.repo.CreateScorecard(ctx, courseID, spec)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("s.repo.CreateScorecard -> %w", err)
	}

	return domain.Scorecard{Course: course, Holes: holes, Tees: tees}, nil
}

func (s *CourseService) GetScorecard(ctx context.Context, courseID uint) (domain.Scorecard, error) {
	course, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return domain.Scorecard{
		Course: course,
		Holes:  course.Holes,
		Tees:   course.Tees,
	}, nil
}

func dedupeTees(tees []domain.TeeSpec) []domain.TeeSpec {
	seen := make(map[string]bool, len(tees))
	out := make([]domain.TeeSpec, 0, len(tees))
	for _, tee := range tees {
		if seen[tee.Colour] {
			continue
		}
		seen[tee.Colour] = true
		out = append(out, tee)
	}

	return out
}
