package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkslog/scorecard-api/internal/domain"
	"github.com/linkslog/scorecard-api/internal/repository/dao"
)

type CourseDAO interface {
	Insert(ctx context.Context, course dao.Course) (dao.Course, error)
	FindByID(ctx context.Context, id uint) (dao.Course, error)
	List(ctx context.Context, offset, limit int) ([]dao.Course, error)
	Update(ctx context.Context, id uint, values map[string]any) error
	CountHoles(ctx context.Context, courseID uint) (int64, error)
	CountTees(ctx context.Context, courseID uint) (int64, error)
	InsertTee(ctx context.Context, tee dao.Tee) (dao.Tee, error)
	FindTees(ctx context.Context, courseID uint) ([]dao.Tee, error)
	FindTeeByID(ctx context.Context, id uint) (dao.Tee, error)
	UpdateTee(ctx context.Context, id uint, values map[string]any) error
	InsertHole(ctx context.Context, hole dao.Hole, yardages []dao.Yardage) (dao.Hole, error)
	FindHoles(ctx context.Context, courseID uint) ([]dao.Hole, error)
	FindHoleByID(ctx context.Context, id uint) (dao.Hole, error)
	UpsertYardages(ctx context.Context, yardages []dao.Yardage) error
	CreateScorecard(ctx context.Context, courseID uint, tees []dao.Tee, holes []dao.Hole, links []dao.ScorecardYardage) ([]dao.Tee, []dao.Hole, error)
}

type CourseRepository struct {
	dao CourseDAO
}

func NewCourseRepository(dao CourseDAO) *CourseRepository {
	return &CourseRepository{
		dao: dao,
	}
}

func (r *CourseRepository) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	created, err := r.dao.Insert(ctx, dao.Course{
		Name:     course.Name,
		Location: course.Location,
	})
	if err != nil {
		return domain.Course{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return courseDAOToDomain(created), nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (domain.Course, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrCourseNotFound) {
			return domain.Course{}, domain.NewNotFoundError("course", id)
		}

		return domain.Course{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return courseDAOToDomain(found), nil
}

func (r *CourseRepository) List(ctx context.Context, offset, limit int) ([]domain.Course, error) {
	found, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	courses := make([]domain.Course, len(found))
	for i, course := range found {
		courses[i] = courseDAOToDomain(course)
	}

	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, id uint, name, location string) error {
	values := map[string]any{"name": name, "location": location}
	if err := r.dao.Update(ctx, id, values); err != nil {
		if errors.Is(err, dao.ErrCourseNotFound) {
			return domain.NewNotFoundError("course", id)
		}

		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *CourseRepository) CountHoles(ctx context.Context, courseID uint) (int64, error) {
	count, err := r.dao.CountHoles(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountHoles -> %w", err)
	}

	return count, nil
}

func (r *CourseRepository) CountTees(ctx context.Context, courseID uint) (int64, error) {
	count, err := r.dao.CountTees(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountTees -> %w", err)
	}

	return count, nil
}

func (r *CourseRepository) CreateTee(ctx context.Context, tee domain.Tee) (domain.Tee, error) {
	created, err := r.dao.InsertTee(ctx, dao.Tee{
		CourseID:     tee.CourseID,
		Colour:       tee.Colour,
		CourseRating: tee.CourseRating,
		SlopeRating:  tee.SlopeRating,
	})
	if err != nil {
		if errors.Is(err, dao.ErrTeeColourExists) {
			return domain.Tee{}, domain.NewConflictError("course %v already has a %q tee", tee.CourseID, tee.Colour)
		}

		return domain.Tee{}, fmt.Errorf("r.dao.InsertTee -> %w", err)
	}

	return teeDAOToDomain(created), nil
}

func (r *CourseRepository) FindTees(ctx context.Context, courseID uint) ([]domain.Tee, error) {
	found, err := r.dao.FindTees(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTees -> %w", err)
	}

	tees := make([]domain.Tee, len(found))
	for i, tee := range found {
		tees[i] = teeDAOToDomain(tee)
	}

	return tees, nil
}

func (r *CourseRepository) FindTeeByID(ctx context.Context, id uint) (domain.Tee, error) {
	found, err := r.dao.FindTeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrTeeNotFound) {
			return domain.Tee{}, domain.NewNotFoundError("tee", id)
		}

		return domain.Tee{}, fmt.Errorf("r.dao.FindTeeByID -> %w", err)
	}

	return teeDAOToDomain(found), nil
}

// UpdateTeeRatings rewrites both rating columns with the given values;
// the caller merges partial input beforehand.
func (r *CourseRepository) UpdateTeeRatings(ctx context.Context, id uint, courseRating, slopeRating *float64) error {
	values := map[string]any{"course_rating": courseRating, "slope_rating": slopeRating}
	if err := r.dao.UpdateTee(ctx, id, values); err != nil {
		if errors.Is(err, dao.ErrTeeNotFound) {
			return domain.NewNotFoundError("tee", id)
		}

		return fmt.Errorf("r.dao.UpdateTee -> %w", err)
	}

	return nil
}

// CreateHole persists a hole and its yardage rows atomically. Yardages
// must already be resolved to tee ids by the caller.
func (r *CourseRepository) CreateHole(ctx context.Context, hole domain.Hole, yardages []domain.Yardage) (domain.Hole, error) {
	daoYardages := make([]dao.Yardage, len(yardages))
	for i, y := range yardages {
		daoYardages[i] = dao.Yardage{TeeID: y.TeeID, Yards: y.Yards}
	}

	created, err := r.dao.InsertHole(ctx, dao.Hole{
		CourseID: hole.CourseID,
		Number:   hole.Number,
		Par:      hole.Par,
	}, daoYardages)
	if err != nil {
		if errors.Is(err, dao.ErrYardageExists) {
			return domain.Hole{}, domain.NewConflictError("a yardage already exists for one of the given tee and hole pairs")
		}

		return domain.Hole{}, fmt.Errorf("r.dao.InsertHole -> %w", err)
	}

	return holeDAOToDomain(created), nil
}

func (r *CourseRepository) FindHoles(ctx context.Context, courseID uint) ([]domain.Hole, error) {
	found, err := r.dao.FindHoles(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHoles -> %w", err)
	}

	holes := make([]domain.Hole, len(found))
	for i, hole := range found {
		holes[i] = holeDAOToDomain(hole)
	}

	return holes, nil
}

func (r *CourseRepository) FindHoleByID(ctx context.Context, id uint) (domain.Hole, error) {
	found, err := r.dao.FindHoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrHoleNotFound) {
			return domain.Hole{}, domain.NewNotFoundError("hole", id)
		}

		return domain.Hole{}, fmt.Errorf("r.dao.FindHoleByID -> %w", err)
	}

	return holeDAOToDomain(found), nil
}

// UpsertYardages writes resolved yardage rows, replacing the stored
// distance for pairs that already exist.
func (r *CourseRepository) UpsertYardages(ctx context.Context, holeID uint, yardages []domain.Yardage) error {
	daoYardages := make([]dao.Yardage, len(yardages))
	for i, y := range yardages {
		daoYardages[i] = dao.Yardage{TeeID: y.TeeID, HoleID: holeID, Yards: y.Yards}
	}

	if err := r.dao.UpsertYardages(ctx, daoYardages); err != nil {
		return fmt.Errorf("r.dao.UpsertYardages -> %w", err)
	}

	return nil
}

// CreateScorecard persists a validated scorecard spec in one
// transaction and returns the created aggregate.
func (r *CourseRepository) CreateScorecard(ctx context.Context, courseID uint, spec domain.ScorecardSpec) ([]domain.Tee, []domain.Hole, error) {
	tees := make([]dao.Tee, len(spec.Tees))
	for i, tee := range spec.Tees {
		tees[i] = dao.Tee{
			Colour:       tee.Colour,
			CourseRating: tee.CourseRating,
			SlopeRating:  tee.SlopeRating,
		}
	}

	holes := make([]dao.Hole, len(spec.Holes))
	var links []dao.ScorecardYardage
	for i, hole := range spec.Holes {
		holes[i] = dao.Hole{Number: hole.Number, Par: hole.Par}
		for _, ty := range hole.Tees {
			links = append(links, dao.ScorecardYardage{
				HoleNumber: hole.Number,
				Colour:     ty.Colour,
				Yards:      ty.Yards,
			})
		}
	}

	createdTees, createdHoles, err := r.dao.CreateScorecard(ctx, courseID, tees, holes, links)
	if err != nil {
		if errors.Is(err, dao.ErrTeeColourExists) {
			return nil, nil, domain.NewConflictError("course %v already has a tee with one of the given colours", courseID)
		}
		if errors.Is(err, dao.ErrYardageExists) {
			return nil, nil, domain.NewConflictError("a yardage already exists for one of the given tee and hole pairs")
		}

		return nil, nil, fmt.Errorf("r.dao.CreateScorecard -> %w", err)
	}

	domainTees := make([]domain.Tee, len(createdTees))
	for i, tee := range createdTees {
		domainTees[i] = teeDAOToDomain(tee)
	}
	domainHoles := make([]domain.Hole, len(createdHoles))
	for i, hole := range createdHoles {
		domainHoles[i] = holeDAOToDomain(hole)
	}

	return domainTees, domainHoles, nil
}

func courseDAOToDomain(c dao.Course) domain.Course {
	course := domain.Course{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, hole := range c.Holes {
		course.Holes = append(course.Holes, holeDAOToDomain(hole))
	}
	for _, tee := range c.Tees {
		course.Tees = append(course.Tees, teeDAOToDomain(tee))
	}

	return course
}

func holeDAOToDomain(h dao.Hole) domain.Hole {
	hole := domain.Hole{
		ID:       h.ID,
		CourseID: h.CourseID,
		Number:   h.Number,
		Par:      h.Par,
	}
	for _, y := range h.Yardages {
		hole.Yardages = append(hole.Yardages, domain.Yardage{
			TeeID:  y.TeeID,
			HoleID: y.HoleID,
			Yards:  y.Yards,
			Colour: y.Tee.Colour,
		})
	}

	return hole
}

func teeDAOToDomain(t dao.Tee) domain.Tee {
	tee := domain.Tee{
		ID:           t.ID,
		CourseID:     t.CourseID,
		Colour:       t.Colour,
		CourseRating: t.CourseRating,
		SlopeRating:  t.SlopeRating,
	}
	for _, y := range t.Yardages {
		tee.Yardages = append(tee.Yardages, domain.Yardage{
			TeeID:  y.TeeID,
			HoleID: y.HoleID,
			Yards:  y.Yards,
		})
	}

	return tee
}
