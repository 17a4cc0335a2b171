package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrHoleNotFound    = errors.New("hole not found")
	ErrTeeNotFound     = errors.New("tee not found")
	ErrTeeColourExists = errors.New("tee colour already exists for this course")
	ErrYardageExists   = errors.New("yardage already exists for this tee and hole")
)

type Course struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Location string `gorm:"not null"`

	Holes []Hole `gorm:"foreignKey:CourseID"`
	Tees  []Tee  `gorm:"foreignKey:CourseID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Hole struct {
	ID uint `gorm:"primaryKey"`

	CourseID uint `gorm:"not null;index"`
	Number   int  `gorm:"not null"`
	Par      int  `gorm:"not null"`

	Yardages []Yardage `gorm:"foreignKey:HoleID"`
}

type Tee struct {
	ID uint `gorm:"primaryKey"`

	CourseID uint   `gorm:"not null;uniqueIndex:idx_tees_course_colour"`
	Colour   string `gorm:"not null;uniqueIndex:idx_tees_course_colour"`

	CourseRating *float64
	SlopeRating  *float64

	Yardages []Yardage `gorm:"foreignKey:TeeID"`
}

// Yardage is the association row between one tee and one hole. The
// composite primary key makes the at-most-one-per-pair invariant
// structural.
type Yardage struct {
	TeeID  uint `gorm:"primaryKey;autoIncrement:false"`
	HoleID uint `gorm:"primaryKey;autoIncrement:false"`

	Yards int `gorm:"column:yardage;not null"`

	Tee Tee `gorm:"foreignKey:TeeID"`
}

// ScorecardYardage links a hole (by number) to a tee (by colour) while
// the scorecard rows are still being created and have no ids yet.
type ScorecardYardage struct {
	HoleNumber int
	Colour     string
	Yards      int
}

type CourseDAO struct {
	db *gorm.DB
}

func NewCourseDAO(db *gorm.DB) *CourseDAO {
	return &CourseDAO{
		db: db,
	}
}

func (d *CourseDAO) Insert(ctx context.Context, course Course) (Course, error) {
	result := d.db.WithContext(ctx).Create(&course)
	if result.Error != nil {
		return Course{}, result.Error
	}

	return course, nil
}

func (d *CourseDAO) FindByID(ctx context.Context, id uint) (Course, error) {
	var course Course

	result := d.db.WithContext(ctx).
		Preload("Holes", func(db *gorm.DB) *gorm.DB {
			return db.Order("holes.number")
		}).
		Preload("Holes.Yardages.Tee").
		Preload("Tees.Yardages").
		First(&course, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Course{}, ErrCourseNotFound
		}

		return Course{}, result.Error
	}

	return course, nil
}

func (d *CourseDAO) List(ctx context.Context, offset, limit int) ([]Course, error) {
	var courses []Course

	result := d.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&courses)
	if result.Error != nil {
		return nil, result.Error
	}

	return courses, nil
}

func (d *CourseDAO) Update(ctx context.Context, id uint, values map[string]any) error {
	result := d.db.WithContext(ctx).Model(&Course{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func (d *CourseDAO) CountHoles(ctx context.Context, courseID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Hole{}).Where("course_id = ?", courseID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *CourseDAO) CountTees(ctx context.Context, courseID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Tee{}).Where("course_id = ?", courseID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *CourseDAO) InsertTee(ctx context.Context, tee Tee) (Tee, error) {
	result := d.db.WithContext(ctx).Create(&tee)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_tees_course_colour") {
			return Tee{}, ErrTeeColourExists
		}

		return Tee{}, result.Error
	}

	return tee, nil
}

func (d *CourseDAO) FindTees(ctx context.Context, courseID uint) ([]Tee, error) {
	var tees []Tee

	result := d.db.WithContext(ctx).Where("course_id = ?", courseID).Order("id").Find(&tees)
	if result.Error != nil {
		return nil, result.Error
	}

	return tees, nil
}

func (d *CourseDAO) FindTeeByID(ctx context.Context, id uint) (Tee, error) {
	var tee Tee

	result := d.db.WithContext(ctx).Preload("Yardages").First(&tee, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tee{}, ErrTeeNotFound
		}

		return Tee{}, result.Error
	}

	return tee, nil
}

func (d *CourseDAO) UpdateTee(ctx context.Context, id uint, values map[string]any) error {
	result := d.db.WithContext(ctx).Model(&Tee{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeeNotFound
	}

	return nil
}

// InsertHole creates a hole together with its yardage rows in one
// transaction; either all rows land or none do.
func (d *CourseDAO) InsertHole(ctx context.Context, hole Hole, yardages []Yardage) (Hole, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hole).Error; err != nil {
			return err
		}

		for i := range yardages {
			yardages[i].HoleID = hole.ID
			yardages[i].Tee = Tee{}
		}
		if len(yardages) > 0 {
			if err := tx.Create(&yardages).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err, "yardages_pkey") {
			return Hole{}, ErrYardageExists
		}

		return Hole{}, err
	}

	hole.Yardages = yardages

	return hole, nil
}

func (d *CourseDAO) FindHoles(ctx context.Context, courseID uint) ([]Hole, error) {
	var holes []Hole

	result := d.db.WithContext(ctx).Where("course_id = ?", courseID).Order("number").Find(&holes)
	if result.Error != nil {
		return nil, result.Error
	}

	return holes, nil
}

func (d *CourseDAO) FindHoleByID(ctx context.Context, id uint) (Hole, error) {
	var hole Hole

	result := d.db.WithContext(ctx).Preload("Yardages.Tee").First(&hole, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hole{}, ErrHoleNotFound
		}

		return Hole{}, result.Error
	}

	return hole, nil
}

// UpsertYardages writes the given yardage rows, updating the stored
// distance when the (tee, hole) pair already exists.
func (d *CourseDAO) UpsertYardages(ctx context.Context, yardages []Yardage) error {
	if len(yardages) == 0 {
		return nil
	}

	for i := range yardages {
		yardages[i].Tee = Tee{}
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tee_id"}, {Name: "hole_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"yardage"}),
	}).Create(&yardages)

	return result.Error
}

// CreateScorecard persists a course's full scorecard in one
// transaction: tees first, then holes, then one yardage row per link,
// resolving colours and hole numbers against the rows just created.
func (d *CourseDAO) CreateScorecard(ctx context.Context, courseID uint, tees []Tee, holes []Hole, links []ScorecardYardage) ([]Tee, []Hole, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range tees {
			tees[i].CourseID = courseID
		}
		if err := tx.Create(&tees).Error; err != nil {
			return err
		}

		teeByColour := make(map[string]uint, len(tees))
		for _, tee := range tees {
			teeByColour[tee.Colour] = tee.ID
		}

		for i := range holes {
			holes[i].CourseID = courseID
		}
		if err := tx.Create(&holes).Error; err != nil {
			return err
		}

		holeByNumber := make(map[int]uint, len(holes))
		for _, hole := range holes {
			holeByNumber[hole.Number] = hole.ID
		}

		yardages := make([]Yardage, 0, len(links))
		for _, link := range links {
			yardages = append(yardages, Yardage{
				TeeID:  teeByColour[link.Colour],
				HoleID: holeByNumber[link.HoleNumber],
				Yards:  link.Yards,
			})
		}
		if len(yardages) > 0 {
			if err := tx.Create(&yardages).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err, "idx_tees_course_colour") {
			return nil, nil, ErrTeeColourExists
		}
		if isUniqueViolation(err, "yardages_pkey") {
			return nil, nil, ErrYardageExists
		}

		return nil, nil, err
	}

	return tees, holes, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, constraint)
}
