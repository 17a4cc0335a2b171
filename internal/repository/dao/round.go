package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrRoundNotFound = errors.New("round not found")

type Round struct {
	ID uint `gorm:"primaryKey"`

	UserID   uint `gorm:"not null;index"`
	CourseID uint `gorm:"not null;index"`
	TeeID    uint `gorm:"not null"`

	Date time.Time `gorm:"not null"`

	ScoreByHole IntArray `gorm:"type:integer[];not null"`
	Putts       IntArray `gorm:"type:integer[]"`
	Fairways    IntArray `gorm:"type:integer[]"`
	GIR         IntArray `gorm:"column:gir;type:integer[]"`

	Tee Tee `gorm:"foreignKey:TeeID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RoundDAO struct {
	db *gorm.DB
}

func NewRoundDAO(db *gorm.DB) *RoundDAO {
	return &RoundDAO{
		db: db,
	}
}

func (d *RoundDAO) Insert(ctx context.Context, round Round) (Round, error) {
	result := d.db.WithContext(ctx).Create(&round)
	if result.Error != nil {
		return Round{}, result.Error
	}

	return round, nil
}

func (d *RoundDAO) FindByID(ctx context.Context, id uint) (Round, error) {
	var round Round

	result := d.db.WithContext(ctx).Preload("Tee").First(&round, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Round{}, ErrRoundNotFound
		}

		return Round{}, result.Error
	}

	return round, nil
}

func (d *RoundDAO) FindByUserID(ctx context.Context, userID uint) ([]Round, error) {
	var rounds []Round

	result := d.db.WithContext(ctx).
		Preload("Tee").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}

	return rounds, nil
}

func (d *RoundDAO) Update(ctx context.Context, id uint, values map[string]any) error {
	result := d.db.WithContext(ctx).Model(&Round{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoundNotFound
	}

	return nil
}
