package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID uint `gorm:"primaryKey"`

	Name       string    `gorm:"not null"`
	DateJoined time.Time `gorm:"type:date;not null"`

	Rounds []Round `gorm:"foreignKey:UserID"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).
		Preload("Rounds", func(db *gorm.DB) *gorm.DB {
			return db.Order("rounds.date DESC, rounds.id DESC")
		}).
		Preload("Rounds.Tee").
		First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}
