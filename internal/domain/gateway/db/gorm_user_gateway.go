package db

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"

	"gorm.io/gorm"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if err := gateway.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
