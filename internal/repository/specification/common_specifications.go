package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone = ?", s.Phone)
}

type ByUserId struct {
	UserId uuid.UUID
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

type BySearchId struct {
	SearchId uuid.UUID
}

func (s BySearchId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("search_id = ?", s.SearchId)
}

type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
