package repository

import (
	"errors"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type TagRepository interface {
	FindOrCreateByNames(names []string) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreateByNames 이름으로 태그를 조회하고 없으면 생성한다
func (r *tagRepository) FindOrCreateByNames(names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}

		var tag model.Tag
		err := r.db.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = model.Tag{Name: name}
			if err := r.db.Create(&tag).Error; err != nil {
				logger.Error("Failed to create tag in database", err, map[string]interface{}{
					"name": name,
				})
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}
	return tags, nil
}
