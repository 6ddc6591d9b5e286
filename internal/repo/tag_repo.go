package repo

import (
	"context"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"gorm.io/gorm"
)

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{
		Repository: orz.NewRepository[models.Tag, string](db),
	}
}

// TagRepo 태그 저장소
type TagRepo struct {
	orz.Repository[models.Tag, string]
}

// FindAllOrderByName 태그 목록, 이름순
func (r *TagRepo) FindAllOrderByName(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.GetDB(ctx).Order("name").Find(&tags).Error
	return tags, err
}

// UpdateNameSlug 이름/슬러그 수정
func (r *TagRepo) UpdateNameSlug(ctx context.Context, id, name, slug string) error {
	return r.GetDB(ctx).Model(&models.Tag{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name": name,
			"slug": slug,
		}).Error
}

// DeleteLinks 태그 삭제 시 시공사례 연결 제거
func (r *TagRepo) DeleteLinks(ctx context.Context, tagID string) error {
	return r.GetDB(ctx).
		Where("tag_id = ?", tagID).
		Delete(&models.PortfolioTag{}).Error
}
