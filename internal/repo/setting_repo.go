package repo

import (
	"context"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"gorm.io/gorm"
)

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{
		Repository: orz.NewRepository[models.SiteSetting, string](db),
	}
}

// SettingRepo 사이트 설정 저장소
type SettingRepo struct {
	orz.Repository[models.SiteSetting, string]
}

// FindAllOrderByKey 설정 전체 조회
func (r *SettingRepo) FindAllOrderByKey(ctx context.Context) ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	err := r.GetDB(ctx).Order("setting_key").Find(&settings).Error
	return settings, err
}

// UpdateValue 설정 값 갱신. 존재하지 않는 키는 무시된다.
func (r *SettingRepo) UpdateValue(ctx context.Context, key, value string) error {
	return r.GetDB(ctx).Model(&models.SiteSetting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value).Error
}
