package repo

import (
	"context"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"gorm.io/gorm"
)

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{
		Repository: orz.NewRepository[models.Service, string](db),
	}
}

// ServiceRepo 서비스 저장소
type ServiceRepo struct {
	orz.Repository[models.Service, string]
}

// FindAllOrdered 관리자 목록, 정렬 순서 우선
func (r *ServiceRepo) FindAllOrdered(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.GetDB(ctx).
		Order("sort_order").
		Order("id").
		Find(&services).Error
	return services, err
}

// FindActiveOrdered 공개 목록
func (r *ServiceRepo) FindActiveOrdered(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.GetDB(ctx).
		Where("is_active = ?", true).
		Order("sort_order").
		Order("id").
		Find(&services).Error
	return services, err
}

// FindActiveBySlug 공개 상세 조회
func (r *ServiceRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	err := r.GetDB(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// SetActive 노출 여부 변경
func (r *ServiceRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.GetDB(ctx).Model(&models.Service{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// FindFeatures 정렬 순서대로 특징 조회
func (r *ServiceRepo) FindFeatures(ctx context.Context, serviceID string) ([]models.ServiceFeature, error) {
	var features []models.ServiceFeature
	err := r.GetDB(ctx).
		Where("service_id = ?", serviceID).
		Order("sort_order").
		Find(&features).Error
	return features, err
}

// ReplaceFeatures 특징 전체 교체. 트랜잭션 컨텍스트 안에서 호출해야 한다.
func (r *ServiceRepo) ReplaceFeatures(ctx context.Context, serviceID string, features []models.ServiceFeature) error {
	db := r.GetDB(ctx)
	if err := db.Where("service_id = ?", serviceID).Delete(&models.ServiceFeature{}).Error; err != nil {
		return err
	}
	for i := range features {
		features[i].ServiceID = serviceID
		features[i].SortOrder = i
		if err := db.Create(&features[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
