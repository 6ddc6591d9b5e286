package repo

import (
	"context"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"gorm.io/gorm"
)

func NewConsultationLogRepo(db *gorm.DB) *ConsultationLogRepo {
	return &ConsultationLogRepo{
		Repository: orz.NewRepository[models.ConsultationLog, string](db),
	}
}

// ConsultationLogRepo 상담 이력 저장소. 이력은 추가와 삭제만 있고 수정은 없다.
type ConsultationLogRepo struct {
	orz.Repository[models.ConsultationLog, string]
}

// FindByConsultation 상담 이력 조회, 최신순. 시스템 생성 이력은 작성자 이름이 NULL이다.
func (r *ConsultationLogRepo) FindByConsultation(ctx context.Context, consultationID string) ([]models.ConsultationLogWithAdmin, error) {
	var rows []models.ConsultationLogWithAdmin
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS cl").
		Select("cl.*, a.name AS admin_name").
		Joins("LEFT JOIN TA_ADMIN_INFO AS a ON a.id = cl.admin_id").
		Where("cl.consultation_id = ?", consultationID).
		Order("cl.created_at DESC").
		Order("cl.id DESC").
		Find(&rows).Error
	return rows, err
}

// DeleteByConsultation 상담 삭제 시 하위 이력 일괄 삭제
func (r *ConsultationLogRepo) DeleteByConsultation(ctx context.Context, consultationID string) error {
	return r.GetDB(ctx).
		Where("consultation_id = ?", consultationID).
		Delete(&models.ConsultationLog{}).Error
}
