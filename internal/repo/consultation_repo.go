package repo

import (
	"context"
	"strings"
	"time"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/pkg/paging"
	"gorm.io/gorm"
)

func NewConsultationRepo(db *gorm.DB) *ConsultationRepo {
	return &ConsultationRepo{
		Repository: orz.NewRepository[models.Consultation, string](db),
	}
}

// ConsultationRepo 상담 저장소
type ConsultationRepo struct {
	orz.Repository[models.Consultation, string]
}

// pageQuery 목록/건수 조회가 반드시 같은 조건을 공유하도록 필터를 한 곳에서 조립한다.
func (r *ConsultationRepo) pageQuery(ctx context.Context, status models.ConsultationStatus, search, assignedTo string) *gorm.DB {
	db := r.GetDB(ctx).Table(r.GetTableName() + " AS c")
	if status != "" {
		db = db.Where("c.status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(c.name) LIKE ? OR LOWER(c.phone) LIKE ?", like, like)
	}
	if assignedTo != "" {
		db = db.Where("c.assigned_admin_id = ?", assignedTo)
	}
	return db
}

// FindPage 상담 목록 조회. pending 상태를 먼저, 그 안에서는 최신 등록순으로 정렬한다.
func (r *ConsultationRepo) FindPage(ctx context.Context, page int, status models.ConsultationStatus, search, assignedTo string) (*paging.Page[models.ConsultationWithAdmin], error) {
	query := r.pageQuery(ctx, status, search, assignedTo)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.ConsultationWithAdmin
	err := query.Session(&gorm.Session{}).
		Select("c.*, a.name AS admin_name").
		Joins("LEFT JOIN TA_ADMIN_INFO AS a ON a.id = c.assigned_admin_id").
		Order("CASE c.status WHEN 'pending' THEN 0 ELSE 1 END").
		Order("c.created_at DESC").
		Limit(paging.DefaultPageSize).
		Offset(paging.Offset(page, paging.DefaultPageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return paging.New(rows, total, page, paging.DefaultPageSize), nil
}

// FindWithAdmin 담당자 이름을 포함한 단건 조회
func (r *ConsultationRepo) FindWithAdmin(ctx context.Context, id string) (*models.ConsultationWithAdmin, error) {
	var row models.ConsultationWithAdmin
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS c").
		Select("c.*, a.name AS admin_name").
		Joins("LEFT JOIN TA_ADMIN_INFO AS a ON a.id = c.assigned_admin_id").
		Where("c.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus 상태 필드 갱신
func (r *ConsultationRepo) UpdateStatus(ctx context.Context, id string, status models.ConsultationStatus) error {
	return r.GetDB(ctx).Model(&models.Consultation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdateAssignedAdmin 담당자 갱신. 빈 값이면 미배정(NULL) 처리한다.
func (r *ConsultationRepo) UpdateAssignedAdmin(ctx context.Context, id string, adminID *string) error {
	return r.GetDB(ctx).Model(&models.Consultation{}).
		Where("id = ?", id).
		Update("assigned_admin_id", adminID).Error
}

// ClearCustomer 고객 삭제 시 역참조 해제
func (r *ConsultationRepo) ClearCustomer(ctx context.Context, customerID string) error {
	return r.GetDB(ctx).Model(&models.Consultation{}).
		Where("customer_id = ?", customerID).
		Update("customer_id", nil).Error
}

// StatusCounts 대시보드용 상태별 건수
type StatusCounts struct {
	Total      int64 `gorm:"column:total"`
	Pending    int64 `gorm:"column:pending"`
	Contacted  int64 `gorm:"column:contacted"`
	Contracted int64 `gorm:"column:contracted"`
}

// CountByStatus 상태별 건수 집계
func (r *ConsultationRepo) CountByStatus(ctx context.Context) (*StatusCounts, error) {
	var counts StatusCounts
	err := r.GetDB(ctx).Table(r.GetTableName()).
		Select(`COUNT(*) AS total,
			SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = 'contacted' THEN 1 ELSE 0 END) AS contacted,
			SUM(CASE WHEN status = 'contracted' THEN 1 ELSE 0 END) AS contracted`).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// FindRecent 대시보드용 최근 상담. 목록과 동일하게 pending 우선 정렬.
func (r *ConsultationRepo) FindRecent(ctx context.Context, limit int) ([]models.ConsultationWithAdmin, error) {
	var rows []models.ConsultationWithAdmin
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS c").
		Select("c.*, a.name AS admin_name").
		Joins("LEFT JOIN TA_ADMIN_INFO AS a ON a.id = c.assigned_admin_id").
		Order("CASE c.status WHEN 'pending' THEN 0 ELSE 1 END").
		Order("c.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FindCreatedSince 월별 통계 집계용 원본 행 조회
func (r *ConsultationRepo) FindCreatedSince(ctx context.Context, since time.Time) ([]models.Consultation, error) {
	var rows []models.Consultation
	err := r.GetDB(ctx).
		Where("created_at >= ?", since).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}
