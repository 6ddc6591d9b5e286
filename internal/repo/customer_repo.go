package repo

import (
	"context"
	"strings"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/pkg/paging"
	"gorm.io/gorm"
)

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{
		Repository: orz.NewRepository[models.Customer, string](db),
	}
}

// CustomerRepo 고객 저장소
type CustomerRepo struct {
	orz.Repository[models.Customer, string]
}

func (r *CustomerRepo) pageQuery(ctx context.Context, search string) *gorm.DB {
	db := r.GetDB(ctx).Table(r.GetTableName() + " AS c")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(c.name) LIKE ? OR LOWER(c.phone) LIKE ? OR LOWER(c.email) LIKE ?", like, like, like)
	}
	return db
}

// FindPage 고객 목록 조회, 상담 건수 포함
func (r *CustomerRepo) FindPage(ctx context.Context, page int, search string) (*paging.Page[models.CustomerWithCount], error) {
	query := r.pageQuery(ctx, search)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.CustomerWithCount
	err := query.Session(&gorm.Session{}).
		Select("c.*, (SELECT COUNT(*) FROM TA_CONSULTATION_INFO WHERE customer_id = c.id) AS consultation_count").
		Order("c.created_at DESC").
		Limit(paging.DefaultPageSize).
		Offset(paging.Offset(page, paging.DefaultPageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return paging.New(rows, total, page, paging.DefaultPageSize), nil
}

// CountAll 대시보드용 전체 고객 수
func (r *CustomerRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.GetDB(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}
