package repo

import (
	"context"
	"strings"

	"github.com/go-orz/orz"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/pkg/paging"
	"gorm.io/gorm"
)

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{
		Repository: orz.NewRepository[models.Portfolio, string](db),
	}
}

// PortfolioRepo 시공사례 저장소
type PortfolioRepo struct {
	orz.Repository[models.Portfolio, string]
}

func (r *PortfolioRepo) pageQuery(ctx context.Context, search, serviceID string) *gorm.DB {
	db := r.GetDB(ctx).Table(r.GetTableName() + " AS p")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(p.title) LIKE ? OR LOWER(p.location) LIKE ?", like, like)
	}
	if serviceID != "" {
		db = db.Where("p.service_id = ?", serviceID)
	}
	return db
}

// FindPage 관리자 목록 조회
func (r *PortfolioRepo) FindPage(ctx context.Context, page int, search, serviceID string) (*paging.Page[models.PortfolioWithService], error) {
	query := r.pageQuery(ctx, search, serviceID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.PortfolioWithService
	err := query.Session(&gorm.Session{}).
		Select("p.*, s.title AS service_name").
		Joins("LEFT JOIN TA_SERVICE_INFO AS s ON s.id = p.service_id").
		Order("p.created_at DESC").
		Limit(paging.DefaultPageSize).
		Offset(paging.Offset(page, paging.DefaultPageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return paging.New(rows, total, page, paging.DefaultPageSize), nil
}

// FindWithService 서비스명을 포함한 단건 조회
func (r *PortfolioRepo) FindWithService(ctx context.Context, id string) (*models.PortfolioWithService, error) {
	var row models.PortfolioWithService
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS p").
		Select("p.*, s.title AS service_name").
		Joins("LEFT JOIN TA_SERVICE_INFO AS s ON s.id = p.service_id").
		Where("p.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindActiveWithService 공개 페이지용 단건 조회, 비활성은 제외
func (r *PortfolioRepo) FindActiveWithService(ctx context.Context, id string) (*models.PortfolioWithService, error) {
	var row models.PortfolioWithService
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS p").
		Select("p.*, s.title AS service_name").
		Joins("LEFT JOIN TA_SERVICE_INFO AS s ON s.id = p.service_id").
		Where("p.id = ? AND p.is_active = ?", id, true).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindFeatured 히어로 슬라이더용 대표 시공사례, 완공일 최신순
func (r *PortfolioRepo) FindFeatured(ctx context.Context, limit int) ([]models.PortfolioWithService, error) {
	var rows []models.PortfolioWithService
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS p").
		Select("p.*, s.title AS service_name").
		Joins("LEFT JOIN TA_SERVICE_INFO AS s ON s.id = p.service_id").
		Where("p.is_featured = ? AND p.is_active = ?", true, true).
		Order("p.completed_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FindActive 공개 목록, 완공일 최신순
func (r *PortfolioRepo) FindActive(ctx context.Context) ([]models.PortfolioWithService, error) {
	var rows []models.PortfolioWithService
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS p").
		Select("p.*, s.title AS service_name").
		Joins("LEFT JOIN TA_SERVICE_INFO AS s ON s.id = p.service_id").
		Where("p.is_active = ?", true).
		Order("p.completed_at DESC").
		Find(&rows).Error
	return rows, err
}

// FindActiveByService 서비스별 관련 시공사례
func (r *PortfolioRepo) FindActiveByService(ctx context.Context, serviceID string, limit int) ([]models.PortfolioWithService, error) {
	var rows []models.PortfolioWithService
	err := r.GetDB(ctx).Table(r.GetTableName()+" AS p").
		Select("p.*, s.title AS service_name").
		Joins("LEFT JOIN TA_SERVICE_INFO AS s ON s.id = p.service_id").
		Where("p.service_id = ? AND p.is_active = ?", serviceID, true).
		Order("p.completed_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FindPrev 이전 시공사례. ULID는 생성 시각순으로 정렬되므로 id 비교가 곧 시간순 이동이다.
func (r *PortfolioRepo) FindPrev(ctx context.Context, id string) (*models.PortfolioSummary, error) {
	var row models.PortfolioSummary
	err := r.GetDB(ctx).Table(r.GetTableName()).
		Select("id, title").
		Where("id < ? AND is_active = ?", id, true).
		Order("id DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, nil
	}
	return &row, nil
}

// FindNext 다음 시공사례
func (r *PortfolioRepo) FindNext(ctx context.Context, id string) (*models.PortfolioSummary, error) {
	var row models.PortfolioSummary
	err := r.GetDB(ctx).Table(r.GetTableName()).
		Select("id, title").
		Where("id > ? AND is_active = ?", id, true).
		Order("id ASC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, nil
	}
	return &row, nil
}

// SetFeatured 대표 여부 변경
func (r *PortfolioRepo) SetFeatured(ctx context.Context, id string, featured bool) error {
	return r.GetDB(ctx).Model(&models.Portfolio{}).
		Where("id = ?", id).
		Update("is_featured", featured).Error
}

// SetActive 노출 여부 변경
func (r *PortfolioRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.GetDB(ctx).Model(&models.Portfolio{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// CountAll 대시보드용 전체 건수
func (r *PortfolioRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.GetDB(ctx).Model(&models.Portfolio{}).Count(&count).Error
	return count, err
}

// FindImages 정렬 순서대로 이미지 조회
func (r *PortfolioRepo) FindImages(ctx context.Context, portfolioID string) ([]models.PortfolioImage, error) {
	var images []models.PortfolioImage
	err := r.GetDB(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("sort_order").
		Find(&images).Error
	return images, err
}

// ReplaceImages 이미지 전체 교체. 트랜잭션 컨텍스트 안에서 호출해야 한다.
func (r *PortfolioRepo) ReplaceImages(ctx context.Context, portfolioID string, images []models.PortfolioImage) error {
	db := r.GetDB(ctx)
	if err := db.Where("portfolio_id = ?", portfolioID).Delete(&models.PortfolioImage{}).Error; err != nil {
		return err
	}
	for i := range images {
		images[i].PortfolioID = portfolioID
		images[i].SortOrder = i
		if err := db.Create(&images[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindTags 연결된 태그 조회
func (r *PortfolioRepo) FindTags(ctx context.Context, portfolioID string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.GetDB(ctx).Table("TA_TAG_INFO AS t").
		Select("t.*").
		Joins("JOIN TA_PORTFOLIO_TAG_INFO AS pt ON pt.tag_id = t.id").
		Where("pt.portfolio_id = ?", portfolioID).
		Find(&tags).Error
	return tags, err
}

// ReplaceTags 태그 연결 전체 교체. 트랜잭션 컨텍스트 안에서 호출해야 한다.
func (r *PortfolioRepo) ReplaceTags(ctx context.Context, portfolioID string, tagIDs []string) error {
	db := r.GetDB(ctx)
	if err := db.Where("portfolio_id = ?", portfolioID).Delete(&models.PortfolioTag{}).Error; err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		link := models.PortfolioTag{PortfolioID: portfolioID, TagID: tagID}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
