package service

import (
	"context"
	"errors"

	"github.com/go-orz/orz"
	"github.com/oklog/ulid/v2"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/repo"
	"github.com/tilemart/tilemart/internal/xe"
	"github.com/tilemart/tilemart/pkg/paging"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 히어로 슬라이더에 노출하는 대표 시공사례 수
const featuredLimit = 6

// PortfolioService 시공사례 서비스. 이미지/태그는 수정 시 전체 교체한다.
type PortfolioService struct {
	logger *zap.Logger

	*orz.Service
	portfolioRepo *repo.PortfolioRepo
}

// NewPortfolioService 시공사례 서비스 생성
func NewPortfolioService(logger *zap.Logger, db *gorm.DB) *PortfolioService {
	return &PortfolioService{
		logger:        logger,
		Service:       orz.NewService(db),
		portfolioRepo: repo.NewPortfolioRepo(db),
	}
}

// PortfolioImageInput 저장할 이미지. 순서는 배열 순서를 따른다.
type PortfolioImageInput struct {
	URL string `json:"url" validate:"required"`
	Alt string `json:"alt"`
}

// PortfolioRequest 시공사례 등록/수정 요청
type PortfolioRequest struct {
	ServiceID    *string               `json:"service_id"`
	Title        string                `json:"title" validate:"required"`
	Slug         string                `json:"slug" validate:"required"`
	Description  string                `json:"description"`
	Location     string                `json:"location"`
	Area         string                `json:"area"`
	Cost         string                `json:"cost"`
	Duration     string                `json:"duration"`
	ThumbnailURL string                `json:"thumbnail_url"`
	IsFeatured   bool                  `json:"is_featured"`
	IsActive     *bool                 `json:"is_active"`
	CompletedAt  *datatypes.Date       `json:"completed_at"`
	Images       []PortfolioImageInput `json:"images"`
	TagIDs       []string              `json:"tag_ids"`
}

func (req *PortfolioRequest) toModel(id string) models.Portfolio {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return models.Portfolio{
		ID:           id,
		ServiceID:    req.ServiceID,
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Location:     req.Location,
		Area:         req.Area,
		Cost:         req.Cost,
		Duration:     req.Duration,
		ThumbnailURL: req.ThumbnailURL,
		IsFeatured:   req.IsFeatured,
		IsActive:     active,
		CompletedAt:  req.CompletedAt,
	}
}

func (req *PortfolioRequest) toImages() []models.PortfolioImage {
	images := make([]models.PortfolioImage, 0, len(req.Images))
	for _, in := range req.Images {
		images = append(images, models.PortfolioImage{
			ID:       ulid.Make().String(),
			ImageURL: in.URL,
			AltText:  in.Alt,
		})
	}
	return images
}

// Create 시공사례 등록. 본문/이미지/태그 연결을 한 트랜잭션으로 저장한다.
func (s *PortfolioService) Create(ctx context.Context, claims *SessionClaims, req PortfolioRequest) (string, error) {
	if claims == nil {
		return "", xe.ErrInvalidToken
	}

	id := ulid.Make().String()
	portfolio := req.toModel(id)

	err := s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.portfolioRepo.Create(ctx, &portfolio); err != nil {
			return err
		}
		if err := s.portfolioRepo.ReplaceImages(ctx, id, req.toImages()); err != nil {
			return err
		}
		return s.portfolioRepo.ReplaceTags(ctx, id, req.TagIDs)
	})
	if err != nil {
		s.logger.Error("failed to create portfolio", zap.Error(err))
		return "", xe.ErrPortfolioCreate
	}
	return id, nil
}

// Update 시공사례 수정. 스칼라 필드는 전체 교체, 이미지/태그는 삭제 후 재삽입한다.
// 중간에 실패하면 트랜잭션 롤백으로 기존 데이터가 그대로 남는다.
func (s *PortfolioService) Update(ctx context.Context, claims *SessionClaims, id string, req PortfolioRequest) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	err := s.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.portfolioRepo.FindById(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return xe.ErrPortfolioNotFound
			}
			return err
		}

		portfolio := req.toModel(id)
		portfolio.CreatedAt = existing.CreatedAt
		if err := s.portfolioRepo.Save(ctx, &portfolio); err != nil {
			return err
		}
		if err := s.portfolioRepo.ReplaceImages(ctx, id, req.toImages()); err != nil {
			return err
		}
		return s.portfolioRepo.ReplaceTags(ctx, id, req.TagIDs)
	})
	if err != nil {
		var oe *orz.Error
		if errors.As(err, &oe) {
			return err
		}
		s.logger.Error("failed to update portfolio", zap.String("portfolio_id", id), zap.Error(err))
		return xe.ErrPortfolioUpdate
	}
	return nil
}

// Delete 시공사례 삭제. 이미지와 태그 연결을 함께 제거한다.
func (s *PortfolioService) Delete(ctx context.Context, claims *SessionClaims, id string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.portfolioRepo.ReplaceImages(ctx, id, nil); err != nil {
			return err
		}
		if err := s.portfolioRepo.ReplaceTags(ctx, id, nil); err != nil {
			return err
		}
		return s.portfolioRepo.DeleteById(ctx, id)
	})
}

// ToggleFeatured 대표 여부 전환. 이력은 남기지 않는다.
func (s *PortfolioService) ToggleFeatured(ctx context.Context, claims *SessionClaims, id string, featured bool) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}
	return s.portfolioRepo.SetFeatured(ctx, id, featured)
}

// ToggleActive 노출 여부 전환
func (s *PortfolioService) ToggleActive(ctx context.Context, claims *SessionClaims, id string, active bool) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}
	return s.portfolioRepo.SetActive(ctx, id, active)
}

// PortfolioQuery 관리자 목록 필터
type PortfolioQuery struct {
	Page      int
	Search    string // 제목 또는 위치 부분 일치
	ServiceID string
}

// FindPage 관리자 목록 조회
func (s *PortfolioService) FindPage(ctx context.Context, q PortfolioQuery) (*paging.Page[models.PortfolioWithService], error) {
	return s.portfolioRepo.FindPage(ctx, q.Page, q.Search, q.ServiceID)
}

// PortfolioDetail 시공사례 상세
type PortfolioDetail struct {
	Portfolio *models.PortfolioWithService `json:"portfolio"`
	Images    []models.PortfolioImage      `json:"images"`
	Tags      []models.Tag                 `json:"tags"`
}

// Get 관리자 상세 조회
func (s *PortfolioService) Get(ctx context.Context, id string) (*PortfolioDetail, error) {
	portfolio, err := s.portfolioRepo.FindWithService(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrPortfolioNotFound
		}
		return nil, err
	}
	return s.loadDetail(ctx, portfolio)
}

// GetPublic 공개 상세 조회. 비활성 시공사례는 찾을 수 없음으로 처리한다.
func (s *PortfolioService) GetPublic(ctx context.Context, id string) (*PortfolioDetail, error) {
	portfolio, err := s.portfolioRepo.FindActiveWithService(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrPortfolioNotFound
		}
		return nil, err
	}
	return s.loadDetail(ctx, portfolio)
}

func (s *PortfolioService) loadDetail(ctx context.Context, portfolio *models.PortfolioWithService) (*PortfolioDetail, error) {
	images, err := s.portfolioRepo.FindImages(ctx, portfolio.ID)
	if err != nil {
		return nil, err
	}
	tags, err := s.portfolioRepo.FindTags(ctx, portfolio.ID)
	if err != nil {
		return nil, err
	}
	return &PortfolioDetail{
		Portfolio: portfolio,
		Images:    images,
		Tags:      tags,
	}, nil
}

// FindFeatured 히어로 슬라이더용 대표 시공사례
func (s *PortfolioService) FindFeatured(ctx context.Context) ([]models.PortfolioWithService, error) {
	return s.portfolioRepo.FindFeatured(ctx, featuredLimit)
}

// FindPublic 공개 전체 목록
func (s *PortfolioService) FindPublic(ctx context.Context) ([]models.PortfolioWithService, error) {
	return s.portfolioRepo.FindActive(ctx)
}

// FindRelated 서비스별 관련 시공사례
func (s *PortfolioService) FindRelated(ctx context.Context, serviceID string, limit int) ([]models.PortfolioWithService, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.portfolioRepo.FindActiveByService(ctx, serviceID, limit)
}

// AdjacentPortfolios 이전/다음 시공사례
type AdjacentPortfolios struct {
	Prev *models.PortfolioSummary `json:"prev"`
	Next *models.PortfolioSummary `json:"next"`
}

// FindAdjacent 상세 페이지 이동용 이전/다음 조회
func (s *PortfolioService) FindAdjacent(ctx context.Context, id string) (*AdjacentPortfolios, error) {
	prev, err := s.portfolioRepo.FindPrev(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := s.portfolioRepo.FindNext(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AdjacentPortfolios{Prev: prev, Next: next}, nil
}
