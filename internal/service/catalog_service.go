package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-orz/orz"
	"github.com/oklog/ulid/v2"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/repo"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService 서비스(시공 상품)/태그/사이트 설정 관리 서비스
type CatalogService struct {
	logger *zap.Logger

	*orz.Service
	serviceRepo *repo.ServiceRepo
	tagRepo     *repo.TagRepo
	settingRepo *repo.SettingRepo
}

// NewCatalogService 카탈로그 서비스 생성
func NewCatalogService(logger *zap.Logger, db *gorm.DB) *CatalogService {
	return &CatalogService{
		logger:      logger,
		Service:     orz.NewService(db),
		serviceRepo: repo.NewServiceRepo(db),
		tagRepo:     repo.NewTagRepo(db),
		settingRepo: repo.NewSettingRepo(db),
	}
}

// ServiceRequest 서비스 등록/수정 요청. 특징은 배열 순서대로 저장되고 빈 항목은 건너뛴다.
type ServiceRequest struct {
	Slug        string   `json:"slug" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Color       string   `json:"color"`
	SortOrder   int      `json:"sort_order"`
	IsActive    bool     `json:"is_active"`
	Features    []string `json:"features"`
}

func (req *ServiceRequest) toModel(id string) models.Service {
	return models.Service{
		ID:          id,
		Slug:        req.Slug,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Tagline:     req.Tagline,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	}
}

func (req *ServiceRequest) toFeatures() []models.ServiceFeature {
	features := make([]models.ServiceFeature, 0, len(req.Features))
	for _, content := range req.Features {
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		features = append(features, models.ServiceFeature{
			ID:      ulid.Make().String(),
			Content: content,
		})
	}
	return features
}

// CreateService 서비스 등록. 본문과 특징을 한 트랜잭션으로 저장한다.
func (s *CatalogService) CreateService(ctx context.Context, claims *SessionClaims, req ServiceRequest) (string, error) {
	if claims == nil {
		return "", xe.ErrInvalidToken
	}

	id := ulid.Make().String()
	service := req.toModel(id)

	err := s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.serviceRepo.Create(ctx, &service); err != nil {
			return err
		}
		return s.serviceRepo.ReplaceFeatures(ctx, id, req.toFeatures())
	})
	if err != nil {
		s.logger.Error("failed to create service", zap.Error(err))
		return "", xe.ErrServiceCreate
	}
	return id, nil
}

// UpdateService 서비스 수정. 특징은 삭제 후 재삽입으로 전체 교체한다.
func (s *CatalogService) UpdateService(ctx context.Context, claims *SessionClaims, id string, req ServiceRequest) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	err := s.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.serviceRepo.FindById(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return xe.ErrServiceNotFound
			}
			return err
		}

		service := req.toModel(id)
		service.CreatedAt = existing.CreatedAt
		if err := s.serviceRepo.Save(ctx, &service); err != nil {
			return err
		}
		return s.serviceRepo.ReplaceFeatures(ctx, id, req.toFeatures())
	})
	if err != nil {
		var oe *orz.Error
		if errors.As(err, &oe) {
			return err
		}
		s.logger.Error("failed to update service", zap.String("service_id", id), zap.Error(err))
		return xe.ErrServiceUpdate
	}
	return nil
}

// DeleteService 서비스 삭제. 특징도 함께 제거한다.
func (s *CatalogService) DeleteService(ctx context.Context, claims *SessionClaims, id string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.serviceRepo.ReplaceFeatures(ctx, id, nil); err != nil {
			return err
		}
		return s.serviceRepo.DeleteById(ctx, id)
	})
}

// ToggleServiceActive 서비스 노출 여부 전환
func (s *CatalogService) ToggleServiceActive(ctx context.Context, claims *SessionClaims, id string, active bool) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}
	return s.serviceRepo.SetActive(ctx, id, active)
}

// ListServices 관리자 목록
func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.FindAllOrdered(ctx)
}

// ListActiveServices 공개 목록
func (s *CatalogService) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.FindActiveOrdered(ctx)
}

// ServiceDetail 서비스 상세
type ServiceDetail struct {
	Service  *models.Service         `json:"service"`
	Features []models.ServiceFeature `json:"features"`
}

// GetService 관리자 상세 조회
func (s *CatalogService) GetService(ctx context.Context, id string) (*ServiceDetail, error) {
	service, err := s.serviceRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrServiceNotFound
		}
		return nil, err
	}
	features, err := s.serviceRepo.FindFeatures(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ServiceDetail{Service: &service, Features: features}, nil
}

// GetServiceBySlug 공개 상세 조회
func (s *CatalogService) GetServiceBySlug(ctx context.Context, slug string) (*ServiceDetail, error) {
	service, err := s.serviceRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrServiceNotFound
		}
		return nil, err
	}
	features, err := s.serviceRepo.FindFeatures(ctx, service.ID)
	if err != nil {
		return nil, err
	}
	return &ServiceDetail{Service: service, Features: features}, nil
}

// ListTags 태그 목록, 이름순
func (s *CatalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.FindAllOrderByName(ctx)
}

// CreateTag 태그 생성. 슬러그 중복이면 안내 메시지를 돌려준다.
func (s *CatalogService) CreateTag(ctx context.Context, claims *SessionClaims, name, slug string) (string, error) {
	if claims == nil {
		return "", xe.ErrInvalidToken
	}

	tag := models.Tag{
		ID:   ulid.Make().String(),
		Name: name,
		Slug: slug,
	}
	if err := s.tagRepo.Create(ctx, &tag); err != nil {
		s.logger.Warn("failed to create tag", zap.String("slug", slug), zap.Error(err))
		return "", xe.ErrTagCreate
	}
	return tag.ID, nil
}

// UpdateTag 태그 수정
func (s *CatalogService) UpdateTag(ctx context.Context, claims *SessionClaims, id, name, slug string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}
	if err := s.tagRepo.UpdateNameSlug(ctx, id, name, slug); err != nil {
		s.logger.Warn("failed to update tag", zap.String("tag_id", id), zap.Error(err))
		return xe.ErrTagUpdate
	}
	return nil
}

// DeleteTag 태그 삭제. 시공사례 연결도 함께 제거한다.
func (s *CatalogService) DeleteTag(ctx context.Context, claims *SessionClaims, id string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.tagRepo.DeleteLinks(ctx, id); err != nil {
			return err
		}
		return s.tagRepo.DeleteById(ctx, id)
	})
}

// ListSettings 사이트 설정 전체 조회
func (s *CatalogService) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	return s.settingRepo.FindAllOrderByKey(ctx)
}

// SettingUpdate 설정 변경 항목
type SettingUpdate struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// UpdateSettings 설정 값 일괄 갱신
func (s *CatalogService) UpdateSettings(ctx context.Context, claims *SessionClaims, updates []SettingUpdate) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		for _, u := range updates {
			if err := s.settingRepo.UpdateValue(ctx, u.Key, u.Value); err != nil {
				return err
			}
		}
		return nil
	})
}
