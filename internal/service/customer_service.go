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
	"gorm.io/gorm"
)

// CustomerService 고객 관리 서비스
type CustomerService struct {
	logger *zap.Logger

	*orz.Service
	customerRepo     *repo.CustomerRepo
	consultationRepo *repo.ConsultationRepo
}

// NewCustomerService 고객 서비스 생성
func NewCustomerService(logger *zap.Logger, db *gorm.DB) *CustomerService {
	return &CustomerService{
		logger:           logger,
		Service:          orz.NewService(db),
		customerRepo:     repo.NewCustomerRepo(db),
		consultationRepo: repo.NewConsultationRepo(db),
	}
}

// CustomerRequest 고객 등록/수정 요청
type CustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email"`
	Memo  string `json:"memo"`
}

// CustomerQuery 고객 목록 필터
type CustomerQuery struct {
	Page   int
	Search string // 이름, 전화번호, 이메일 부분 일치
}

// FindPage 고객 목록 조회, 상담 건수 포함
func (s *CustomerService) FindPage(ctx context.Context, q CustomerQuery) (*paging.Page[models.CustomerWithCount], error) {
	return s.customerRepo.FindPage(ctx, q.Page, q.Search)
}

// Get 고객 단건 조회
func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customerRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Create 고객 등록
func (s *CustomerService) Create(ctx context.Context, claims *SessionClaims, req CustomerRequest) (string, error) {
	if claims == nil {
		return "", xe.ErrInvalidToken
	}

	customer := models.Customer{
		ID:    ulid.Make().String(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Memo:  req.Memo,
	}
	if err := s.customerRepo.Create(ctx, &customer); err != nil {
		s.logger.Error("failed to create customer", zap.Error(err))
		return "", xe.ErrCustomerCreate
	}
	return customer.ID, nil
}

// Update 고객 수정
func (s *CustomerService) Update(ctx context.Context, claims *SessionClaims, id string, req CustomerRequest) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	existing, err := s.customerRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xe.ErrCustomerNotFound
		}
		return err
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Memo = req.Memo
	return s.customerRepo.Save(ctx, &existing)
}

// Delete 고객 삭제. 상담의 고객 참조는 끊고 상담 자체는 남긴다.
func (s *CustomerService) Delete(ctx context.Context, claims *SessionClaims, id string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.ClearCustomer(ctx, id); err != nil {
			return err
		}
		return s.customerRepo.DeleteById(ctx, id)
	})
}
