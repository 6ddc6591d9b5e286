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

// 시스템 생성 이력에 기록하는 고정 문구
const (
	noteCreatedFromWebsite = "웹사이트에서 상담 신청"
	noteAssignPrefix       = "담당자 변경: "
	noteUnassigned         = "미배정"
)

// ConsultationService 상담 라이프사이클 서비스.
// 상태/담당자 변경은 반드시 이력 한 건과 함께 기록된다.
type ConsultationService struct {
	logger *zap.Logger

	*orz.Service
	consultationRepo *repo.ConsultationRepo
	logRepo          *repo.ConsultationLogRepo
	adminRepo        *repo.AdminRepo
}

// NewConsultationService 상담 서비스 생성
func NewConsultationService(logger *zap.Logger, db *gorm.DB) *ConsultationService {
	return &ConsultationService{
		logger:           logger,
		Service:          orz.NewService(db),
		consultationRepo: repo.NewConsultationRepo(db),
		logRepo:          repo.NewConsultationLogRepo(db),
		adminRepo:        repo.NewAdminRepo(db),
	}
}

// CreateConsultationRequest 상담 신청 요청
type CreateConsultationRequest struct {
	Name      string                    `json:"name" validate:"required"`
	Phone     string                    `json:"phone" validate:"required"`
	SpaceType models.SpaceType          `json:"space_type" validate:"required"`
	Area      string                    `json:"area"`
	Message   string                    `json:"message"`
	Source    models.ConsultationSource `json:"source"`
}

// Create 상담 등록. 공개 페이지에서 인증 없이 호출되며 상태는 pending으로 시작한다.
// 이력에는 시스템 생성(created) 한 건을 함께 남긴다.
func (s *ConsultationService) Create(ctx context.Context, req CreateConsultationRequest) (string, error) {
	source := req.Source
	if source == "" {
		source = models.SourceWebsite
	}
	if !source.IsValid() || !req.SpaceType.IsValid() {
		return "", xe.ErrInvalidParams
	}

	consultation := models.Consultation{
		ID:        ulid.Make().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		SpaceType: req.SpaceType,
		Area:      req.Area,
		Message:   req.Message,
		Status:    models.StatusPending,
		Source:    source,
	}

	err := s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.Create(ctx, &consultation); err != nil {
			return err
		}
		log := models.ConsultationLog{
			ID:             ulid.Make().String(),
			ConsultationID: consultation.ID,
			AdminID:        nil, // 시스템 생성
			Action:         models.ActionCreated,
			Note:           noteCreatedFromWebsite,
		}
		return s.logRepo.Create(ctx, &log)
	})
	if err != nil {
		s.logger.Error("failed to create consultation", zap.Error(err))
		return "", xe.ErrConsultationCreate
	}

	s.logger.Info("consultation created",
		zap.String("consultation_id", consultation.ID),
		zap.String("source", string(source)))
	return consultation.ID, nil
}

// ChangeStatus 상담 상태 변경. 현재 상태 조회, 갱신, 이력 기록을 한 트랜잭션으로 처리한다.
// 상태 전이 자체는 제한하지 않는다. 이력은 감사용이지 차단용이 아니다.
func (s *ConsultationService) ChangeStatus(ctx context.Context, claims *SessionClaims, id string, newStatus models.ConsultationStatus) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}
	if !newStatus.IsValid() {
		return xe.ErrInvalidParams
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		consultation, err := s.consultationRepo.FindById(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return xe.ErrConsultationNotFound
			}
			return err
		}

		prevStatus := consultation.Status
		if err := s.consultationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			return err
		}

		adminID := claims.AdminID
		log := models.ConsultationLog{
			ID:             ulid.Make().String(),
			ConsultationID: id,
			AdminID:        &adminID,
			Action:         models.ActionStatusChanged,
			PrevStatus:     &prevStatus,
			NewStatus:      &newStatus,
		}
		return s.logRepo.Create(ctx, &log)
	})
}

// AddNote 상담 메모 추가. 상담 행은 건드리지 않고 이력만 쌓는다.
func (s *ConsultationService) AddNote(ctx context.Context, claims *SessionClaims, id string, note string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	adminID := claims.AdminID
	log := models.ConsultationLog{
		ID:             ulid.Make().String(),
		ConsultationID: id,
		AdminID:        &adminID,
		Action:         models.ActionNoteAdded,
		Note:           note,
	}
	return s.logRepo.Create(ctx, &log)
}

// Assign 담당자 배정. 배정 변경과 이력 기록은 항상 쌍으로 남는다.
func (s *ConsultationService) Assign(ctx context.Context, claims *SessionClaims, id string, adminID string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	assignedName := noteUnassigned
	var assigned *string
	if adminID != "" {
		admin, err := s.adminRepo.FindById(ctx, adminID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return xe.ErrAdminNotFound
			}
			return err
		}
		assignedName = admin.Name
		assigned = &adminID
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.UpdateAssignedAdmin(ctx, id, assigned); err != nil {
			return err
		}

		actorID := claims.AdminID
		log := models.ConsultationLog{
			ID:             ulid.Make().String(),
			ConsultationID: id,
			AdminID:        &actorID,
			Action:         models.ActionAssigned,
			Note:           noteAssignPrefix + assignedName,
		}
		return s.logRepo.Create(ctx, &log)
	})
}

// Delete 상담 삭제. 하위 이력까지 함께 제거한다. 복구는 없다.
func (s *ConsultationService) Delete(ctx context.Context, claims *SessionClaims, id string) error {
	if claims == nil {
		return xe.ErrInvalidToken
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		if err := s.logRepo.DeleteByConsultation(ctx, id); err != nil {
			return err
		}
		return s.consultationRepo.DeleteById(ctx, id)
	})
}

// ConsultationQuery 상담 목록 필터
type ConsultationQuery struct {
	Page       int
	Status     models.ConsultationStatus
	Search     string // 이름 또는 전화번호 부분 일치
	AssignedTo string
}

// FindPage 상담 목록 조회
func (s *ConsultationService) FindPage(ctx context.Context, q ConsultationQuery) (*paging.Page[models.ConsultationWithAdmin], error) {
	if q.Status != "" && !q.Status.IsValid() {
		return nil, xe.ErrInvalidParams
	}
	return s.consultationRepo.FindPage(ctx, q.Page, q.Status, q.Search, q.AssignedTo)
}

// ConsultationDetail 상담 상세 + 이력
type ConsultationDetail struct {
	Consultation *models.ConsultationWithAdmin     `json:"consultation"`
	Logs         []models.ConsultationLogWithAdmin `json:"logs"`
}

// GetWithLogs 상담 상세 조회. 이력은 최신순이다.
func (s *ConsultationService) GetWithLogs(ctx context.Context, id string) (*ConsultationDetail, error) {
	consultation, err := s.consultationRepo.FindWithAdmin(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrConsultationNotFound
		}
		return nil, err
	}

	logs, err := s.logRepo.FindByConsultation(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ConsultationDetail{
		Consultation: consultation,
		Logs:         logs,
	}, nil
}

// ActiveAdmins 담당자 선택 목록
func (s *ConsultationService) ActiveAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.adminRepo.FindActiveOrderByName(ctx)
}
