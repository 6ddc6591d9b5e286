package models

import "time"

// ConsultationStatus 상담 진행 상태
type ConsultationStatus string

const (
	StatusPending    ConsultationStatus = "pending"    // 대기중
	StatusContacted  ConsultationStatus = "contacted"  // 연락완료
	StatusVisiting   ConsultationStatus = "visiting"   // 방문예정
	StatusQuoted     ConsultationStatus = "quoted"     // 견적전달
	StatusContracted ConsultationStatus = "contracted" // 계약완료
	StatusCancelled  ConsultationStatus = "cancelled"  // 취소
)

// IsValid 상태 값 검증
func (s ConsultationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusVisiting, StatusQuoted, StatusContracted, StatusCancelled:
		return true
	}
	return false
}

// ConsultationSource 상담 유입 경로
type ConsultationSource string

const (
	SourceWebsite  ConsultationSource = "website"  // 웹사이트
	SourcePhone    ConsultationSource = "phone"    // 전화
	SourceKakao    ConsultationSource = "kakao"    // 카카오톡
	SourceWalkIn   ConsultationSource = "walk_in"  // 방문
	SourceReferral ConsultationSource = "referral" // 소개
)

// IsValid 유입 경로 값 검증
func (s ConsultationSource) IsValid() bool {
	switch s {
	case SourceWebsite, SourcePhone, SourceKakao, SourceWalkIn, SourceReferral:
		return true
	}
	return false
}

// SpaceType 시공 공간 유형
type SpaceType string

const (
	SpaceOffice      SpaceType = "office"      // 사무실
	SpaceAcademy     SpaceType = "academy"     // 학원
	SpaceFitness     SpaceType = "fitness"     // 체육시설
	SpaceResidential SpaceType = "residential" // 주거공간
	SpaceRenovation  SpaceType = "renovation"  // 환경개선
	SpaceRetail      SpaceType = "retail"      // 매장
	SpaceFnb         SpaceType = "fnb"         // 카페/음식점
	SpaceOther       SpaceType = "other"       // 기타
)

// IsValid 공간 유형 값 검증
func (s SpaceType) IsValid() bool {
	switch s {
	case SpaceOffice, SpaceAcademy, SpaceFitness, SpaceResidential, SpaceRenovation, SpaceRetail, SpaceFnb, SpaceOther:
		return true
	}
	return false
}

// Consultation 상담 신청(리드) 테이블
type Consultation struct {
	ID              string             `gorm:"primaryKey;size:26" json:"consultation_id"`
	CustomerID      *string            `gorm:"size:26;index" json:"customer_id"`
	Name            string             `gorm:"size:100;not null" json:"name"`
	Phone           string             `gorm:"size:30;not null" json:"phone"`
	SpaceType       SpaceType          `gorm:"size:20;not null" json:"space_type"`
	Area            string             `gorm:"size:100" json:"area"`
	Message         string             `gorm:"type:text" json:"message"`
	Status          ConsultationStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AssignedAdminID *string            `gorm:"size:26;index" json:"assigned_admin_id"`
	Source          ConsultationSource `gorm:"size:20;not null;default:'website'" json:"source"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블명 지정
func (Consultation) TableName() string {
	return "TA_CONSULTATION_INFO"
}

// LogAction 상담 이력 액션
type LogAction string

const (
	ActionCreated       LogAction = "created"        // 상담 생성
	ActionStatusChanged LogAction = "status_changed" // 상태 변경
	ActionNoteAdded     LogAction = "note_added"     // 메모 추가
	ActionAssigned      LogAction = "assigned"       // 담당자 배정
	ActionCalled        LogAction = "called"         // 전화 연락
	ActionVisited       LogAction = "visited"        // 현장 방문
)

// IsValid 액션 값 검증
func (a LogAction) IsValid() bool {
	switch a {
	case ActionCreated, ActionStatusChanged, ActionNoteAdded, ActionAssigned, ActionCalled, ActionVisited:
		return true
	}
	return false
}

// ConsultationLog 상담 이력 테이블. 생성 후 수정하지 않는다.
type ConsultationLog struct {
	ID             string              `gorm:"primaryKey;size:26" json:"log_id"`
	ConsultationID string              `gorm:"size:26;not null;index" json:"consultation_id"`
	AdminID        *string             `gorm:"size:26" json:"admin_id"` // nil이면 시스템 생성 이력
	Action         LogAction           `gorm:"size:20;not null" json:"action"`
	PrevStatus     *ConsultationStatus `gorm:"size:20" json:"prev_status"`
	NewStatus      *ConsultationStatus `gorm:"size:20" json:"new_status"`
	Note           string              `gorm:"type:text" json:"note"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (ConsultationLog) TableName() string {
	return "TA_CONSULTATION_LOG_INFO"
}
