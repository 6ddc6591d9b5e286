package models

import "time"

// Service 서비스(시공 상품) 테이블
type Service struct {
	ID          string    `gorm:"primaryKey;size:26" json:"service_id"`
	Slug        string    `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Subtitle    string    `gorm:"size:200" json:"subtitle"`
	Tagline     string    `gorm:"size:200" json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	Color       string    `gorm:"size:10" json:"color"` // HEX 색상
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블명 지정
func (Service) TableName() string {
	return "TA_SERVICE_INFO"
}

// ServiceFeature 서비스 특징 항목. 수정 시 전체 교체 방식으로 관리한다.
type ServiceFeature struct {
	ID        string `gorm:"primaryKey;size:26" json:"feature_id"`
	ServiceID string `gorm:"size:26;not null;index" json:"service_id"`
	Content   string `gorm:"size:500;not null" json:"content"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

// TableName 테이블명 지정
func (ServiceFeature) TableName() string {
	return "TA_SERVICE_FEATURE_INFO"
}
