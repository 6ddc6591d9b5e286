package models

import (
	"time"

	"gorm.io/datatypes"
)

// Portfolio 시공사례 테이블
type Portfolio struct {
	ID           string          `gorm:"primaryKey;size:26" json:"portfolio_id"`
	ServiceID    *string         `gorm:"size:26;index" json:"service_id"`
	Title        string          `gorm:"size:200;not null" json:"title"`
	Slug         string          `gorm:"size:200;not null" json:"slug"`
	Description  string          `gorm:"type:text" json:"description"`
	Location     string          `gorm:"size:200" json:"location"`
	Area         string          `gorm:"size:100" json:"area"`
	Cost         string          `gorm:"size:100" json:"cost"`
	Duration     string          `gorm:"size:100" json:"duration"`
	ThumbnailURL string          `gorm:"size:500" json:"thumbnail_url"`
	IsFeatured   bool            `gorm:"not null;default:false;index" json:"is_featured"`
	IsActive     bool            `gorm:"not null;default:true;index" json:"is_active"`
	CompletedAt  *datatypes.Date `gorm:"" json:"completed_at"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블명 지정
func (Portfolio) TableName() string {
	return "TA_PORTFOLIO_INFO"
}

// PortfolioImage 시공사례 이미지. 수정 시 전체 교체 방식으로 관리한다.
type PortfolioImage struct {
	ID          string    `gorm:"primaryKey;size:26" json:"image_id"`
	PortfolioID string    `gorm:"size:26;not null;index" json:"portfolio_id"`
	ImageURL    string    `gorm:"size:500;not null" json:"image_url"`
	AltText     string    `gorm:"size:200" json:"alt_text"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (PortfolioImage) TableName() string {
	return "TA_PORTFOLIO_IMAGE_INFO"
}

// PortfolioTag 시공사례-태그 연결 테이블
type PortfolioTag struct {
	PortfolioID string `gorm:"primaryKey;size:26" json:"portfolio_id"`
	TagID       string `gorm:"primaryKey;size:26" json:"tag_id"`
}

// TableName 테이블명 지정
func (PortfolioTag) TableName() string {
	return "TA_PORTFOLIO_TAG_INFO"
}
