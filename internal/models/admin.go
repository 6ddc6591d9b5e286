package models

import "time"

// AdminRole 관리자 역할
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin" // 최고관리자
	RoleAdmin      AdminRole = "admin"       // 관리자
	RoleEditor     AdminRole = "editor"      // 에디터
)

// IsValid 역할 값 검증
func (r AdminRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// Admin 관리자 계정 테이블
type Admin struct {
	ID           string     `gorm:"primaryKey;size:26" json:"admin_id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"` // 비밀번호 해시, 응답에 포함하지 않음
	Name         string     `gorm:"size:100;not null" json:"name"`
	Role         AdminRole  `gorm:"size:20;not null;default:'editor'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `gorm:"" json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블명 지정
func (Admin) TableName() string {
	return "TA_ADMIN_INFO"
}
