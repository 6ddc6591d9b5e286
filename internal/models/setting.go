package models

import "time"

// SiteSetting 사이트 설정 키-값 테이블
type SiteSetting struct {
	SettingKey   string    `gorm:"primaryKey;size:100" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	Description  string    `gorm:"size:500" json:"description"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블명 지정
func (SiteSetting) TableName() string {
	return "TA_SITE_SETTING_INFO"
}
