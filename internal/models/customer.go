package models

import "time"

// Customer 고객 테이블
type Customer struct {
	ID        string    `gorm:"primaryKey;size:26" json:"customer_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:30;not null" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Memo      string    `gorm:"type:text" json:"memo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블명 지정
func (Customer) TableName() string {
	return "TA_CUSTOMER_INFO"
}
