package models

// Tag 시공사례 분류 태그
type Tag struct {
	ID   string `gorm:"primaryKey;size:26" json:"tag_id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:100;not null" json:"slug"`
}

// TableName 테이블명 지정
func (Tag) TableName() string {
	return "TA_TAG_INFO"
}
