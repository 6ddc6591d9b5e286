package models

// 조회 전용 뷰 구조체. 목록/상세 화면에서 조인 결과를 받기 위한 타입이다.

// ConsultationWithAdmin 담당자 이름을 포함한 상담
type ConsultationWithAdmin struct {
	Consultation
	AdminName *string `gorm:"column:admin_name" json:"admin_name,omitempty"`
}

// ConsultationLogWithAdmin 작성자 이름을 포함한 상담 이력. 시스템 생성 이력은 이름이 없다.
type ConsultationLogWithAdmin struct {
	ConsultationLog
	AdminName *string `gorm:"column:admin_name" json:"admin_name,omitempty"`
}

// PortfolioWithService 서비스명을 포함한 시공사례
type PortfolioWithService struct {
	Portfolio
	ServiceName *string `gorm:"column:service_name" json:"service_name,omitempty"`
}

// CustomerWithCount 상담 건수를 포함한 고객
type CustomerWithCount struct {
	Customer
	ConsultationCount int64 `gorm:"column:consultation_count" json:"consultation_count"`
}

// PortfolioSummary 이전/다음 이동용 요약
type PortfolioSummary struct {
	ID    string `gorm:"column:id" json:"portfolio_id"`
	Title string `gorm:"column:title" json:"title"`
}
