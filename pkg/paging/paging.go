// Package paging 목록 조회 공통 페이지네이션 타입.
package paging

import "math"

// DefaultPageSize 목록 페이지당 행 수
const DefaultPageSize = 20

// Page 페이지네이션 결과
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// Normalize 페이지 번호 보정. 1 미만이거나 파싱 불가한 값은 1로 처리한다.
func Normalize(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset 페이지 번호에 해당하는 오프셋
func Offset(page, pageSize int) int {
	return (Normalize(page) - 1) * pageSize
}

// New 페이지 결과 생성. 범위를 벗어난 페이지는 빈 데이터와 올바른 total을 그대로 반환한다.
func New[T any](data []T, total int64, page, pageSize int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		Data:       data,
		Total:      total,
		Page:       Normalize(page),
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
}
