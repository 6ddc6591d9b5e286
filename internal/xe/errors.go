package xe

import "github.com/go-orz/orz"

var (
	ErrInvalidParams    = orz.NewError(10400, "요청 값이 올바르지 않습니다.")
	ErrInvalidToken     = orz.NewError(10403, "인증이 필요합니다.")
	ErrPermissionDenied = orz.NewError(10401, "권한이 없습니다.")

	ErrIncorrectPassword = orz.NewError(10001, "이메일 또는 비밀번호가 올바르지 않습니다.")
	ErrEmailAlreadyUsed  = orz.NewError(10002, "이미 존재하는 이메일입니다.")
	ErrAdminNotFound     = orz.NewError(10003, "관리자를 찾을 수 없습니다.")

	ErrConsultationNotFound = orz.NewError(10010, "상담을 찾을 수 없습니다.")
	ErrConsultationCreate   = orz.NewError(10011, "상담 등록에 실패했습니다.")

	ErrPortfolioNotFound = orz.NewError(10020, "시공사례를 찾을 수 없습니다.")
	ErrPortfolioCreate   = orz.NewError(10021, "시공사례 등록에 실패했습니다.")
	ErrPortfolioUpdate   = orz.NewError(10022, "시공사례 수정에 실패했습니다.")

	ErrServiceNotFound = orz.NewError(10030, "서비스를 찾을 수 없습니다.")
	ErrServiceCreate   = orz.NewError(10031, "서비스 등록에 실패했습니다.")
	ErrServiceUpdate   = orz.NewError(10032, "서비스 수정에 실패했습니다.")

	ErrTagCreate = orz.NewError(10040, "태그 생성에 실패했습니다. 중복된 슬러그일 수 있습니다.")
	ErrTagUpdate = orz.NewError(10041, "태그 수정에 실패했습니다.")

	ErrCustomerNotFound = orz.NewError(10050, "고객을 찾을 수 없습니다.")
	ErrCustomerCreate   = orz.NewError(10051, "고객 등록에 실패했습니다.")

	ErrInvalidUpload  = orz.NewError(10060, "JPG, PNG, WebP, GIF 이미지만 업로드 가능합니다.")
	ErrUploadTooLarge = orz.NewError(10061, "파일 크기는 5MB 이하여야 합니다.")
)
