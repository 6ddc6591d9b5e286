package nostd

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// CustomValidator echo에 등록하는 요청 검증기
type CustomValidator struct {
	Validator *validator.Validate
	trans     ut.Translator
}

// TransInit 검증 오류 메시지 번역기 초기화
func (cv *CustomValidator) TransInit() error {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, found := uni.GetTranslator("en")
	if !found {
		return errors.New("translator not found")
	}
	cv.trans = trans
	return entranslations.RegisterDefaultTranslations(cv.Validator, trans)
}

// Validate 구조체 검증. 첫 번째 오류만 번역해서 반환한다.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.Validator.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && cv.trans != nil {
			for _, e := range verrs {
				return errors.New(e.Translate(cv.trans))
			}
		}
		return err
	}
	return nil
}
