// internal/webutil/validate.go
package webutil

import (
	"errors"

	"vocab_trainer/internal/model"

	"github.com/go-playground/validator/v10"
)

// ValidateStruct はDTOを検証し、失敗時は翻訳済みメッセージ付きのAppErrorを返します。
// 最初のエラーを代表としてクライアントに返します。
func ValidateStruct(req interface{}) *model.AppError {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}

	// バリデーションライブラリ自体の予期せぬエラー
	return model.NewAppError("VALIDATION_ERROR", "入力値の検証に失敗しました。", "", model.ErrInvalidInput)
}
