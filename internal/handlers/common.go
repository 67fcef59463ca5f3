// internal/handlers/common.go
package handlers

import (
	"errors"
	"log/slog"

	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateStruct はリクエストDTOを検証し、失敗時は最初のエラーを
// 日本語メッセージ付きの AppError に変換して返します。
func validateStruct(logger *slog.Logger, req interface{}) *model.AppError {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)

			return model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
				model.ErrInvalidInput,
			)
		}
		// バリデーションライブラリ自体のエラーなど、予期せぬエラー
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		return model.NewAppError("INTERNAL_SERVER_ERROR", "リクエストの検証中にエラーが発生しました。", "", err)
	}
	return nil
}
