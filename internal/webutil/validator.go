package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"curriculum_keep/internal/model"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":       "名前",
	"number":     "番号",
	"title":      "タイトル",
	"topic":      "トピック",
	"quarter_id": "クォーターID",
	"module_id":  "モジュールID",
	"lesson_id":  "レッスンID",
	"comment":    "コメント",
	"contents":   "コンテンツ",
	"kind":       "ブロック種別",
	// ... 他のフィールドもここに追加 ...
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("oneof", "{0}の値が許可されていません。")

	// min / max はパラメータ付きメッセージになるため個別登録
	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0}は{1}以上で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		translatedFieldName, ok := fieldNameTranslations[fieldName]
		if !ok {
			translatedFieldName = fieldName
		}
		t, _ := ut.T("min", translatedFieldName, fe.Param())
		return t
	})

	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0}は{1}以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		translatedFieldName, ok := fieldNameTranslations[fieldName]
		if !ok {
			translatedFieldName = fieldName
		}
		t, _ := ut.T("max", translatedFieldName, fe.Param())
		return t
	})
}

// ValidateStruct はリクエストDTOを検証し、最初のエラーを AppError にして返します。
// 問題がなければ nil を返します。
func ValidateStruct(req interface{}) *model.AppError {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(Trans)
		return model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}

	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	return model.NewAppError("VALIDATION_ERROR", "入力内容を検証できませんでした。", "", model.ErrInvalidInput)
}
