// internal/model/language.go
package model

// Language は学習者の母語（出題言語）を表す列挙型です。
// カラム名を実行時の文字列連結で組み立てるのは事故のもとなので、
// 必ずこの型を経由して固定のマッピングを引くこと。
type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageSpanish Language = "es"
)

// languageColumns は言語コードと vocabulary テーブルのカラム名の固定対応表
var languageColumns = map[Language]string{
	LanguageGerman:  "german_term",
	LanguageEnglish: "english_term",
	LanguageFrench:  "french_term",
	LanguageSpanish: "spanish_term",
}

// ParseLanguage はクエリパラメータ等の文字列を Language に変換します。
// 未対応の言語コードは ErrInvalidInput として扱う。
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if _, ok := languageColumns[lang]; !ok {
		return "", ErrInvalidInput
	}
	return lang, nil
}

// TermColumn は出題言語に対応する vocabulary テーブルのカラム名を返します
func (l Language) TermColumn() string {
	return languageColumns[l]
}

var languageNames = map[Language]string{
	LanguageGerman:  "German",
	LanguageEnglish: "English",
	LanguageFrench:  "French",
	LanguageSpanish: "Spanish",
}

// DisplayName は英語表記の言語名を返します（AIプロンプト用）
func (l Language) DisplayName() string {
	return languageNames[l]
}

func (l Language) String() string {
	return string(l)
}
