package types

type StandardLanguageCode string

const (
	LanguageCodeEnglish           StandardLanguageCode = "en"
	LanguageCodeSimplifiedChinese StandardLanguageCode = "zh_cn"
	LanguageCodeJapanese          StandardLanguageCode = "ja"
	LanguageCodeKorean            StandardLanguageCode = "ko"
	LanguageCodeGerman            StandardLanguageCode = "de"
	LanguageCodeFrench            StandardLanguageCode = "fr"
	LanguageCodeSpanish           StandardLanguageCode = "es"
	LanguageCodeRussian           StandardLanguageCode = "ru"
)

var standardLanguageNames = map[StandardLanguageCode]string{
	LanguageCodeEnglish:           "English",
	LanguageCodeSimplifiedChinese: "Simplified Chinese",
	LanguageCodeJapanese:          "Japanese",
	LanguageCodeKorean:            "Korean",
	LanguageCodeGerman:            "German",
	LanguageCodeFrench:            "French",
	LanguageCodeSpanish:           "Spanish",
	LanguageCodeRussian:           "Russian",
}

func GetStandardLanguageName(code StandardLanguageCode) string {
	if name, ok := standardLanguageNames[code]; ok {
		return name
	}
	return string(code)
}

func IsSupportedLanguage(code StandardLanguageCode) bool {
	_, ok := standardLanguageNames[code]
	return ok
}
