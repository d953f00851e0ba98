package translator

import (
	"context"
	"strings"

	"subfuse/internal/types"
)

// DictionaryTranslator 内置词典，作为链路最后的兜底
// 命中则替换，未命中原样返回，永不失败
type DictionaryTranslator struct {
	entries map[types.StandardLanguageCode]map[string]string
}

func NewDictionaryTranslator() *DictionaryTranslator {
	return &DictionaryTranslator{entries: builtinEntries}
}

func (t *DictionaryTranslator) Name() string {
	return "dictionary"
}

func (t *DictionaryTranslator) Translate(_ context.Context, text string, _, target types.StandardLanguageCode) (string, error) {
	dict, ok := t.entries[target]
	if !ok {
		return text, nil
	}
	if translated, ok := dict[strings.ToLower(strings.TrimSpace(text))]; ok {
		return translated, nil
	}
	return text, nil
}

var builtinEntries = map[types.StandardLanguageCode]map[string]string{
	types.LanguageCodeSimplifiedChinese: {
		"hello":      "你好",
		"thank you":  "谢谢",
		"goodbye":    "再见",
		"yes":        "是",
		"no":         "不",
		"please":     "请",
		"welcome":    "欢迎",
		"good night": "晚安",
	},
	types.LanguageCodeJapanese: {
		"hello":     "こんにちは",
		"thank you": "ありがとう",
		"goodbye":   "さようなら",
		"yes":       "はい",
		"no":        "いいえ",
	},
	types.LanguageCodeGerman: {
		"hello":     "Hallo",
		"thank you": "Danke",
		"goodbye":   "Auf Wiedersehen",
		"yes":       "Ja",
		"no":        "Nein",
	},
	types.LanguageCodeFrench: {
		"hello":     "Bonjour",
		"thank you": "Merci",
		"goodbye":   "Au revoir",
		"yes":       "Oui",
		"no":        "Non",
	},
	types.LanguageCodeSpanish: {
		"hello":     "Hola",
		"thank you": "Gracias",
		"goodbye":   "Adiós",
		"yes":       "Sí",
		"no":        "No",
	},
	types.LanguageCodeEnglish: {
		"你好": "hello",
		"谢谢": "thank you",
		"再见": "goodbye",
	},
}
