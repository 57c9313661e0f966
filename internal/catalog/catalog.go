// Package catalog содержит справочники кодов языков и голосов
// и значения настроек по умолчанию для нового пользователя.
package catalog

import "strings"

// AutoDetect — сентинел исходного языка: определять язык при переводе.
const AutoDetect = "auto"

// AutoDetectLabel — отображаемое имя для auto, никогда не берётся из таблицы.
const AutoDetectLabel = "Автоопределение"

// Languages — языки перевода. Подмножество самых ходовых,
// чтобы не заваливать пользователя клавиатурой на сотню кнопок.
var Languages = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Русский",
	"zh-CN": "Chinese (Simplified)",
	"ja":    "Japanese",
	"ko":    "Korean",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"tr":    "Turkish",
	"nl":    "Dutch",
	"sv":    "Swedish",
	"fi":    "Finnish",
	"pl":    "Polish",
	"uk":    "Ukrainian",
}

// AudioLanguages — языки озвучивания (синтез речи).
var AudioLanguages = map[string]string{
	"ru":    "Русский",
	"en":    "Английский",
	"de":    "Немецкий",
	"fr":    "Французский",
	"es":    "Испанский",
	"it":    "Итальянский",
	"pt":    "Португальский",
	"ja":    "Японский",
	"zh-CN": "Китайский",
	"ko":    "Корейский",
	"tr":    "Турецкий",
	"uk":    "Украинский",
}

// VoiceTypes — типы голоса озвучки.
var VoiceTypes = map[string]string{
	"normal":    "Обычный",
	"slow":      "Медленный",
	"clear":     "Чёткий",
	"emotional": "Эмоциональный",
}

// Defaults — настройки нового пользователя. Передаются явно в конструкторы
// хранилища и фасада, чтобы тесты могли подменять их без общего состояния.
type Defaults struct {
	SourceLanguage string
	Language       string
	AudioLanguage  string
	VoiceType      string
	Speed          float64
}

func DefaultSettings() Defaults {
	return Defaults{
		SourceLanguage: AutoDetect,
		Language:       "ru",
		AudioLanguage:  "ru",
		VoiceType:      "normal",
		Speed:          1.0,
	}
}

// LanguageName возвращает имя языка перевода.
func LanguageName(code string) (string, bool) {
	name, ok := Languages[code]
	return name, ok
}

// AudioLanguageName возвращает имя языка озвучки.
func AudioLanguageName(code string) (string, bool) {
	name, ok := AudioLanguages[code]
	return name, ok
}

// VoiceTypeName возвращает имя типа голоса.
func VoiceTypeName(code string) (string, bool) {
	name, ok := VoiceTypes[code]
	return name, ok
}

// ResolveName разрешает отображаемое имя по коду: значение из таблицы,
// для сентинела auto — autoLabel (если задан), иначе код заглавными.
// Отсутствие кода в таблице — не ошибка, а штатный фолбэк.
func ResolveName(code string, table map[string]string, autoLabel string) string {
	if autoLabel != "" && code == AutoDetect {
		return autoLabel
	}
	if name, ok := table[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
