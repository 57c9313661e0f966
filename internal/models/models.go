package models

// UserSettings represents translation preferences for a telegram user.
// Поля *_name денормализованы рядом с кодами, чтобы рендерить меню
// без похода в справочник на каждое чтение.
type UserSettings struct {
	ID                 int64   `db:"id"                   json:"id"`
	UserID             string  `db:"user_id"              json:"user_id"`
	SourceLanguage     string  `db:"source_language"      json:"source_language"` // "auto" — автоопределение
	Language           string  `db:"language"             json:"language"`        // язык, на который переводим
	AudioLanguage      string  `db:"audio_language"       json:"audio_language"`
	VoiceType          string  `db:"voice_type"           json:"voice_type"` // normal / slow / clear / emotional
	Speed              float64 `db:"speed"                json:"speed"`      // множитель скорости озвучки
	SourceLanguageName string  `db:"source_language_name" json:"source_language_name"`
	LanguageName       string  `db:"language_name"        json:"language_name"`
	AudioLanguageName  string  `db:"audio_language_name"  json:"audio_language_name"`
	VoiceTypeName      string  `db:"voice_type_name"      json:"voice_type_name"`
}
