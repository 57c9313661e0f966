// Package prefs — настройки пользователя на время одной интеракции.
// Фасад над хранилищем: один поход в БД при создании, обновления пишутся
// сквозь в БД и зеркалируются локально только после успешной записи.
package prefs

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"telegram-translate-bot/internal/catalog"
	"telegram-translate-bot/internal/storage"
)

type Preferences struct {
	UserID string

	SourceLanguage string
	Language       string
	AudioLanguage  string
	VoiceType      string
	Speed          float64

	SourceLanguageName string
	LanguageName       string
	AudioLanguageName  string
	VoiceTypeName      string

	db *storage.DB
}

// New загружает настройки пользователя. Конструктор не падает: при ошибке
// хранилища возвращается фасад со значениями по умолчанию (fail-open),
// ошибка только логируется.
func New(db *storage.DB, defaults catalog.Defaults, userID string) *Preferences {
	p := &Preferences{UserID: userID, db: db}

	s, err := db.GetOrCreate(userID)
	if err != nil {
		log.Printf("Не удалось загрузить настройки пользователя %s: %v", userID, err)
		p.SourceLanguage = defaults.SourceLanguage
		p.Language = defaults.Language
		p.AudioLanguage = defaults.AudioLanguage
		p.VoiceType = defaults.VoiceType
		p.Speed = defaults.Speed
		p.SourceLanguageName = catalog.ResolveName(defaults.SourceLanguage, catalog.Languages, catalog.AutoDetectLabel)
		p.LanguageName = catalog.ResolveName(defaults.Language, catalog.Languages, "")
		p.AudioLanguageName = catalog.ResolveName(defaults.AudioLanguage, catalog.AudioLanguages, "")
		p.VoiceTypeName = catalog.ResolveName(defaults.VoiceType, catalog.VoiceTypes, "")
		return p
	}

	p.SourceLanguage = s.SourceLanguage
	p.Language = s.Language
	p.AudioLanguage = s.AudioLanguage
	p.VoiceType = s.VoiceType
	p.Speed = s.Speed
	p.SourceLanguageName = s.SourceLanguageName
	p.LanguageName = s.LanguageName
	p.AudioLanguageName = s.AudioLanguageName
	p.VoiceTypeName = s.VoiceTypeName
	return p
}

// UpdateLanguage меняет язык перевода.
func (p *Preferences) UpdateLanguage(code string) error {
	if err := p.db.UpdateField(p.UserID, storage.FieldLanguage, code); err != nil {
		log.Printf("Не удалось обновить язык пользователя %s: %v", p.UserID, err)
		return err
	}
	p.Language = code
	p.LanguageName = catalog.ResolveName(code, catalog.Languages, "")
	return nil
}

// UpdateSourceLanguage меняет исходный язык ("auto" — автоопределение).
func (p *Preferences) UpdateSourceLanguage(code string) error {
	if err := p.db.UpdateField(p.UserID, storage.FieldSourceLanguage, code); err != nil {
		log.Printf("Не удалось обновить исходный язык пользователя %s: %v", p.UserID, err)
		return err
	}
	p.SourceLanguage = code
	p.SourceLanguageName = catalog.ResolveName(code, catalog.Languages, catalog.AutoDetectLabel)
	return nil
}

// UpdateAudioLanguage меняет язык озвучки.
func (p *Preferences) UpdateAudioLanguage(code string) error {
	if err := p.db.UpdateField(p.UserID, storage.FieldAudioLanguage, code); err != nil {
		log.Printf("Не удалось обновить язык озвучки пользователя %s: %v", p.UserID, err)
		return err
	}
	p.AudioLanguage = code
	p.AudioLanguageName = catalog.ResolveName(code, catalog.AudioLanguages, "")
	return nil
}

// UpdateVoiceType меняет тип голоса.
func (p *Preferences) UpdateVoiceType(code string) error {
	if err := p.db.UpdateField(p.UserID, storage.FieldVoiceType, code); err != nil {
		log.Printf("Не удалось обновить тип голоса пользователя %s: %v", p.UserID, err)
		return err
	}
	p.VoiceType = code
	p.VoiceTypeName = catalog.ResolveName(code, catalog.VoiceTypes, "")
	return nil
}

// UpdateSpeed меняет скорость озвучки. Нечисловое или неположительное
// значение отклоняется до записи; ни БД, ни зеркало не меняются.
func (p *Preferences) UpdateSpeed(raw string) error {
	speed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || speed <= 0 {
		verr := &storage.ValidationError{Field: "speed", Value: raw}
		log.Printf("Отклонили скорость пользователя %s: %v", p.UserID, verr)
		return verr
	}
	if err := p.db.UpdateField(p.UserID, storage.FieldSpeed, raw); err != nil {
		log.Printf("Не удалось обновить скорость пользователя %s: %v", p.UserID, err)
		return err
	}
	p.Speed = speed
	return nil
}
