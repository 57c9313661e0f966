package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"telegram-translate-bot/internal/catalog"
	"telegram-translate-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// StorageError — любая ошибка чтения/записи БД. Транзакция к этому моменту
// уже откатана, полузаписанная строка никому не видна.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError — некорректный ввод обновления (нечисловая скорость).
// Возвращается до любого обращения к БД.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// Field описывает одно настраиваемое поле: колонку, парную колонку имени
// и таблицу отображаемых имён. Один дескриптор вместо шести почти
// одинаковых процедур обновления.
type Field struct {
	column    string
	nameCol   string            // пусто для speed — у скорости нет имени
	names     map[string]string // справочник код → имя
	autoLabel string            // метка для сентинела auto (только исходный язык)
	numeric   bool              // значение парсится как положительный float
}

var (
	FieldLanguage       = Field{column: "language", nameCol: "language_name", names: catalog.Languages}
	FieldSourceLanguage = Field{column: "source_language", nameCol: "source_language_name", names: catalog.Languages, autoLabel: catalog.AutoDetectLabel}
	FieldAudioLanguage  = Field{column: "audio_language", nameCol: "audio_language_name", names: catalog.AudioLanguages}
	FieldVoiceType      = Field{column: "voice_type", nameCol: "voice_type_name", names: catalog.VoiceTypes}
	FieldSpeed          = Field{column: "speed", numeric: true}
)

type DB struct {
	*sql.DB
	defaults catalog.Defaults
}

func New(path string, defaults catalog.Defaults) (*DB, error) {
	// busy_timeout: конкурентные интеракции ждут блокировку,
	// а не падают с SQLITE_BUSY.
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{DB: db, defaults: defaults}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- user settings ---------------------------------------------------

const settingsColumns = `id, user_id, source_language, language, audio_language,
        voice_type, speed, source_language_name, language_name,
        audio_language_name, voice_type_name`

// GetOrCreate возвращает настройки пользователя, при первом обращении
// создавая строку со значениями по умолчанию. Возвращаемая структура —
// отвязанная копия: владеет ей вызывающий, строку в БД меняют только
// операции записи.
func (d *DB) GetOrCreate(userID string) (*models.UserSettings, error) {
	s, err := d.get(userID)
	if err != nil {
		return nil, &StorageError{Op: "get settings", Err: err}
	}
	if s != nil {
		return s, nil
	}

	def := d.defaults
	// Две одновременные первые загрузки одного user_id — гонка: UNIQUE по
	// user_id её гасит, проигравший просто перечитывает строку победителя.
	res, err := d.Exec(`
        INSERT INTO user_settings (user_id, source_language, language,
            audio_language, voice_type, speed, source_language_name,
            language_name, audio_language_name, voice_type_name)
        VALUES (?,?,?,?,?,?,?,?,?,?)
        ON CONFLICT(user_id) DO NOTHING`,
		userID, def.SourceLanguage, def.Language, def.AudioLanguage,
		def.VoiceType, def.Speed,
		catalog.ResolveName(def.SourceLanguage, catalog.Languages, catalog.AutoDetectLabel),
		catalog.ResolveName(def.Language, catalog.Languages, ""),
		catalog.ResolveName(def.AudioLanguage, catalog.AudioLanguages, ""),
		catalog.ResolveName(def.VoiceType, catalog.VoiceTypes, ""),
	)
	if err != nil {
		return nil, &StorageError{Op: "create settings", Err: err}
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Printf("Создали настройки по умолчанию для пользователя %s", userID)
	}

	s, err = d.get(userID)
	if err != nil {
		return nil, &StorageError{Op: "reread settings", Err: err}
	}
	if s == nil {
		return nil, &StorageError{Op: "reread settings", Err: errors.New("row missing after insert")}
	}
	return s, nil
}

func (d *DB) get(userID string) (*models.UserSettings, error) {
	var s models.UserSettings
	err := d.QueryRow(
		`SELECT `+settingsColumns+` FROM user_settings WHERE user_id=?`, userID,
	).Scan(&s.ID, &s.UserID, &s.SourceLanguage, &s.Language, &s.AudioLanguage,
		&s.VoiceType, &s.Speed, &s.SourceLanguageName, &s.LanguageName,
		&s.AudioLanguageName, &s.VoiceTypeName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateField записывает новое значение поля и пересчитывает парное имя.
// Отсутствие строки пользователя — не ошибка: обновлять нечего.
func (d *DB) UpdateField(userID string, f Field, raw string) error {
	var value any = raw
	if f.numeric {
		speed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || speed <= 0 {
			return &ValidationError{Field: f.column, Value: raw}
		}
		value = speed
	}

	tx, err := d.Begin()
	if err != nil {
		return &StorageError{Op: "update " + f.column, Err: err}
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`SELECT id FROM user_settings WHERE user_id=?`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return &StorageError{Op: "update " + f.column, Err: err}
	}

	// Имена колонок берутся только из пакетных дескрипторов Field.
	if f.nameCol != "" {
		name := catalog.ResolveName(raw, f.names, f.autoLabel)
		_, err = tx.Exec(
			fmt.Sprintf(`UPDATE user_settings SET %s=?, %s=? WHERE id=?`, f.column, f.nameCol),
			value, name, id,
		)
	} else {
		_, err = tx.Exec(
			fmt.Sprintf(`UPDATE user_settings SET %s=? WHERE id=?`, f.column),
			value, id,
		)
	}
	if err != nil {
		return &StorageError{Op: "update " + f.column, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update " + f.column, Err: err}
	}

	log.Printf("Обновили %s пользователя %s: %s", f.column, userID, raw)
	return nil
}
