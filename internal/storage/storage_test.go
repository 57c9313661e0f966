package storage

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"telegram-translate-bot/internal/catalog"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "bot.db"), catalog.DefaultSettings())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM user_settings`).Scan(&n))
	return n
}

func TestGetOrCreateDefaults(t *testing.T) {
	db := newTestDB(t)

	s, err := db.GetOrCreate("42")
	require.NoError(t, err)

	require.Equal(t, "42", s.UserID)
	require.Equal(t, "auto", s.SourceLanguage)
	require.Equal(t, "ru", s.Language)
	require.Equal(t, "ru", s.AudioLanguage)
	require.Equal(t, "normal", s.VoiceType)
	require.InDelta(t, 1.0, s.Speed, 1e-9)
	require.Equal(t, "Автоопределение", s.SourceLanguageName)
	require.Equal(t, "Русский", s.LanguageName)
	require.Equal(t, "Русский", s.AudioLanguageName)
	require.Equal(t, "Обычный", s.VoiceTypeName)
}

func TestGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)

	first, err := db.GetOrCreate("42")
	require.NoError(t, err)
	second, err := db.GetOrCreate("42")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, countRows(t, db))
}

func TestGetOrCreateConcurrentFirstAccess(t *testing.T) {
	db := newTestDB(t)

	// Восемь одновременных первых обращений одного пользователя:
	// выживает ровно одна строка, все получают одинаковые значения.
	const workers = 8

	var wg sync.WaitGroup
	settings := make([]string, workers)
	errs := make([]error, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			s, err := db.GetOrCreate("race-user")
			if err != nil {
				errs[i] = err
				return
			}
			settings[i] = s.UserID + "/" + s.Language + "/" + s.LanguageName
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
		require.Equal(t, "race-user/ru/Русский", settings[i], "worker %d", i)
	}
	require.Equal(t, 1, countRows(t, db))
}

func TestGetOrCreateCustomDefaults(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "bot.db"), catalog.Defaults{
		SourceLanguage: "en",
		Language:       "de",
		AudioLanguage:  "en",
		VoiceType:      "slow",
		Speed:          1.5,
	})
	require.NoError(t, err)
	defer db.Close()

	s, err := db.GetOrCreate("7")
	require.NoError(t, err)
	require.Equal(t, "English", s.SourceLanguageName)
	require.Equal(t, "German", s.LanguageName)
	require.Equal(t, "Английский", s.AudioLanguageName)
	require.Equal(t, "Медленный", s.VoiceTypeName)
	require.InDelta(t, 1.5, s.Speed, 1e-9)
}

func TestUpdateFieldWriteThenRead(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetOrCreate("42")
	require.NoError(t, err)

	require.NoError(t, db.UpdateField("42", FieldLanguage, "fr"))
	s, err := db.GetOrCreate("42")
	require.NoError(t, err)
	require.Equal(t, "fr", s.Language)
	require.Equal(t, "French", s.LanguageName)

	// Неизвестный код — имя заглавными.
	require.NoError(t, db.UpdateField("42", FieldLanguage, "xx"))
	s, err = db.GetOrCreate("42")
	require.NoError(t, err)
	require.Equal(t, "XX", s.LanguageName)

	// Возврат исходного языка в auto восстанавливает фиксированную метку.
	require.NoError(t, db.UpdateField("42", FieldSourceLanguage, "en"))
	require.NoError(t, db.UpdateField("42", FieldSourceLanguage, "auto"))
	s, err = db.GetOrCreate("42")
	require.NoError(t, err)
	require.Equal(t, "auto", s.SourceLanguage)
	require.Equal(t, "Автоопределение", s.SourceLanguageName)

	require.NoError(t, db.UpdateField("42", FieldVoiceType, "slow"))
	s, err = db.GetOrCreate("42")
	require.NoError(t, err)
	require.Equal(t, "slow", s.VoiceType)
	require.Equal(t, "Медленный", s.VoiceTypeName)

	require.NoError(t, db.UpdateField("42", FieldSpeed, "2.0"))
	s, err = db.GetOrCreate("42")
	require.NoError(t, err)
	require.InDelta(t, 2.0, s.Speed, 1e-9)
}

func TestUpdateFieldMissingUser(t *testing.T) {
	db := newTestDB(t)

	// Обновление несуществующего пользователя — тихий no-op.
	require.NoError(t, db.UpdateField("999", FieldLanguage, "fr"))
	require.Equal(t, 0, countRows(t, db))
}

func TestUpdateSpeedValidation(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetOrCreate("42")
	require.NoError(t, err)

	for _, raw := range []string{"fast", "", "0", "-1.5"} {
		err := db.UpdateField("42", FieldSpeed, raw)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "speed %q", raw)
	}

	// Строка не тронута.
	s, err := db.GetOrCreate("42")
	require.NoError(t, err)
	require.InDelta(t, 1.0, s.Speed, 1e-9)
}

func TestGetOrCreateReturnsDetachedCopy(t *testing.T) {
	db := newTestDB(t)

	s, err := db.GetOrCreate("42")
	require.NoError(t, err)
	s.Language = "mutated"

	again, err := db.GetOrCreate("42")
	require.NoError(t, err)
	require.Equal(t, "ru", again.Language)
}

func TestStorageErrorAfterClose(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Close())

	_, err := db.GetOrCreate("42")
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	require.True(t, errors.Is(err, serr.Err))
}
