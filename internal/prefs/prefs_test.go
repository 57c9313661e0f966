package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"telegram-translate-bot/internal/catalog"
	"telegram-translate-bot/internal/storage"
)

func newTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "bot.db"), catalog.DefaultSettings())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewHydratesFromStore(t *testing.T) {
	db := newTestDB(t)

	p := New(db, catalog.DefaultSettings(), "42")
	require.Equal(t, "auto", p.SourceLanguage)
	require.Equal(t, "ru", p.Language)
	require.Equal(t, "Автоопределение", p.SourceLanguageName)
	require.Equal(t, "Русский", p.LanguageName)

	require.NoError(t, p.UpdateLanguage("fr"))

	// Новый фасад видит сохранённое значение.
	p2 := New(db, catalog.DefaultSettings(), "42")
	require.Equal(t, "fr", p2.Language)
	require.Equal(t, "French", p2.LanguageName)
}

func TestUpdateMirrorsLocally(t *testing.T) {
	db := newTestDB(t)
	p := New(db, catalog.DefaultSettings(), "42")

	require.NoError(t, p.UpdateLanguage("fr"))
	require.Equal(t, "fr", p.Language)
	require.Equal(t, "French", p.LanguageName)

	require.NoError(t, p.UpdateSourceLanguage("auto"))
	require.Equal(t, catalog.AutoDetectLabel, p.SourceLanguageName)

	require.NoError(t, p.UpdateAudioLanguage("en"))
	require.Equal(t, "Английский", p.AudioLanguageName)

	require.NoError(t, p.UpdateVoiceType("slow"))
	require.Equal(t, "Медленный", p.VoiceTypeName)

	require.NoError(t, p.UpdateSpeed("2.0"))
	require.InDelta(t, 2.0, p.Speed, 1e-9)

	// Неизвестный код зеркалится с фолбэком имени.
	require.NoError(t, p.UpdateLanguage("xx"))
	require.Equal(t, "XX", p.LanguageName)
}

func TestConstructionFailOpen(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Close())

	// Хранилище недоступно — конструктор не падает и отдаёт дефолты.
	p := New(db, catalog.DefaultSettings(), "42")
	require.Equal(t, "auto", p.SourceLanguage)
	require.Equal(t, "ru", p.Language)
	require.Equal(t, "ru", p.AudioLanguage)
	require.Equal(t, "normal", p.VoiceType)
	require.InDelta(t, 1.0, p.Speed, 1e-9)
	require.Equal(t, "Автоопределение", p.SourceLanguageName)
	require.Equal(t, "Русский", p.LanguageName)
	require.Equal(t, "Русский", p.AudioLanguageName)
	require.Equal(t, "Обычный", p.VoiceTypeName)
}

func TestFailedUpdateLeavesMirrorUntouched(t *testing.T) {
	db := newTestDB(t)
	p := New(db, catalog.DefaultSettings(), "42")
	require.NoError(t, db.Close())

	require.Error(t, p.UpdateLanguage("fr"))
	require.Equal(t, "ru", p.Language)
	require.Equal(t, "Русский", p.LanguageName)
}

func TestUpdateSpeedRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	p := New(db, catalog.DefaultSettings(), "42")

	for _, raw := range []string{"fast", "-1", "0"} {
		err := p.UpdateSpeed(raw)
		var verr *storage.ValidationError
		require.ErrorAs(t, err, &verr, "speed %q", raw)
	}
	require.InDelta(t, 1.0, p.Speed, 1e-9)

	// И БД не тронута.
	s, err := db.GetOrCreate("42")
	require.NoError(t, err)
	require.InDelta(t, 1.0, s.Speed, 1e-9)
}
