package scheduler

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"

	"telegram-translate-bot/internal/utils"
)

// Временные аудио и картинки живут не дольше часа.
const maxTempAge = time.Hour

// Start запускает периодическую чистку временного каталога.
// Удаляются только файлы с нашим префиксом — каталог общий.
func Start(tempDir, prefix string) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	utils.Must(err)

	_, err = s.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			purge(tempDir, prefix)
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}

func purge(tempDir, prefix string) {
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		log.Println("Ошибка чтения временного каталога:", err)
		return
	}

	cutoff := time.Now().Add(-maxTempAge)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(tempDir, e.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("Не удалили устаревший файл %s: %v", path, err)
		}
	}
}
