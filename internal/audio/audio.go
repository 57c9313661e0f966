// Package audio — конвертация аудио внешним ffmpeg.
// Кодеки и контейнеры остаются заботой ffmpeg, не этого кода.
package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ToWAV конвертирует файл в WAV 16kHz mono s16le — формат распознавателей.
func ToWAV(ctx context.Context, src, dst string) error {
	return run(ctx, wavArgs(src, dst))
}

// ToVoice конвертирует файл в ogg/opus — формат голосовых сообщений Telegram.
func ToVoice(ctx context.Context, src, dst string) error {
	return run(ctx, voiceArgs(src, dst))
}

// AdjustSpeed меняет скорость воспроизведения без смены высоты тона.
func AdjustSpeed(ctx context.Context, src, dst string, speed float64) error {
	if speed == 1.0 {
		return run(ctx, []string{"-i", src, "-c", "copy", dst, "-y"})
	}
	return run(ctx, speedArgs(src, dst, speed))
}

func wavArgs(src, dst string) []string {
	return []string{"-i", src, "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", dst, "-y"}
}

func voiceArgs(src, dst string) []string {
	return []string{"-i", src, "-c:a", "libopus", "-b:a", "48k", "-vn", dst, "-y"}
}

func speedArgs(src, dst string, speed float64) []string {
	return []string{"-i", src, "-filter:a", atempoChain(speed), dst, "-y"}
}

// atempoChain собирает цепочку фильтров atempo: один фильтр принимает
// множитель только в диапазоне 0.5–2.0, большее/меньшее набирается каскадом.
func atempoChain(speed float64) string {
	var parts []string
	for speed > 2.0 {
		parts = append(parts, "atempo=2.0")
		speed /= 2.0
	}
	for speed < 0.5 {
		parts = append(parts, "atempo=0.5")
		speed /= 0.5
	}
	parts = append(parts, "atempo="+strconv.FormatFloat(speed, 'f', -1, 64))
	return strings.Join(parts, ",")
}

func run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("ffmpeg %s: %v", strings.Join(args, " "), err)
		return fmt.Errorf("ffmpeg: %w: %s", err, out)
	}
	return nil
}
