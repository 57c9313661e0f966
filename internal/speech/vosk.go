package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	vosk "github.com/alphacep/vosk-api/go"
)

const voskSampleRate = 16000

// Vosk — офлайн-распознавание через локальную модель.
// Модель одноязычная, параметр lang игнорируется.
type Vosk struct {
	model *vosk.VoskModel
}

// NewVosk загружает модель из каталога modelPath.
func NewVosk(modelPath string) (*Vosk, error) {
	if st, err := os.Stat(modelPath); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("vosk: model directory %q not found", modelPath)
	}
	model, err := vosk.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("vosk: load model: %w", err)
	}
	return &Vosk{model: model}, nil
}

func (v *Vosk) Name() string { return "vosk" }

func (v *Vosk) Transcribe(ctx context.Context, wavPath, lang string) (string, error) {
	rec, err := vosk.NewRecognizer(v.model, voskSampleRate)
	if err != nil {
		return "", err
	}
	defer rec.Free()

	pcm, err := readWAVData(wavPath)
	if err != nil {
		return "", err
	}

	// Скармливаем аудио порциями, чтобы не держать гигантский буфер в C.
	const chunk = 8000
	for off := 0; off < len(pcm); off += chunk {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		end := off + chunk
		if end > len(pcm) {
			end = len(pcm)
		}
		rec.AcceptWaveform(pcm[off:end])
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(rec.FinalResult()), &result); err != nil {
		return "", err
	}
	return result.Text, nil
}

// readWAVData возвращает PCM-данные файла, отрезая канонический RIFF-заголовок.
func readWAVData(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b) > 44 && string(b[:4]) == "RIFF" {
		return b[44:], nil
	}
	return b, nil
}
