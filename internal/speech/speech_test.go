package speech

import (
	"context"
	"errors"
	"testing"
)

type fakeRecognizer struct {
	name string
	text string
	err  error
}

func (f *fakeRecognizer) Name() string { return f.name }

func (f *fakeRecognizer) Transcribe(ctx context.Context, wavPath, lang string) (string, error) {
	return f.text, f.err
}

func TestChainFirstSuccessWins(t *testing.T) {
	chain := NewChain(
		&fakeRecognizer{name: "a", err: errors.New("boom")},
		&fakeRecognizer{name: "b", text: "привет"},
		&fakeRecognizer{name: "c", text: "should not be reached"},
	)

	got, err := chain.Transcribe(context.Background(), "x.wav", "ru")
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if got != "привет" {
		t.Fatalf("got %q", got)
	}
}

func TestChainSkipsEmptyResult(t *testing.T) {
	chain := NewChain(
		&fakeRecognizer{name: "a", text: ""},
		&fakeRecognizer{name: "b", text: "текст"},
	)

	got, err := chain.Transcribe(context.Background(), "x.wav", "ru")
	if err != nil || got != "текст" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestChainAllFail(t *testing.T) {
	chain := NewChain(
		&fakeRecognizer{name: "a", err: errors.New("boom")},
		&fakeRecognizer{name: "b", text: ""},
	)

	if _, err := chain.Transcribe(context.Background(), "x.wav", "ru"); !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("want ErrNoSpeech, got %v", err)
	}
}
