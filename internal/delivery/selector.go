package delivery

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"fcclubs/internal/application"
)

const (
	TelegramCeiling = 4000
	DiscordCeiling  = 2000

	DocumentName    = "matches_output.txt"
	DocumentCaption = "📄 Here is the match information:"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Sender is one messaging channel. R addresses a recipient on that channel.
type Sender[R any] interface {
	SendText(ctx context.Context, to R, text string) error
	SendDocument(ctx context.Context, to R, path, name, caption string) error
}

type FanOutResult struct {
	Total  int
	Sent   int
	Failed int
}

// Selector sends a report inline when it fits under the channel ceiling and
// as a text attachment otherwise. The attachment always carries the plain rendering.
type Selector[R any] struct {
	sender  Sender[R]
	ceiling int
	markup  application.Markup
	tempDir string
	logger  Logger
}

func NewSelector[R any](sender Sender[R], ceiling int, markup application.Markup, logger Logger) *Selector[R] {
	return &Selector[R]{sender: sender, ceiling: ceiling, markup: markup, logger: logger}
}

func (s *Selector[R]) Inline(report application.Report) bool {
	return utf8.RuneCountInString(report.Text(s.markup)) < s.ceiling
}

func (s *Selector[R]) Deliver(ctx context.Context, to R, report application.Report) error {
	if s.Inline(report) {
		return s.sender.SendText(ctx, to, report.Text(s.markup))
	}
	return s.sendAsFile(ctx, to, report.Plain)
}

// FanOut delivers report to every recipient; failures are counted, not returned.
func (s *Selector[R]) FanOut(ctx context.Context, recipients []R, report application.Report) FanOutResult {
	res := FanOutResult{Total: len(recipients)}
	for _, to := range recipients {
		if err := s.Deliver(ctx, to, report); err != nil {
			s.logger.Error("failed to deliver report to %v: %v", to, err)
			res.Failed++
			continue
		}
		res.Sent++
	}
	return res
}

func (s *Selector[R]) sendAsFile(ctx context.Context, to R, text string) error {
	f, err := os.CreateTemp(s.tempDir, "matches-*.txt")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return s.sender.SendDocument(ctx, to, path, DocumentName, DocumentCaption)
}
