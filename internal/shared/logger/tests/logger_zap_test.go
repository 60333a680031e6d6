package tests

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"
)

func TestNewHTTPLogger_CreatesLogFileAndWrites(t *testing.T) {
	// ВАЖНО: тест не параллелим, т.к. путь общий.
	logPath := filepath.Join("runtime", "logs", "http.log")

	// подчистим старый файл (если есть)
	os.Remove(logPath)

	l := logger.NewHTTPLogger()
	// пишем лог
	l.Info("test message")
	// закрываем буферы zap
	_ = l.Sync()

	// проверяем, что файл создан
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to exist at %q, got error: %v", logPath, err)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)

	if !regexp.MustCompile(`\btest message\b`).MatchString(s) {
		t.Fatalf("expected log to contain message, got: %q", s)
	}

	// проверяем формат времени: "HH:MM:SS DD.MM.YYYY"
	timeRe := regexp.MustCompile(`\b\d{2}:\d{2}:\d{2} \d{2}\.\d{2}\.\d{4}\b`)
	if !timeRe.MatchString(s) {
		t.Fatalf("expected custom time format (HH:MM:SS DD.MM.YYYY), got: %q", s)
	}

	os.Remove(logPath)
}

func TestHTTPLogger_LogRequest_WritesStructuredFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "access.log")

	l := logger.New(logger.Options{File: logPath, Format: "json"})
	l.LogRequest("POST", "/user/verification", 401, 20, 158.5463, "req-1")
	l.Sync()

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	s := string(b)

	mustContain := []string{
		`"msg":"HTTP request"`,
		`"method":"POST"`,
		`"uri":"/user/verification"`,
		`"status":401`,
		`"response_size":20`,
		`"duration_ms"`,
		`"request_id":"req-1"`,
	}
	for _, sub := range mustContain {
		require.Contains(t, s, sub)
	}
}

// уровень warn отсекает info
func TestNew_RespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")

	l := logger.New(logger.Options{File: logPath, Level: "warn"})
	l.Info("hidden message")
	l.Warn("visible message")
	l.Sync()

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NotContains(t, string(b), "hidden message")
	require.Contains(t, string(b), "visible message")
}

// мусор в уровне не ломает логгер
func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "info.log")

	l := logger.New(logger.Options{File: logPath, Level: "loud"})
	l.Debug("debug message")
	l.Info("info message")
	l.Sync()

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NotContains(t, string(b), "debug message")
	require.Contains(t, string(b), "info message")
}
