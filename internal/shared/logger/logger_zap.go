// Package logger содержит общий логгер для server и agent.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и удобный метод для логирования HTTP-запросов.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// Options — параметры логгера. Заполняются из секции log конфига сервера.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // console|json
	File   string // путь к файлу, ротация через lumberjack
	Stdout bool   // дублировать вывод в stdout

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	Sampling *SamplingOptions
}

// SamplingOptions — параметры zap sampling (первые Initial записей в секунду
// пишутся все, дальше каждая Thereafter).
type SamplingOptions struct {
	Initial    int
	Thereafter int
}

// DefaultOptions возвращает настройки по умолчанию:
// текстовый формат, уровень info, файл runtime/logs/http.log.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		Format:     "console",
		File:       filepath.Join("runtime", "logs", "http.log"),
		MaxSizeMB:  100, // MB ≈ ~300 000 строк
		MaxBackups: 10,  // сколько старых файлов хранить
		MaxAgeDays: 30,  // дней
		Compress:   true,
	}
}

// NewHTTPLogger создаёт файловый zap-логгер с настройками по умолчанию.
//
// Логи записываются в файл runtime/logs/http.log.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func NewHTTPLogger() *HTTPLogger {
	return New(DefaultOptions())
}

// New создаёт логгер по переданным опциям.
//
// Незаполненные поля берутся из DefaultOptions. Некорректный уровень
// трактуется как info.
func New(opts Options) *HTTPLogger {
	def := DefaultOptions()
	if opts.File == "" {
		opts.File = def.File
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = def.MaxSizeMB
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = def.MaxBackups
	}
	if opts.MaxAgeDays == 0 {
		opts.MaxAgeDays = def.MaxAgeDays
	}

	_ = os.MkdirAll(filepath.Dir(opts.File), 0755)

	// lumberjack отвечает за ротацию файлов
	writers := []zapcore.WriteSyncer{
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}),
	}
	if opts.Stdout {
		writers = append(writers, zapcore.Lock(os.Stdout))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(opts.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		// выводим обычный текст
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	level := zap.InfoLevel
	if opts.Level != "" {
		if lvl, err := zapcore.ParseLevel(opts.Level); err == nil {
			level = lvl
		}
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)
	if opts.Sampling != nil && opts.Sampling.Initial > 0 {
		core = zapcore.NewSamplerWithOptions(core, time.Second, opts.Sampling.Initial, opts.Sampling.Thereafter)
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri — параметры запроса,
// status — HTTP-статус ответа,
// responseSize — размер ответа в байтах,
// duration — длительность обработки запроса в миллисекундах,
// requestID — идентификатор запроса из заголовка X-Request-ID.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64, requestID string) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
		zap.String("request_id", requestID),
	)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
