package memory

import (
	"log"

	"polo-bot/pkg/domain"
)

// ログレベル
const (
	Debug = iota
	Info
	Error
)

// Logger 標準出力向けのレベル付きロガー
type Logger struct {
	Level int
}

// Debug デバッグログ出力
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.Level > Debug {
		return
	}
	log.Printf("[DEBUG] "+format, v...)
}

// Info 情報ログ出力
func (l *Logger) Info(format string, v ...interface{}) {
	if l.Level > Info {
		return
	}
	log.Printf("[INFO] "+format, v...)
}

// Error エラーログ出力
func (l *Logger) Error(format string, v ...interface{}) {
	if l.Level > Error {
		return
	}
	log.Printf(domain.Red("[ERROR] ")+format, v...)
}
