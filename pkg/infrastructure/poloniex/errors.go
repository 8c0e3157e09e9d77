package poloniex

import (
	"errors"
	"fmt"
)

// InvalidCommandError 未知のコマンド
type InvalidCommandError struct {
	Command string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Command)
}

// ConfigurationError 設定不備（認証コマンドにキーが無い等）
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// TransportError 通信レイヤの失敗（接続エラー・タイムアウト・5xx）
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError 取引所が返したエラー（メッセージはそのまま保持）
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("poloniex error: %s", e.Message)
}

// DecodeError レスポンスがJSONとして解釈できない
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response, body: %s; error: %v", e.Body, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// isTransient リトライ対象（通信レイヤの失敗のみ）
func isTransient(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
