package poloniex

import (
	"net/http"
	"time"

	"polo-bot/pkg/domain"
)

const (
	publicAPIURL  = "https://poloniex.com/public"
	tradingAPIURL = "https://poloniex.com/tradingApi"

	defaultTimeout = time.Second
)

// 期間プレースホルダ（秒）
const (
	Minute = 60
	Hour   = Minute * 60
	Day    = Hour * 24
	Week   = Day * 7
	Month  = Day * 30
	Year   = Day * 365
)

// Config Poloniexクライアント設定
type Config struct {
	// Key APIキー（公開APIのみなら空で良い）
	Key string
	// Secret APIシークレット
	Secret string
	// Timeout 1回の送信あたりのタイムアウト（0ならデフォルト）
	Timeout time.Duration
	// DisablePacer 送信間隔調整を無効化する
	DisablePacer bool
	// PacerInterval 送信の最小間隔（0ならデフォルト）
	PacerInterval time.Duration
	// RetryDelays リトライの待ち時間列（nilならデフォルト）
	RetryDelays []time.Duration
	// JSONNumbers trueなら数値をfloat64でデコードする。
	// falseなら桁落ちしないjson.Numberのまま返す。
	JSONNumbers bool
}

// Client Poloniex用クライアント
type Client struct {
	key      string
	secret   string
	jsonNums bool
	http     *http.Client
	pacer    *Pacer
	nonces   *NonceSource
	retry    *retryPolicy
	logger   domain.Logger

	publicURL  string
	tradingURL string
}

// NewClient Poloniex用クライアントの生成
func NewClient(conf *Config, logger domain.Logger) *Client {
	if conf == nil {
		conf = &Config{}
	}
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var pacer *Pacer
	if !conf.DisablePacer {
		pacer = NewPacer(conf.PacerInterval)
	}
	return &Client{
		key:        conf.Key,
		secret:     conf.Secret,
		jsonNums:   conf.JSONNumbers,
		http:       &http.Client{Timeout: timeout},
		pacer:      pacer,
		nonces:     NewNonceSource(),
		retry:      newRetryPolicy(conf.RetryDelays, logger),
		logger:     logger,
		publicURL:  publicAPIURL,
		tradingURL: tradingAPIURL,
	}
}

// NewPublicClient 公開APIのみ利用するクライアントの生成
func NewPublicClient(logger domain.Logger) *Client {
	return NewClient(&Config{}, logger)
}
