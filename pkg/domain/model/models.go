package model

import (
	"fmt"
	"strings"
	"time"
)

// CurrencyType 通貨種別
type CurrencyType string

// OrderType 注文種別
type OrderType string

// CurrencyPair 通貨ペア
type CurrencyPair struct {
	// Key 取引対象の通貨
	Key CurrencyType
	// Settlement 決済通貨
	Settlement CurrencyType
}

// String Poloniex表記（決済通貨が先、大文字）
func (p *CurrencyPair) String() string {
	return strings.ToUpper(fmt.Sprintf("%s_%s", p.Settlement, p.Key))
}

// ParseToCurrencyPair 通貨ペアへ変換（例: usdt_btc, USDT_BTC）
func ParseToCurrencyPair(s string) (*CurrencyPair, error) {
	splited := strings.Split(strings.ToLower(s), "_")
	if len(splited) != 2 || splited[0] == "" || splited[1] == "" {
		return nil, fmt.Errorf("failed to parse string to CurrencyPair, value: %s", s)
	}
	return &CurrencyPair{
		Key:        CurrencyType(splited[1]),
		Settlement: CurrencyType(splited[0]),
	}, nil
}

// Ticker 市況情報
type Ticker struct {
	ID            int    `json:"id"`
	Last          string `json:"last"`
	LowestAsk     string `json:"lowestAsk"`
	HighestBid    string `json:"highestBid"`
	PercentChange string `json:"percentChange"`
	BaseVolume    string `json:"baseVolume"`
	QuoteVolume   string `json:"quoteVolume"`
	IsFrozen      string `json:"isFrozen"`
	High24hr      string `json:"high24hr"`
	Low24hr       string `json:"low24hr"`
}

// CandlePeriod ロウソク足の期間（秒）
type CandlePeriod int

const (
	Candle5m  CandlePeriod = 300
	Candle15m CandlePeriod = 900
	Candle30m CandlePeriod = 1800
	Candle2h  CandlePeriod = 7200
	Candle4h  CandlePeriod = 14400
	Candle1d  CandlePeriod = 86400
)

// Valid サポートされた期間かどうか
func (p CandlePeriod) Valid() bool {
	switch p {
	case Candle5m, Candle15m, Candle30m, Candle2h, Candle4h, Candle1d:
		return true
	}
	return false
}

// Candle ロウソク足
type Candle struct {
	Date            int64   `json:"date"`
	High            float64 `json:"high"`
	Low             float64 `json:"low"`
	Open            float64 `json:"open"`
	Close           float64 `json:"close"`
	Volume          float64 `json:"volume"`
	QuoteVolume     float64 `json:"quoteVolume"`
	WeightedAverage float64 `json:"weightedAverage"`
}

// Rate レート情報
type Rate struct {
	Pair     CurrencyPair
	Last     float64
	Datetime time.Time
}

// OpenOrder 未決済注文
type OpenOrder struct {
	OrderNumber    string `json:"orderNumber"`
	Type           string `json:"type"`
	Rate           string `json:"rate"`
	StartingAmount string `json:"startingAmount"`
	Amount         string `json:"amount"`
	Total          string `json:"total"`
	Date           string `json:"date"`
	Margin         int    `json:"margin"`
}

// NewOrder 新規注文
type NewOrder struct {
	Type   OrderType
	Pair   CurrencyPair
	Rate   string
	Amount string
	// FillType 任意の執行条件（空なら指定なし）
	FillType OrderFillType
}

// Trade 約定
type Trade struct {
	Amount  string `json:"amount"`
	Date    string `json:"date"`
	Rate    string `json:"rate"`
	Total   string `json:"total"`
	TradeID string `json:"tradeID"`
	Type    string `json:"type"`
}

// OrderResult 注文結果
type OrderResult struct {
	OrderNumber     string  `json:"orderNumber"`
	ResultingTrades []Trade `json:"resultingTrades"`
}

// OrderBook 注文板
type OrderBook struct {
	Asks     [][2]interface{} `json:"asks"`
	Bids     [][2]interface{} `json:"bids"`
	IsFrozen string           `json:"isFrozen"`
	Seq      int64            `json:"seq"`
}
