package poloniex

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"polo-bot/pkg/domain/model"
)

// Ticker 全市場の市況情報を取得
func (c *Client) Ticker() (map[string]model.Ticker, error) {
	raw, err := c.Do(ReturnTicker, nil)
	if err != nil {
		return nil, err
	}
	var res map[string]model.Ticker
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return res, nil
}

// GetTicker 指定ペアの市況情報を取得
func (c *Client) GetTicker(pair *model.CurrencyPair) (*model.Ticker, error) {
	tickers, err := c.Ticker()
	if err != nil {
		return nil, err
	}
	t, ok := tickers[pair.String()]
	if !ok {
		return nil, fmt.Errorf("unknown currency pair: %s", pair.String())
	}
	return &t, nil
}

// DailyVolume 全市場の24時間出来高を取得
func (c *Client) DailyVolume() (json.RawMessage, error) {
	return c.Do(Return24hVolume, nil)
}

// Currencies 通貨情報を取得
func (c *Client) Currencies() (json.RawMessage, error) {
	return c.Do(ReturnCurrencies, nil)
}

// LoanOrders 指定通貨の貸借板を取得
func (c *Client) LoanOrders(coin model.CurrencyType) (json.RawMessage, error) {
	return c.Do(ReturnLoanOrders, map[string]string{
		"currency": strings.ToUpper(string(coin)),
	})
}

// GetOrderBook 指定ペアの注文板を取得（depthが0以下なら20件）
func (c *Client) GetOrderBook(pair *model.CurrencyPair, depth int) (*model.OrderBook, error) {
	if depth <= 0 {
		depth = 20
	}
	raw, err := c.Do(ReturnOrderBook, map[string]string{
		"currencyPair": pair.String(),
		"depth":        strconv.Itoa(depth),
	})
	if err != nil {
		return nil, err
	}
	var res model.OrderBook
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return &res, nil
}

// GetChartData ロウソク足を取得。periodが不正なら日足、
// start/endがゼロ値なら直近1か月分を返す。
func (c *Client) GetChartData(pair *model.CurrencyPair, period model.CandlePeriod, start, end time.Time) ([]model.Candle, error) {
	if !period.Valid() {
		period = model.Candle1d
	}
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.Add(-Month * time.Second)
	}
	raw, err := c.Do(ReturnChartData, map[string]string{
		"currencyPair": pair.String(),
		"period":       strconv.Itoa(int(period)),
		"start":        strconv.FormatInt(start.Unix(), 10),
		"end":          strconv.FormatInt(end.Unix(), 10),
	})
	if err != nil {
		return nil, err
	}
	var res []model.Candle
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return res, nil
}

// MarketTradeHist 指定ペアの公開約定履歴を取得
func (c *Client) MarketTradeHist(pair *model.CurrencyPair, start, end time.Time) (json.RawMessage, error) {
	args := map[string]string{"currencyPair": pair.String()}
	if !start.IsZero() {
		args["start"] = strconv.FormatInt(start.Unix(), 10)
	}
	if !end.IsZero() {
		args["end"] = strconv.FormatInt(end.Unix(), 10)
	}
	return c.Do(ReturnMarketTradeHistory, args)
}
