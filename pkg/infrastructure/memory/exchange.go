package memory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"polo-bot/pkg/domain/model"
)

// Rate モック用レート
type Rate struct {
	Datetime string
	Last     float64
}

// NewRate レートを生成
func NewRate(v []string) (*Rate, error) {
	if len(v) != 2 {
		return nil, fmt.Errorf("csv is not 2 columns, [%d columns]", len(v))
	}
	last, err := strconv.ParseFloat(v[1], 64)
	if err != nil {
		return nil, err
	}
	return &Rate{
		Datetime: v[0],
		Last:     last,
	}, nil
}

// ExchangeMock 取引所モック。CSVのレート履歴を1ステップずつ再生する。
type ExchangeMock struct {
	rateReader  *csv.Reader
	rate        Rate
	candles     []model.Candle
	balances    map[model.CurrencyType]string
	orders      []model.OpenOrder
	nextOrderID int
}

// NewExchangeMock 生成
func NewExchangeMock(r io.Reader) (*ExchangeMock, error) {
	reader := csv.NewReader(r)

	// ヘッダを読み飛ばす
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	record, err := reader.Read()
	if err != nil {
		return nil, err
	}
	rate, err := NewRate(record)
	if err != nil {
		return nil, err
	}

	return &ExchangeMock{
		rateReader:  reader,
		rate:        *rate,
		balances:    map[model.CurrencyType]string{},
		orders:      []model.OpenOrder{},
		nextOrderID: 1,
	}, nil
}

// SetCandles GetChartDataが返すロウソク足を設定
func (e *ExchangeMock) SetCandles(candles []model.Candle) {
	e.candles = candles
}

// SetBalance 残高を設定
func (e *ExchangeMock) SetBalance(coin model.CurrencyType, amount string) {
	e.balances[coin] = amount
}

// GetTicker 現在のレートを返す
func (e *ExchangeMock) GetTicker(pair *model.CurrencyPair) (*model.Ticker, error) {
	last := strconv.FormatFloat(e.rate.Last, 'f', -1, 64)
	return &model.Ticker{
		Last:       last,
		LowestAsk:  last,
		HighestBid: last,
	}, nil
}

// GetChartData 設定済みのロウソク足を返す
func (e *ExchangeMock) GetChartData(pair *model.CurrencyPair, period model.CandlePeriod, start, end time.Time) ([]model.Candle, error) {
	return e.candles, nil
}

// GetBalances 残高を取得
func (e *ExchangeMock) GetBalances() (map[model.CurrencyType]string, error) {
	return e.balances, nil
}

// GetOpenOrders 未決済の注文を取得
func (e *ExchangeMock) GetOpenOrders(pair *model.CurrencyPair) ([]model.OpenOrder, error) {
	return append([]model.OpenOrder{}, e.orders...), nil
}

// PostOrder 注文を送信
func (e *ExchangeMock) PostOrder(o *model.NewOrder) (*model.OrderResult, error) {
	orderNumber := strconv.Itoa(e.nextOrderID)
	e.nextOrderID++

	e.orders = append(e.orders, model.OpenOrder{
		OrderNumber: orderNumber,
		Type:        string(o.Type),
		Rate:        o.Rate,
		Amount:      o.Amount,
	})
	return &model.OrderResult{OrderNumber: orderNumber}, nil
}

// CancelOrder 注文を取消
func (e *ExchangeMock) CancelOrder(orderNumber string) error {
	for i, o := range e.orders {
		if o.OrderNumber == orderNumber {
			e.orders = append(e.orders[:i], e.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order not found, orderNumber: %s", orderNumber)
}

// NextStep 次のステップに進める
func (e *ExchangeMock) NextStep() bool {
	record, err := e.rateReader.Read()
	if err != nil {
		return false
	}
	rate, err := NewRate(record)
	if err != nil {
		return false
	}
	e.rate = *rate
	return true
}
