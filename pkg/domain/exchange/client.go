package exchange

import (
	"time"

	"polo-bot/pkg/domain/model"
)

// Client 取引所クライアント
type Client interface {
	GetTicker(pair *model.CurrencyPair) (*model.Ticker, error)
	GetChartData(pair *model.CurrencyPair, period model.CandlePeriod, start, end time.Time) ([]model.Candle, error)
	GetBalances() (map[model.CurrencyType]string, error)
	GetOpenOrders(pair *model.CurrencyPair) ([]model.OpenOrder, error)
	PostOrder(o *model.NewOrder) (*model.OrderResult, error)
	CancelOrder(orderNumber string) error
}
