package model

const (
	// Sell 売り注文
	Sell OrderType = "sell"
	// Buy 買い注文
	Buy OrderType = "buy"
)

// OrderFillType 注文の執行条件
type OrderFillType string

const (
	// FillOrKill 全量即時約定できなければ失効
	FillOrKill OrderFillType = "fillOrKill"
	// ImmediateOrCancel 即時約定可能分のみ約定
	ImmediateOrCancel OrderFillType = "immediateOrCancel"
	// PostOnly メイカー注文のみ
	PostOnly OrderFillType = "postOnly"
)

const (
	// USDT テザー
	USDT CurrencyType = "usdt"
	// BTC ビットコイン
	BTC CurrencyType = "btc"
	// ETH イーサリアム
	ETH CurrencyType = "eth"
	// XMR モネロ
	XMR CurrencyType = "xmr"
	// LTC ライトコイン
	LTC CurrencyType = "ltc"
)

var (
	// UsdtBtc BTC/USDT
	UsdtBtc CurrencyPair = CurrencyPair{Key: BTC, Settlement: USDT}
	// UsdtEth ETH/USDT
	UsdtEth CurrencyPair = CurrencyPair{Key: ETH, Settlement: USDT}
	// BtcEth ETH/BTC
	BtcEth CurrencyPair = CurrencyPair{Key: ETH, Settlement: BTC}
	// BtcXmr XMR/BTC
	BtcXmr CurrencyPair = CurrencyPair{Key: XMR, Settlement: BTC}
)
