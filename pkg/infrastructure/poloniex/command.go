package poloniex

// Command Poloniex APIコマンド
type Command int

const (
	// 公開API
	ReturnTicker Command = iota
	Return24hVolume
	ReturnOrderBook
	ReturnMarketTradeHistory
	ReturnChartData
	ReturnCurrencies
	ReturnLoanOrders
	// 認証API
	ReturnBalances
	ReturnCompleteBalances
	ReturnDepositAddresses
	GenerateNewAddress
	ReturnDepositsWithdrawals
	ReturnOpenOrders
	ReturnTradeHistory
	ReturnAvailableAccountBalances
	ReturnTradableBalances
	ReturnOpenLoanOffers
	ReturnOrderTrades
	ReturnActiveLoans
	ReturnLendingHistory
	CreateLoanOffer
	CancelLoanOffer
	ToggleAutoRenew
	Buy
	Sell
	CancelOrder
	MoveOrder
	Withdraw
	ReturnFeeInfo
	TransferBalance
	ReturnMarginAccountSummary
	MarginBuy
	MarginSell
	GetMarginPosition
	CloseMarginPosition
)

type commandSpec struct {
	name    string
	private bool
}

// commands 既知コマンドの一覧。ここに無いコマンドは送信前に拒否される。
// returnTradeHistory は認証・公開の両方に存在するワイヤ名だが、
// ReturnMarketTradeHistory が公開側の専用エントリを持つ。
var commands = map[Command]commandSpec{
	ReturnTicker:                   {"returnTicker", false},
	Return24hVolume:                {"return24hVolume", false},
	ReturnOrderBook:                {"returnOrderBook", false},
	ReturnMarketTradeHistory:       {"returnTradeHistory", false},
	ReturnChartData:                {"returnChartData", false},
	ReturnCurrencies:               {"returnCurrencies", false},
	ReturnLoanOrders:               {"returnLoanOrders", false},
	ReturnBalances:                 {"returnBalances", true},
	ReturnCompleteBalances:         {"returnCompleteBalances", true},
	ReturnDepositAddresses:         {"returnDepositAddresses", true},
	GenerateNewAddress:             {"generateNewAddress", true},
	ReturnDepositsWithdrawals:      {"returnDepositsWithdrawals", true},
	ReturnOpenOrders:               {"returnOpenOrders", true},
	ReturnTradeHistory:             {"returnTradeHistory", true},
	ReturnAvailableAccountBalances: {"returnAvailableAccountBalances", true},
	ReturnTradableBalances:         {"returnTradableBalances", true},
	ReturnOpenLoanOffers:           {"returnOpenLoanOffers", true},
	ReturnOrderTrades:              {"returnOrderTrades", true},
	ReturnActiveLoans:              {"returnActiveLoans", true},
	ReturnLendingHistory:           {"returnLendingHistory", true},
	CreateLoanOffer:                {"createLoanOffer", true},
	CancelLoanOffer:                {"cancelLoanOffer", true},
	ToggleAutoRenew:                {"toggleAutoRenew", true},
	Buy:                            {"buy", true},
	Sell:                           {"sell", true},
	CancelOrder:                    {"cancelOrder", true},
	MoveOrder:                      {"moveOrder", true},
	Withdraw:                       {"withdraw", true},
	ReturnFeeInfo:                  {"returnFeeInfo", true},
	TransferBalance:                {"transferBalance", true},
	ReturnMarginAccountSummary:     {"returnMarginAccountSummary", true},
	MarginBuy:                      {"marginBuy", true},
	MarginSell:                     {"marginSell", true},
	GetMarginPosition:              {"getMarginPosition", true},
	CloseMarginPosition:            {"closeMarginPosition", true},
}

// String ワイヤ上のコマンド名
func (c Command) String() string {
	if spec, ok := commands[c]; ok {
		return spec.name
	}
	return "unknown"
}

// Private 認証が必要なコマンドかどうか
func (c Command) Private() bool {
	if spec, ok := commands[c]; ok {
		return spec.private
	}
	return false
}

func (c Command) known() bool {
	_, ok := commands[c]
	return ok
}

// ParseCommand コマンド名からCommandへ変換する。
// 認証コマンドを優先して解決する（returnTradeHistoryの重複対策）。
func ParseCommand(name string) (Command, bool) {
	found := Command(-1)
	for c, spec := range commands {
		if spec.name != name {
			continue
		}
		if spec.private {
			return c, true
		}
		found = c
	}
	if found >= 0 {
		return found, true
	}
	return -1, false
}
