package poloniex

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"polo-bot/pkg/domain/model"
)

// GetBalances 残高取得
func (c *Client) GetBalances() (map[model.CurrencyType]string, error) {
	raw, err := c.Do(ReturnBalances, nil)
	if err != nil {
		return nil, err
	}
	var res map[string]string
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	balances := map[model.CurrencyType]string{}
	for coin, amount := range res {
		balances[model.CurrencyType(strings.ToLower(coin))] = amount
	}
	return balances, nil
}

// CompleteBalances 詳細残高取得
func (c *Client) CompleteBalances(account string) (json.RawMessage, error) {
	if account == "" {
		account = "all"
	}
	return c.Do(ReturnCompleteBalances, map[string]string{"account": account})
}

// DepositAddresses 入金アドレス一覧取得
func (c *Client) DepositAddresses() (json.RawMessage, error) {
	return c.Do(ReturnDepositAddresses, nil)
}

// GenerateNewAddress 指定通貨の入金アドレスを新規作成
func (c *Client) GenerateNewAddress(coin model.CurrencyType) (json.RawMessage, error) {
	return c.Do(GenerateNewAddress, map[string]string{
		"currency": strings.ToUpper(string(coin)),
	})
}

// DepositsWithdrawals 入出金履歴取得
func (c *Client) DepositsWithdrawals(start, end time.Time) (json.RawMessage, error) {
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.Add(-Month * time.Second)
	}
	return c.Do(ReturnDepositsWithdrawals, map[string]string{
		"start": strconv.FormatInt(start.Unix(), 10),
		"end":   strconv.FormatInt(end.Unix(), 10),
	})
}

// GetOpenOrders 指定ペアの未決済注文取得
func (c *Client) GetOpenOrders(pair *model.CurrencyPair) ([]model.OpenOrder, error) {
	raw, err := c.Do(ReturnOpenOrders, map[string]string{
		"currencyPair": pair.String(),
	})
	if err != nil {
		return nil, err
	}
	var res []model.OpenOrder
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return res, nil
}

// TradeHistory 自分の約定履歴取得
func (c *Client) TradeHistory(pair *model.CurrencyPair, start, end time.Time) (json.RawMessage, error) {
	args := map[string]string{"currencyPair": pair.String()}
	if !start.IsZero() {
		args["start"] = strconv.FormatInt(start.Unix(), 10)
	}
	if !end.IsZero() {
		args["end"] = strconv.FormatInt(end.Unix(), 10)
	}
	return c.Do(ReturnTradeHistory, args)
}

// AvailableAccountBalances 口座種別ごとの利用可能残高取得
func (c *Client) AvailableAccountBalances(account string) (json.RawMessage, error) {
	args := map[string]string{}
	if account != "" {
		args["account"] = account
	}
	return c.Do(ReturnAvailableAccountBalances, args)
}

// TradableBalances 証拠金取引可能残高取得
func (c *Client) TradableBalances() (json.RawMessage, error) {
	return c.Do(ReturnTradableBalances, nil)
}

// OpenLoanOffers 未約定の貸出オファー取得
func (c *Client) OpenLoanOffers() (json.RawMessage, error) {
	return c.Do(ReturnOpenLoanOffers, nil)
}

// OrderTrades 指定注文の約定一覧取得
func (c *Client) OrderTrades(orderNumber string) (json.RawMessage, error) {
	return c.Do(ReturnOrderTrades, map[string]string{"orderNumber": orderNumber})
}

// ActiveLoans 貸出中一覧取得
func (c *Client) ActiveLoans() (json.RawMessage, error) {
	return c.Do(ReturnActiveLoans, nil)
}

// LendingHistory 貸出履歴取得
func (c *Client) LendingHistory(start, end time.Time, limit int) (json.RawMessage, error) {
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.Add(-Month * time.Second)
	}
	args := map[string]string{
		"start": strconv.FormatInt(start.Unix(), 10),
		"end":   strconv.FormatInt(end.Unix(), 10),
	}
	if limit > 0 {
		args["limit"] = strconv.Itoa(limit)
	}
	return c.Do(ReturnLendingHistory, args)
}

// CreateLoanOffer 貸出オファー作成
func (c *Client) CreateLoanOffer(coin model.CurrencyType, amount, rate string, autoRenew bool, duration int) (json.RawMessage, error) {
	renew := "0"
	if autoRenew {
		renew = "1"
	}
	if duration <= 0 {
		duration = 2
	}
	return c.Do(CreateLoanOffer, map[string]string{
		"currency":    strings.ToUpper(string(coin)),
		"amount":      amount,
		"duration":    strconv.Itoa(duration),
		"autoRenew":   renew,
		"lendingRate": rate,
	})
}

// CancelLoanOffer 貸出オファー取消
func (c *Client) CancelLoanOffer(orderNumber string) (json.RawMessage, error) {
	return c.Do(CancelLoanOffer, map[string]string{"orderNumber": orderNumber})
}

// ToggleAutoRenew 貸出の自動更新を切り替え
func (c *Client) ToggleAutoRenew(orderNumber string) (json.RawMessage, error) {
	return c.Do(ToggleAutoRenew, map[string]string{"orderNumber": orderNumber})
}

// PostOrder 注文登録
func (c *Client) PostOrder(o *model.NewOrder) (*model.OrderResult, error) {
	var cmd Command
	switch o.Type {
	case model.Buy:
		cmd = Buy
	case model.Sell:
		cmd = Sell
	default:
		return nil, fmt.Errorf("unknown order type: %s", o.Type)
	}

	args := map[string]string{
		"currencyPair": o.Pair.String(),
		"rate":         o.Rate,
		"amount":       o.Amount,
	}
	if o.FillType != "" {
		switch o.FillType {
		case model.FillOrKill, model.ImmediateOrCancel, model.PostOnly:
			args[string(o.FillType)] = "1"
		default:
			return nil, fmt.Errorf("unknown order fill type: %s", o.FillType)
		}
	}

	raw, err := c.Do(cmd, args)
	if err != nil {
		return nil, err
	}
	var res model.OrderResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return &res, nil
}

// CancelOrder 注文取消
func (c *Client) CancelOrder(orderNumber string) error {
	_, err := c.Do(CancelOrder, map[string]string{"orderNumber": orderNumber})
	return err
}

// MoveOrder 注文の指値変更
func (c *Client) MoveOrder(orderNumber, rate, amount string, fillType model.OrderFillType) (json.RawMessage, error) {
	args := map[string]string{
		"orderNumber": orderNumber,
		"rate":        rate,
	}
	if amount != "" {
		args["amount"] = amount
	}
	if fillType != "" {
		switch fillType {
		case model.ImmediateOrCancel, model.PostOnly:
			args[string(fillType)] = "1"
		default:
			return nil, fmt.Errorf("unknown order fill type: %s", fillType)
		}
	}
	return c.Do(MoveOrder, args)
}

// Withdraw 出金
func (c *Client) Withdraw(coin model.CurrencyType, amount, address, paymentID string) (json.RawMessage, error) {
	args := map[string]string{
		"currency": strings.ToUpper(string(coin)),
		"amount":   amount,
		"address":  address,
	}
	if paymentID != "" {
		args["paymentId"] = paymentID
	}
	return c.Do(Withdraw, args)
}

// FeeInfo 手数料情報取得
func (c *Client) FeeInfo() (json.RawMessage, error) {
	return c.Do(ReturnFeeInfo, nil)
}

// TransferBalance 口座間の残高移動
func (c *Client) TransferBalance(coin model.CurrencyType, amount, fromAccount, toAccount string) (json.RawMessage, error) {
	return c.Do(TransferBalance, map[string]string{
		"currency":    strings.ToUpper(string(coin)),
		"amount":      amount,
		"fromAccount": fromAccount,
		"toAccount":   toAccount,
	})
}

// MarginAccountSummary 証拠金口座サマリ取得
func (c *Client) MarginAccountSummary() (json.RawMessage, error) {
	return c.Do(ReturnMarginAccountSummary, nil)
}

// PostMarginOrder 証拠金注文登録
func (c *Client) PostMarginOrder(o *model.NewOrder, lendingRate string) (*model.OrderResult, error) {
	var cmd Command
	switch o.Type {
	case model.Buy:
		cmd = MarginBuy
	case model.Sell:
		cmd = MarginSell
	default:
		return nil, fmt.Errorf("unknown order type: %s", o.Type)
	}
	args := map[string]string{
		"currencyPair": o.Pair.String(),
		"rate":         o.Rate,
		"amount":       o.Amount,
	}
	if lendingRate != "" {
		args["lendingRate"] = lendingRate
	}
	raw, err := c.Do(cmd, args)
	if err != nil {
		return nil, err
	}
	var res model.OrderResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return &res, nil
}

// MarginPosition 証拠金ポジション取得
func (c *Client) MarginPosition(pair *model.CurrencyPair) (json.RawMessage, error) {
	return c.Do(GetMarginPosition, map[string]string{"currencyPair": pair.String()})
}

// CloseMargin 証拠金ポジションを決済
func (c *Client) CloseMargin(pair *model.CurrencyPair) (json.RawMessage, error) {
	return c.Do(CloseMarginPosition, map[string]string{"currencyPair": pair.String()})
}
