package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"polo-bot/pkg/domain/model"
	"polo-bot/pkg/infrastructure/memory"
	"polo-bot/pkg/infrastructure/poloniex"
	"polo-bot/pkg/usecase"

	"github.com/BurntSushi/toml"
)

const usageText = `usage: trade-cli -f <config file> <command> [args]

commands:
  ticker                  現在レートを表示
  balance                 残高一覧を表示
  orders                  未決済注文一覧を表示
  buy <rate> <amount>     指値買い注文
  sell <rate> <amount>    指値売り注文
  cancel <orderNumber>    注文キャンセル
  trend                   相場の傾向を表示`

func main() {
	f := flag.String("f", "", "config file path")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal(usageText)
	}

	var conf model.TradeToolConfig
	if _, err := toml.DecodeFile(*f, &conf); err != nil {
		log.Fatal(err.Error())
	}

	pair, err := model.ParseToCurrencyPair(conf.TargetPair)
	if err != nil {
		log.Fatal(err.Error())
	}

	logger := memory.Logger{Level: memory.Info}
	cli := poloniex.NewClient(&poloniex.Config{
		Key:          conf.Exchange.Key,
		Secret:       conf.Exchange.Secret,
		Timeout:      time.Duration(conf.TimeoutSeconds) * time.Second,
		DisablePacer: conf.DisablePacer,
	}, &logger)

	if err := run(cli, &conf, pair, flag.Args()); err != nil {
		log.Fatalf("error occured, %v", err)
	}
}

func run(cli *poloniex.Client, conf *model.TradeToolConfig, pair *model.CurrencyPair, args []string) error {
	switch args[0] {
	case "ticker":
		t, err := cli.GetTicker(pair)
		if err != nil {
			return err
		}
		fmt.Printf("%s last:%s ask:%s bid:%s\n", pair, t.Last, t.LowestAsk, t.HighestBid)
		return nil
	case "balance":
		balances, err := cli.GetBalances()
		if err != nil {
			return err
		}
		for currency, amount := range balances {
			fmt.Printf("%s: %s\n", currency, amount)
		}
		return nil
	case "orders":
		orders, err := cli.GetOpenOrders(pair)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no open orders")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("[%s] %s rate:%s amount:%s\n", o.OrderNumber, o.Type, o.Rate, o.Amount)
		}
		return nil
	case "buy", "sell":
		if len(args) < 3 {
			return fmt.Errorf("%s needs <rate> <amount>", args[0])
		}
		orderType := model.Buy
		if args[0] == "sell" {
			orderType = model.Sell
		}
		result, err := cli.PostOrder(&model.NewOrder{
			Type:   orderType,
			Pair:   *pair,
			Rate:   args[1],
			Amount: args[2],
		})
		if err != nil {
			return err
		}
		fmt.Printf("order sent [%s] trades:%d\n", result.OrderNumber, len(result.ResultingTrades))
		return nil
	case "cancel":
		if len(args) < 2 {
			return fmt.Errorf("cancel needs <orderNumber>")
		}
		if err := cli.CancelOrder(args[1]); err != nil {
			return err
		}
		fmt.Printf("canceled [%s]\n", args[1])
		return nil
	case "trend":
		watcher, err := usecase.NewTrendWatcher(cli, conf.TrendShortTerm, conf.TrendLongTerm)
		if err != nil {
			return err
		}
		trend, err := watcher.Watch(pair, model.Candle5m)
		if err != nil {
			return err
		}
		fmt.Printf("%s trend: %s\n", pair, trend)
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usageText)
	}
}
