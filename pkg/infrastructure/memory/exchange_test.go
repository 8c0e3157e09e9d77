package memory_test

import (
	"strings"
	"testing"
	"time"

	"polo-bot/pkg/domain/model"
	"polo-bot/pkg/infrastructure/memory"
)

func TestExchangeMock_Replay(t *testing.T) {
	rates := []string{
		"日付,レート",
		"2021-02-23T19:27:01Z,200.0",
		"2021-02-23T19:27:02Z,201.5",
		"2021-02-23T19:27:03Z,199.0",
	}
	r := strings.NewReader(strings.Join(rates, "\n"))
	mock, err := memory.NewExchangeMock(r)
	if err != nil {
		t.Fatal(err.Error())
	}

	ticker, err := mock.GetTicker(&model.UsdtBtc)
	if err != nil {
		t.Fatal(err.Error())
	}
	if ticker.Last != "200" {
		t.Errorf("last is wrong\nwant: 200\ngot: %s", ticker.Last)
	}

	if !mock.NextStep() {
		t.Fatal("NextStep should succeed")
	}
	ticker, _ = mock.GetTicker(&model.UsdtBtc)
	if ticker.Last != "201.5" {
		t.Errorf("last is wrong\nwant: 201.5\ngot: %s", ticker.Last)
	}

	if !mock.NextStep() {
		t.Fatal("NextStep should succeed")
	}
	if mock.NextStep() {
		t.Error("NextStep should fail after the last record")
	}
}

func TestExchangeMock_Orders(t *testing.T) {
	rates := []string{
		"日付,レート",
		"2021-02-23T19:27:01Z,200.0",
	}
	mock, err := memory.NewExchangeMock(strings.NewReader(strings.Join(rates, "\n")))
	if err != nil {
		t.Fatal(err.Error())
	}

	res, err := mock.PostOrder(&model.NewOrder{
		Type:   model.Buy,
		Pair:   model.UsdtBtc,
		Rate:   "199.0",
		Amount: "1.0",
	})
	if err != nil {
		t.Fatal(err.Error())
	}

	oo, err := mock.GetOpenOrders(&model.UsdtBtc)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(oo) != 1 {
		t.Fatalf("open order count is wrong\nwant: 1\ngot: %d", len(oo))
	}

	if err := mock.CancelOrder(res.OrderNumber); err != nil {
		t.Fatal(err.Error())
	}
	oo, _ = mock.GetOpenOrders(&model.UsdtBtc)
	if len(oo) != 0 {
		t.Errorf("open order count is wrong\nwant: 0\ngot: %d", len(oo))
	}
}

func TestRateRepository_Ring(t *testing.T) {
	repo := memory.NewRateRepository(3)
	now := time.Now()
	for i := 0; i < 5; i++ {
		err := repo.AddRate(&model.Rate{
			Pair:     model.UsdtBtc,
			Last:     float64(100 + i),
			Datetime: now,
		})
		if err != nil {
			t.Fatal(err.Error())
		}
	}

	rates, err := repo.GetRates(&model.UsdtBtc, time.Hour)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(rates) != 3 {
		t.Fatalf("rate count is wrong\nwant: 3\ngot: %d", len(rates))
	}
	if rates[0].Last != 102 || rates[2].Last != 104 {
		t.Errorf("oldest rates should be dropped, got: %#v", rates)
	}
}
