package poloniex

import (
	"crypto/hmac"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"polo-bot/pkg/domain/model"
)

// newTestClient テスト用サーバへ向けたクライアントを生成する
func newTestClient(conf *Config, serverURL string) *Client {
	c := NewClient(conf, nil)
	c.publicURL = serverURL
	c.tradingURL = serverURL
	return c
}

func instantRetries() []time.Duration {
	return []time.Duration{0, 0, 0, 0}
}

func TestClient_DoName_InvalidCommand(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	c := newTestClient(&Config{DisablePacer: true}, server.URL)
	_, err := c.DoName("notARealCommand", nil)

	var want *InvalidCommandError
	if !errors.As(err, &want) {
		t.Fatalf("error type is wrong, got: %v", err)
	}
	if want.Command != "notARealCommand" {
		t.Errorf("command in error is wrong, got: %s", want.Command)
	}
	if hits != 0 {
		t.Errorf("no request should be sent, got %d requests", hits)
	}
}

func TestClient_Do_PrivateWithoutCredentials(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	c := newTestClient(&Config{}, server.URL)
	nonceBefore := c.nonces.last

	_, err := c.Do(ReturnBalances, nil)

	var want *ConfigurationError
	if !errors.As(err, &want) {
		t.Fatalf("error type is wrong, got: %v", err)
	}
	if c.nonces.last != nonceBefore {
		t.Error("nonce should not be consumed")
	}
	if !c.pacer.last.IsZero() {
		t.Error("pacer should not be touched")
	}
	if hits != 0 {
		t.Errorf("no request should be sent, got %d requests", hits)
	}
}

func TestClient_Do_RemoteError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, `{"error":"Invalid order number."}`)
	}))
	defer server.Close()

	c := newTestClient(&Config{DisablePacer: true, RetryDelays: instantRetries()}, server.URL)
	_, err := c.Do(ReturnTicker, nil)

	var want *RemoteError
	if !errors.As(err, &want) {
		t.Fatalf("error type is wrong, got: %v", err)
	}
	if want.Message != "Invalid order number." {
		t.Errorf("message is wrong, got: %s", want.Message)
	}
	if hits != 1 {
		t.Errorf("remote errors should not be retried, got %d requests", hits)
	}
}

func TestClient_Do_DecodeError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	c := newTestClient(&Config{DisablePacer: true, RetryDelays: instantRetries()}, server.URL)
	_, err := c.Do(ReturnTicker, nil)

	var want *DecodeError
	if !errors.As(err, &want) {
		t.Fatalf("error type is wrong, got: %v", err)
	}
	if hits != 1 {
		t.Errorf("decode errors should not be retried, got %d requests", hits)
	}
}

func TestClient_Do_RetriesTransportFailure(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"BTC":"1.0"}`)
	}))
	defer server.Close()

	c := newTestClient(&Config{DisablePacer: true, RetryDelays: instantRetries()}, server.URL)
	raw, err := c.Do(ReturnTicker, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw == nil {
		t.Fatal("payload should be returned")
	}
	if hits != 2 {
		t.Errorf("request count is wrong\nwant: 2\ngot: %d", hits)
	}
}

func TestClient_Do_TransportExhausted(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(&Config{DisablePacer: true, RetryDelays: instantRetries()}, server.URL)
	_, err := c.Do(ReturnTicker, nil)

	var want *TransportError
	if !errors.As(err, &want) {
		t.Fatalf("error type is wrong, got: %v", err)
	}
	if hits != 5 {
		t.Errorf("request count is wrong\nwant: 5\ngot: %d", hits)
	}
}

func TestClient_Do_PrivateRequestIsSigned(t *testing.T) {
	const secret = "test-secret"
	nonces := []int64{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)

		if r.Method != http.MethodPost {
			t.Errorf("method is wrong, got: %s", r.Method)
		}
		if got := r.Header.Get("Key"); got != "test-key" {
			t.Errorf("Key header is wrong, got: %s", got)
		}
		want := computeHmac512(secret, string(body))
		if got := r.Header.Get("Sign"); !hmac.Equal([]byte(got), []byte(want)) {
			t.Errorf("Sign header does not match body\nwant: %s\ngot: %s", want, got)
		}

		nonce, err := parseNonce(string(body))
		if err != nil {
			t.Errorf("failed to parse nonce from body: %s", body)
		}
		nonces = append(nonces, nonce)

		fmt.Fprint(w, `{"BTC":"1.0"}`)
	}))
	defer server.Close()

	c := newTestClient(&Config{Key: "test-key", Secret: secret, DisablePacer: true}, server.URL)
	if _, err := c.Do(ReturnBalances, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Do(ReturnBalances, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(nonces) != 2 {
		t.Fatalf("request count is wrong\nwant: 2\ngot: %d", len(nonces))
	}
	if nonces[1] <= nonces[0] {
		t.Errorf("nonce should increase per attempt\nfirst: %d\nsecond: %d", nonces[0], nonces[1])
	}
}

// parseNonce 署名済みボディからnonceを取り出す
func parseNonce(body string) (int64, error) {
	values, err := url.ParseQuery(body)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(values.Get("nonce"), 10, 64)
}

func TestClient_Call_NumberModes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rate":0.00000001}`)
	}))
	defer server.Close()

	t.Run("default keeps decimal text", func(t *testing.T) {
		c := newTestClient(&Config{DisablePacer: true}, server.URL)
		out, err := c.Call(ReturnTicker, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rate := out.(map[string]interface{})["rate"]
		num, ok := rate.(json.Number)
		if !ok {
			t.Fatalf("rate should be json.Number, got: %T", rate)
		}
		if num.String() != "0.00000001" {
			t.Errorf("decimal text is wrong, got: %s", num.String())
		}
	})

	t.Run("native mode uses float64", func(t *testing.T) {
		c := newTestClient(&Config{DisablePacer: true, JSONNumbers: true}, server.URL)
		out, err := c.Call(ReturnTicker, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rate := out.(map[string]interface{})["rate"]
		if _, ok := rate.(float64); !ok {
			t.Errorf("rate should be float64, got: %T", rate)
		}
	})
}

func TestClient_GetTicker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("command"); got != "returnTicker" {
			t.Errorf("command is wrong, got: %s", got)
		}
		fmt.Fprint(w, `{"USDT_BTC":{"id":121,"last":"123.45","lowestAsk":"123.50","highestBid":"123.40"}}`)
	}))
	defer server.Close()

	c := newTestClient(&Config{DisablePacer: true}, server.URL)
	ticker, err := c.GetTicker(&model.UsdtBtc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticker.Last != "123.45" {
		t.Errorf("last is wrong, got: %s", ticker.Last)
	}
}
