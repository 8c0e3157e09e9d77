package poloniex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Do コマンドを実行し、エラー分類済みの生JSONを返す。
// 認証コマンドは送信試行ごとに新しいnonceで署名し直す。
// リトライ対象は通信レイヤの失敗のみ。
func (c *Client) Do(cmd Command, args map[string]string) (json.RawMessage, error) {
	if !cmd.known() {
		return nil, &InvalidCommandError{Command: fmt.Sprintf("#%d", int(cmd))}
	}
	if cmd.Private() && (c.key == "" || c.secret == "") {
		return nil, &ConfigurationError{Reason: "api key and secret needed"}
	}

	var result json.RawMessage
	attempt := func() error {
		if c.pacer != nil {
			c.pacer.Wait()
		}
		body, err := c.send(cmd, args)
		if err != nil {
			return err
		}
		decoded, err := classify(body)
		if err != nil {
			return err
		}
		result = decoded
		return nil
	}

	if err := c.retry.Do(attempt, isTransient); err != nil {
		return nil, err
	}
	return result, nil
}

// DoName コマンド名で実行する。登録されていない名前は送信前に拒否する。
func (c *Client) DoName(name string, args map[string]string) (json.RawMessage, error) {
	cmd, ok := ParseCommand(name)
	if !ok {
		return nil, &InvalidCommandError{Command: name}
	}
	return c.Do(cmd, args)
}

// Call コマンドを実行し、数値デコード設定に従ってデコードした値を返す
func (c *Client) Call(cmd Command, args map[string]string) (interface{}, error) {
	raw, err := c.Do(cmd, args)
	if err != nil {
		return nil, err
	}
	return decodeNumbers(raw, c.jsonNums)
}

// send 1回分の物理送信。公開コマンドはGET、認証コマンドは署名付きPOST。
func (c *Client) send(cmd Command, args map[string]string) ([]byte, error) {
	form := url.Values{}
	for k, v := range args {
		form.Set(k, v)
	}
	form.Set("command", cmd.String())

	var req *http.Request
	var err error
	if cmd.Private() {
		form.Set("nonce", strconv.FormatInt(c.nonces.Next(), 10))
		// 署名対象はこのあと送信するボディそのもの
		encoded := form.Encode()
		req, err = http.NewRequest(http.MethodPost, c.tradingURL, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Key", c.key)
		req.Header.Set("Sign", computeHmac512(c.secret, encoded))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req, err = http.NewRequest(http.MethodGet, c.publicURL+"?"+form.Encode(), nil)
		if err != nil {
			return nil, err
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if res.StatusCode >= http.StatusInternalServerError {
		return nil, &TransportError{Err: fmt.Errorf("server responded with status %d", res.StatusCode)}
	}
	return body, nil
}

// classify 取引所の返答を成功ペイロードとエラーに振り分ける
func classify(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, &DecodeError{Err: fmt.Errorf("response is not valid json"), Body: body}
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var probe struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &probe); err == nil && probe.Error != "" {
			return nil, &RemoteError{Message: probe.Error}
		}
	}
	return json.RawMessage(body), nil
}

// decodeNumbers 数値デコード設定に応じてペイロードを展開する。
// デフォルトは金額の桁落ちを避けるためjson.Numberのまま返す。
func decodeNumbers(raw []byte, native bool) (interface{}, error) {
	var out interface{}
	if native {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &DecodeError{Err: err, Body: raw}
		}
		return out, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}
	return out, nil
}
