package slack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

// TextMessage 通知メッセージ
type TextMessage struct {
	Text string `json:"text"`
}

// Client Slack Webhook用クライアント
type Client struct {
	url string
}

// NewClient 生成。urlが空なら通知は何もしない。
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

// NotifyError エラー通知
func (c *Client) NotifyError(tool string, err error) error {
	return c.PostMessage(&TextMessage{
		Text: fmt.Sprintf("[%s] error occured: %v", tool, err),
	})
}

// PostMessage メッセージ送信
func (c *Client) PostMessage(messageObj interface{}) error {
	if c.url == "" {
		return nil
	}

	values, err := json.Marshal(messageObj)
	if err != nil {
		return err
	}

	res, err := http.Post(c.url, "application/json", bytes.NewBuffer(values))
	if err != nil {
		return err
	}

	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("slack response %d error: %s", res.StatusCode, body)
	}

	return nil
}
