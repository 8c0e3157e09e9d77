package poloniex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// computeHmac512 リクエストボディの署名を計算する。
// 署名対象は送信されるURLエンコード済みボディそのもの。
func computeHmac512(secret, body string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}
