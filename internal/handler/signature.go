package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	apperrors "molle-settlement/pkg/app_errors"
)

const (
	HeaderWebhookTimestamp = "x-webhook-timestamp"
	HeaderWebhookSignature = "x-webhook-signature"
)

// SignWebhook base64(HMAC-SHA256(secret, timestamp + body))
func SignWebhook(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyWebhook 檢查簽章與時間差；maxSkew 為 0 時不檢查時間
func VerifyWebhook(secret, timestamp, signature string, body []byte, maxSkew time.Duration, now time.Time) error {
	if secret == "" || timestamp == "" || signature == "" {
		return apperrors.ErrInvalidSignature
	}

	expected := SignWebhook(secret, timestamp, body)
	if !hmac.Equal([]byte(expected), []byte(strings.TrimSpace(signature))) {
		return apperrors.ErrInvalidSignature
	}

	if maxSkew > 0 {
		sent, err := parseWebhookTime(timestamp)
		if err != nil {
			return apperrors.ErrInvalidSignature
		}
		skew := now.Sub(sent)
		if skew < 0 {
			skew = -skew
		}
		if skew > maxSkew {
			return apperrors.ErrInvalidSignature
		}
	}
	return nil
}

// parseWebhookTime 接受 unix 秒或毫秒
func parseWebhookTime(ts string) (time.Time, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if n > 1e12 {
		return time.UnixMilli(n), nil
	}
	return time.Unix(n, 0), nil
}
