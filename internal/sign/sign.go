// Package sign implements the AWS3-HTTPS request signature the service
// authenticates with: an HMAC-SHA256 of the Date header value, base64
// encoded and carried in the X-Amzn-Authorization header.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

// Signature computes base64(HMAC-SHA256(secretKey, date)).
func Signature(secretKey, date string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(date))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Authorization builds the X-Amzn-Authorization header value for the given
// access key and signed date string.
func Authorization(accessKey, secretKey, date string) string {
	return fmt.Sprintf("AWS3-HTTPS AWSAccessKeyId=%s, Algorithm=HmacSHA256, Signature=%s",
		accessKey, Signature(secretKey, date))
}

// Apply stamps req with a Date header (RFC1123 GMT) and the matching
// X-Amzn-Authorization header. The service rejects requests whose signature
// does not cover the exact Date value sent.
func Apply(req *http.Request, accessKey, secretKey string, now time.Time) {
	date := now.UTC().Format(http.TimeFormat)
	req.Header.Set("Date", date)
	req.Header.Set("X-Amzn-Authorization", Authorization(accessKey, secretKey, date))
}
