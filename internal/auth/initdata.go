// Package auth validates Telegram Mini-App init data.
//
// The Mini-App client sends window.Telegram.WebApp.initData verbatim; the
// server recomputes the HMAC chain defined by the Bot API (secret key =
// HMAC-SHA256("WebAppData", bot token), hash = HMAC-SHA256(secret key,
// data-check-string) hex-encoded) and compares it with the supplied hash.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/showcaseapp/showcase-backend/internal/apperr"
)

// TelegramUser is the profile payload embedded in init data.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// DisplayName builds the name shown in listings, preferring the full name
// over the username.
func (u *TelegramUser) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return strconv.FormatInt(u.ID, 10)
}

// ValidateInitData verifies the signature and freshness of raw init data and
// returns the embedded user. maxAge of zero disables the freshness check.
func ValidateInitData(raw, botToken string, maxAge time.Duration) (*TelegramUser, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperr.New(apperr.Unauthenticated, "init data is required")
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthenticated, "malformed init data", err)
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, apperr.New(apperr.Unauthenticated, "init data hash is missing")
	}

	if !hmac.Equal([]byte(gotHash), []byte(computeHash(values, botToken))) {
		return nil, apperr.New(apperr.Unauthenticated, "init data signature mismatch")
	}

	if maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, apperr.New(apperr.Unauthenticated, "init data auth_date is invalid")
		}
		if time.Since(time.Unix(authDate, 0)) > maxAge {
			return nil, apperr.New(apperr.Unauthenticated, "init data has expired")
		}
	}

	var user TelegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil {
		return nil, apperr.Wrap(apperr.Unauthenticated, "init data user payload is invalid", err)
	}
	if user.ID == 0 {
		return nil, apperr.New(apperr.Unauthenticated, "init data user id is missing")
	}

	return &user, nil
}

func computeHash(values url.Values, botToken string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}
