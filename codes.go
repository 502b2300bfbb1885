package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Demo-grade opaque code generation. Collision-resistant enough for
// mock identifiers; nothing here carries a security property.

const base36Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Upper[rand.Intn(len(base36Upper))]
	}
	return string(b)
}

// newDownloadKey builds an opaque key from the first five characters
// of the product title plus three random segments.
func newDownloadKey(title string) string {
	prefix := strings.ToUpper(title)
	if r := []rune(prefix); len(r) > 5 {
		prefix = string(r[:5])
	}
	return fmt.Sprintf("%s-%s-%s-%s", prefix, randBase36(4), randBase36(4), randBase36(4))
}

// newGiftCardCode produces a code of the form GV{value}-{XXXX}-{dddd}.
func newGiftCardCode(value float64) string {
	return fmt.Sprintf("GV%s-%s-%04d", strconv.FormatFloat(value, 'f', -1, 64), randBase36(4), 1000+rand.Intn(9000))
}

// newReferralCode produces a GV-prefixed six-character referral code.
func newReferralCode() string {
	return "GV" + randBase36(6)
}

// referralLinkFor derives the shareable link for a referral code.
func referralLinkFor(code string) string {
	return "https://gamevault.ge/ref/" + code
}

// referralCodeForUser derives the initial referral code from the
// trailing six characters of the user id.
func referralCodeForUser(userID string) string {
	suffix := userID
	if r := []rune(suffix); len(r) > 6 {
		suffix = string(r[len(r)-6:])
	}
	return "GV" + strings.ToUpper(suffix)
}
