// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner id.
func Owner() string {
	return "user_" + String(12)
}

// MoneyAmountBetween generates a random money amount between min and max
// formatted with exactly 2 fractional digits.
func MoneyAmountBetween(min, max float64) string {
	numInRange := min + Float64()*(max-min)
	return decimal.NewFromFloat(numInRange).Round(2).StringFixed(2)
}

// Date generates a random calendar date within the past year formatted
// as YYYY-MM-DD.
func Date() string {
	daysBack := Intn(365)
	return time.Now().UTC().AddDate(0, 0, -int(daysBack)).Format("2006-01-02")
}
