package tokenpkg

import (
	"strings"
	"testing"
	"time"

	"github.com/gastos-dev/gastos/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewPasetoMaker(t *testing.T) {
	t.Parallel()

	// OK
	symmetricKey := strings.Repeat("x", 32)

	_, err := NewPasetoMaker(symmetricKey)
	if err != nil {
		t.Errorf("NewPasetoMaker(%v) returned error: %v", symmetricKey, err)
	}

	// shortKeyError
	shortKey := strings.Repeat("x", 30)

	got, err := NewPasetoMaker(shortKey)
	if err == nil {
		t.Errorf("NewPasetoMaker(%v) returned nil error", shortKey)
	}

	if got != nil {
		t.Errorf("PasetoMaker = %+v, want nil", got)
	}
}

func TestPasetoMaker(t *testing.T) {
	t.Parallel()

	symmetricKey := randompkg.String(32)

	maker, err := NewPasetoMaker(symmetricKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", symmetricKey, err)
	}

	owner := randompkg.Owner()
	duration := time.Minute

	token, payload, err := maker.CreateToken(owner, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v) returned error: %v", owner, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != nil {
		t.Errorf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	want := &Payload{
		Owner:     owner,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	ignore := cmpopts.IgnoreFields(Payload{}, "ID")
	delta := cmpopts.EquateApproxTime(time.Minute)

	if diff := cmp.Diff(payload, want, ignore, delta); diff != "" {
		t.Errorf("maker.CreateToken(%v, %v) returned unexpected diff: %v", owner, duration, diff)
	}
}

func TestExpiredPasetoToken(t *testing.T) {
	t.Parallel()

	symmetricKey := randompkg.String(32)

	maker, err := NewPasetoMaker(symmetricKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", symmetricKey, err)
	}

	owner := randompkg.Owner()
	duration := -time.Minute

	token, _, err := maker.CreateToken(owner, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v) returned error: %v", owner, duration, err)
	}

	payload, err := maker.VerifyToken(token)
	if err != ErrExpiredToken {
		t.Errorf("maker.VerifyToken(%v) returned error: %v, want: %v", token, err, ErrExpiredToken)
	}

	if payload != nil {
		t.Errorf("payload = %+v, want nil", payload)
	}
}
