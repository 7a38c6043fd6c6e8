package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrOTPMismatch is returned when a submitted code is wrong or expired.
var ErrOTPMismatch = errors.New("invalid or expired OTP")

// GenerateOTP returns a 6-digit numeric one-time code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPStore persists one-time codes with a TTL. Codes are single use: Verify
// consumes the code on success.
type OTPStore interface {
	Put(ctx context.Context, phoneNumber, code string, ttl time.Duration) error
	Verify(ctx context.Context, phoneNumber, code string) error
}

// RedisOTPStore keeps codes in Redis, letting expiry handle the TTL.
type RedisOTPStore struct {
	client *redis.Client
}

// NewRedisOTPStore builds a store over the shared client.
func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func otpKey(phoneNumber string) string {
	return "otp:" + phoneNumber
}

func (s *RedisOTPStore) Put(ctx context.Context, phoneNumber, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKey(phoneNumber), code, ttl).Err()
}

func (s *RedisOTPStore) Verify(ctx context.Context, phoneNumber, code string) error {
	stored, err := s.client.Get(ctx, otpKey(phoneNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPMismatch
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrOTPMismatch
	}
	return s.client.Del(ctx, otpKey(phoneNumber)).Err()
}

// InMemoryOTPStore backs tests and Redis-less development runs.
type InMemoryOTPStore struct {
	mu    sync.Mutex
	codes map[string]memoryOTP
}

type memoryOTP struct {
	code      string
	expiresAt time.Time
}

// NewInMemoryOTPStore creates an empty store.
func NewInMemoryOTPStore() *InMemoryOTPStore {
	return &InMemoryOTPStore{codes: make(map[string]memoryOTP)}
}

func (s *InMemoryOTPStore) Put(ctx context.Context, phoneNumber, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phoneNumber] = memoryOTP{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *InMemoryOTPStore) Verify(ctx context.Context, phoneNumber, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[phoneNumber]
	if !ok || time.Now().After(entry.expiresAt) || entry.code != code {
		return ErrOTPMismatch
	}
	delete(s.codes, phoneNumber)
	return nil
}

// OTPSender delivers a one-time code to a phone number. Real SMS delivery is
// out of scope; the logging sender stands in for it.
type OTPSender interface {
	Send(ctx context.Context, phoneNumber, code string) error
}

// LoggingOTPSender logs instead of sending.
type LoggingOTPSender struct {
	logger *zap.Logger
}

// NewLoggingOTPSender builds the stub sender.
func NewLoggingOTPSender(logger *zap.Logger) *LoggingOTPSender {
	return &LoggingOTPSender{logger: logger}
}

func (s *LoggingOTPSender) Send(ctx context.Context, phoneNumber, code string) error {
	s.logger.Info("OTP generated", zap.String("phone_number", phoneNumber))
	return nil
}
