package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8 // Calculate the required number of bytes.
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// SendVerificationEmail delivers a verification code to the given address.
// Replace the body with your actual mail-provider integration; for now the
// outgoing message is logged.
func SendVerificationEmail(email, message string) error {
	GetLogger().Sugar().Infof("Sending verification email to %s: %s", email, message)
	return nil
}

// InitiateOTP generates an OTP, stores it in Redis with a 5-minute TTL keyed by
// the owning account, and sends it to the account's email address.
func InitiateOTP(accountID, email string) error {
	otp, err := generateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	otpKey := fmt.Sprintf("otp:%s", accountID)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate OTP")
	}

	message := fmt.Sprintf("Your TutorHive verification code is: %s. It expires in 5 minutes.", otp)
	if err := SendVerificationEmail(email, message); err != nil {
		GetLogger().Error("Failed to send OTP email", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}

	GetLogger().Sugar().Infof("Sent OTP to %s for account %s (expires in %v)", email, accountID, otpTTL)
	return nil
}

// VerifyOTPRecord retrieves the stored OTP from Redis and compares it to the
// provided OTP. If they match, the OTP is deleted from the cache.
func VerifyOTPRecord(accountID, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:%s", accountID)
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	// Delete the OTP after successful verification.
	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
