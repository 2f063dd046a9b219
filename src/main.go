package main

import (
	"crypto/rand"
	"os"
	"time"

	"activity-attestation/src/config"
	"activity-attestation/src/zkp"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Load()

	// 1. One-time setup: compile the relation, generate the key pair
	verifier, err := zkp.NewActivityVerifier(cfg.FreshnessWindow, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("verifier initialization failed")
	}

	// 2. Build a record from raw activity input and a user secret
	var userSecret [32]byte
	if _, err := rand.Read(userSecret[:]); err != nil {
		logger.Fatal().Err(err).Msg("secret generation failed")
	}

	record := zkp.NewActivityRecord(time.Now(), zkp.HashActivity("some_activity"), userSecret)

	// 3. Prove and verify in one call
	isValid := verifier.VerifyActivity(record)
	logger.Info().Bool("is_valid", isValid).Msg("recent activity")

	// A record from outside the freshness window is rejected before any
	// proving work happens
	staleRecord := zkp.NewActivityRecord(time.Now().Add(-31*24*time.Hour), zkp.HashActivity("old_activity"), userSecret)
	logger.Info().Bool("is_valid", verifier.VerifyActivity(staleRecord)).Msg("stale activity")
}
