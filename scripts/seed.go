// Package scripts provides utility scripts for store and system management.
//
// This package implements store seeding functionality to populate initial
// data for local development. Seeding is idempotent: accounts that already
// exist are left untouched, making it safe to run on every startup.
package scripts

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/repository"
)

// PasswordHasher hashes plaintext passwords for seeded accounts.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Seeder populates the user store with initial accounts for development.
type Seeder struct {
	store  repository.UserRepository
	hasher PasswordHasher
}

// NewSeeder creates a new seeder over the given store and hasher.
func NewSeeder(store repository.UserRepository, hasher PasswordHasher) *Seeder {
	return &Seeder{
		store:  store,
		hasher: hasher,
	}
}

// demoAccounts are the accounts seeded into a development store. The
// passwords here are for local development only.
var demoAccounts = []struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	RestaurantName string
	Role           string
}{
	{
		Email:          "owner@platea.dev",
		Password:       "Owner#Platea1",
		FirstName:      "Demo",
		LastName:       "Owner",
		RestaurantName: "Platea Test Kitchen",
		Role:           constants.RoleOwner,
	},
	{
		Email:          "staff@platea.dev",
		Password:       "Staff#Platea1",
		FirstName:      "Demo",
		LastName:       "Staff",
		RestaurantName: "Platea Test Kitchen",
		Role:           constants.RoleStaff,
	},
}

// SeedStore seeds the user store with demo accounts, skipping any that
// already exist.
func (s *Seeder) SeedStore(ctx context.Context) error {
	log.Info().Msg("Seeding user store")
	startTime := time.Now()

	seeded := 0
	for _, account := range demoAccounts {
		exists, err := s.store.ExistsByEmail(ctx, account.Email)
		if err != nil {
			return fmt.Errorf("failed to check seed account %s: %w", account.Email, err)
		}
		if exists {
			continue
		}

		hash, err := s.hasher.Hash(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		user := models.NewUser(
			account.Email,
			account.FirstName,
			account.LastName,
			account.RestaurantName,
			account.Role,
			"",
		)
		user.PasswordHash = hash

		if err := s.store.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Email, err)
		}
		seeded++
	}

	log.Info().
		Int("seeded", seeded).
		Dur("duration", time.Since(startTime)).
		Msg("User store seeding completed")

	return nil
}
