// Package main seeds the local development database with the demo
// advertiser and scanner accounts used by the end-to-end flow.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"festserve/internal/infra/db"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/infra/uow"
	"festserve/internal/pkg/config"
	"festserve/internal/pkg/password"
	"festserve/internal/usecase/shared"
)

type seedAdvertiser struct {
	Name     string
	Email    string
	Password string
}

type seedScanner struct {
	Username string
	Password string
}

var defaultAdvertisers = []seedAdvertiser{
	{Name: "Demo Advertiser", Email: "adv@example.com", Password: "advpassword123"},
}

var defaultScanners = []seedScanner{
	{Username: "scanner1", Password: "scanpassword123"},
}

func main() {
	var timeout time.Duration
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "overall seeding timeout")
	flag.Parse()

	if err := run(timeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	unit := uow.NewPostgresUoW(pool, sqlc.New())
	return unit.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Re-seeding is idempotent: existing demo accounts are replaced.
		for _, adv := range defaultAdvertisers {
			if err := tx.Identities().DeleteAdvertiserByEmail(ctx, tx.DB(), adv.Email); err != nil {
				return err
			}

			hash, err := password.HashPassword(adv.Password)
			if err != nil {
				return err
			}

			id, err := tx.Identities().CreateAdvertiser(ctx, tx.DB(), shared.NewAdvertiser{
				Name:         adv.Name,
				ContactEmail: adv.Email,
				PasswordHash: hash,
			})
			if err != nil {
				return err
			}
			fmt.Printf("advertiser %s (%s)\n", adv.Email, id)
		}

		for _, scanner := range defaultScanners {
			if err := tx.Identities().DeleteScannerUserByUsername(ctx, tx.DB(), scanner.Username); err != nil {
				return err
			}

			hash, err := password.HashPassword(scanner.Password)
			if err != nil {
				return err
			}

			id, err := tx.Identities().CreateScannerUser(ctx, tx.DB(), shared.NewScannerUser{
				Username:     scanner.Username,
				PasswordHash: hash,
			})
			if err != nil {
				return err
			}
			fmt.Printf("scanner %s (%s)\n", scanner.Username, id)
		}

		return nil
	})
}
