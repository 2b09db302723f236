package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/ratewise/store-ratings-api/internal/infrastructure/config"
	"github.com/ratewise/store-ratings-api/internal/infrastructure/db/postgres"
)

// Exactly one admin is expected at bootstrap. Admins cannot self-register;
// this command is the only path that creates one.
const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@store.com"
	defaultAdminPassword = "admin123"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default admin account if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}

		db, err := postgres.Open(ctx, postgres.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
			UseSSL:   cfg.Postgres.UseSSL,
		})
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		var id int64
		err = db.QueryRowContext(ctx, `SELECT id FROM users WHERE role = 'admin' LIMIT 1`).Scan(&id)
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "admin already exists (id=%d)\n", id)
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check admin: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), cfg.BcryptCost)
		if err != nil {
			return err
		}

		err = db.QueryRowContext(ctx, `
			INSERT INTO users (name, email, password_hash, role, created_at)
			VALUES ($1, $2, $3, 'admin', $4)
			RETURNING id`,
			defaultAdminName, defaultAdminEmail, string(hash), time.Now().UTC(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "default admin created (id=%d, email=%s)\n", id, defaultAdminEmail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
