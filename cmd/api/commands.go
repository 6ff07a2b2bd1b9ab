package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harentsoaR/carewave-api/internal/seed"
	"github.com/harentsoaR/carewave-api/internal/services"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := context.Background()
			s, err := openStore(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer s.Close(ctx)
			log.Info().Str("driver", cfg.DBDriver).Msg("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset and demo accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := context.Background()
			s, err := openStore(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			if _, err := seed.Data(ctx, s, time.Now(), force); err != nil {
				return err
			}
			users, err := seed.Users(ctx, newAuthService(s, cfg), os.Getenv("SEED_ADMIN_PASSWORD"), os.Getenv("SEED_DOCTOR_PASSWORD"))
			if err != nil {
				return err
			}
			for _, u := range users {
				if u.Generated {
					// Printed once; only the bcrypt hash is stored.
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) password: %s\n", u.Email, u.Role, u.Password)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Insert the demo data even when patients already exist")
	return cmd
}

func addUserCmd() *cobra.Command {
	var email, name, role, password string
	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Create a login credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := context.Background()
			s, err := openStore(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			user, err := newAuthService(s, cfg).CreateUser(ctx, services.NewUser{
				Email:    email,
				Name:     name,
				Role:     role,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) with id %s\n", user.Email, user.Role, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "Staff", "Role: Administrator, Doctor, Nurse, Receptionist or Staff")
	cmd.Flags().StringVar(&password, "password", "", "Password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
