/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/lsweb-studio/apiserver/config"
	"github.com/lsweb-studio/apiserver/internal/db"
	"github.com/lsweb-studio/apiserver/internal/services"
	"github.com/lsweb-studio/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// initAdminCmd provisions the bootstrap admin account without a running server.
var initAdminCmd = &cobra.Command{
	Use:   "init-admin",
	Short: "Create the default admin account if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			_ = dbConn.Close()
		}()

		userRepo := store.NewUserRepository(dbConn)
		authService := services.NewAuthService(userRepo, cfg.JWTSecret)

		created, err := authService.EnsureAdmin(cmd.Context(), cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		if created {
			fmt.Printf("admin user %s created\n", cfg.Admin.Email)
		} else {
			fmt.Printf("admin user %s already exists\n", cfg.Admin.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initAdminCmd)
}
