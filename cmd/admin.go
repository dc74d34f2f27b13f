package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newsportal/logging"
	"newsportal/repositories"
	"newsportal/services"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator, or promote an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer db.Close()

		authService := services.NewAuthService(repositories.NewUserRepository(db.DB), &cfg.JWT)
		user, err := authService.EnsureAdmin(cmd.Context(), adminEmail, adminPassword, adminName)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		logging.L().Info("Administrator ready", zap.Uint("id", user.ID), zap.String("email", user.Email))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Administrator password (min 6 characters)")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "Display name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
