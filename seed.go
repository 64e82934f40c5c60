package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"apgi_backend/internals/configs"
	database "apgi_backend/internals/databases"
	authService "apgi_backend/internals/features/admins/auth/service"
	"apgi_backend/internals/seeds"
)

var seedOpts seeds.Options

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Buat akun admin & baris default konten (yang sudah ada dilewati)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedOpts.AdminsFile == "" && seedOpts.CompanyFile == "" {
			return errors.New("minimal salah satu dari --admins atau --company wajib diisi")
		}
		cfg, err := configs.LoadEnv(logger)
		if err != nil {
			return err
		}
		db, err := database.ConnectDB(cfg, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db, logger); err != nil {
			return err
		}
		if err := seeds.RunAllSeeds(cmd.Context(), db, seedOpts, logger); err != nil {
			return err
		}
		logger.Info("✅ seed selesai")
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <plaintext>",
	Short: "Cetak bcrypt hash untuk seeding manual",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := authService.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		logger.Debug("hash dibuat", zap.Int("len", len(hash)))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedOpts.AdminsFile, "admins", "", "file JSON akun admin (contoh: "+seeds.DefaultAdminsFile+")")
	seedCmd.Flags().StringVar(&seedOpts.CompanyFile, "company", "", "file JSON konten default (contoh: "+seeds.DefaultCompanyFile+")")
}
