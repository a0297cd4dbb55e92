package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lshigami/cbtengine/config"
	"github.com/lshigami/cbtengine/database"
	"github.com/lshigami/cbtengine/internal/logger"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// @title CBT Exam Engine API
// @version 1.0
// @description Exam sessions, grading, gradebook ingestion and class broadsheets for the school LMS.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cbtengine",
		Short:        "Computer-based testing engine",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.Bool("log-pretty", false, "Human-readable console logs")
	pf.String("db-driver", "", "Database driver (postgres, sqlite)")
	_ = viper.BindPFlag("LOG_LEVEL", pf.Lookup("log-level"))
	_ = viper.BindPFlag("LOG_PRETTY", pf.Lookup("log-pretty"))
	_ = viper.BindPFlag("DATABASE_DRIVER", pf.Lookup("db-driver"))

	serve := serveCmd()
	root.AddCommand(serve, migrateCmd(), tokenCmd())
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Auth.Validate(); err != nil {
				log.Error().Err(err).Msg("Refusing to start without a token signing key")
				return err
			}
			app := fx.New(
				fx.Supply(cfg),
				serverModule,
			)
			if err := app.Start(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to start application")
				return err
			}
			<-app.Done()
			log.Info().Msg("Application shutting down gracefully...")
			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
	cmd.Flags().String("port", "", "HTTP port")
	_ = viper.BindPFlag("SERVER_PORT", cmd.Flags().Lookup("port"))
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.NewDatabase(cfg)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err == nil {
				defer sqlDB.Close()
			}
			return database.Migrate(db)
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Auth.Validate(); err != nil {
				return err
			}
			subject, _ := cmd.Flags().GetString("sub")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			token, err := middleware.IssueToken(cfg, subject, middleware.Role(role), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("sub", "", "Subject (student or staff ID)")
	f.String("role", string(middleware.RoleStudent), "Role: student, teacher, admin or guardian")
	f.Duration("ttl", 8*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	return cfg, nil
}
