// Command-line interface entrypoint for NoteBox admin tasks
package main

import (
	"context"
	"flag"
	"fmt"
	"notebox/notebox/config"
	"notebox/notebox/sources/psql"
	"notebox/notebox/sources/psql/dao"
	"notebox/notebox/utils/logging"
	"os"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) >= 1 && args[0] == "seed" {
		seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
		accountName := seedCmd.String("account", "", "name of the account to create")
		email := seedCmd.String("email", "", "email of the account's first user")
		displayName := seedCmd.String("name", "", "display name of the first user")
		seedCmd.Parse(args[1:])

		if *accountName == "" || *email == "" {
			seedCmd.Usage()
			os.Exit(1)
		}

		db, err := psql.NewDatabase(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()

		account, err := dao.NewAccountDAO(db.DB).CreateAccount(ctx, *accountName)
		if err != nil {
			logging.ErrorLogger.Error("seed: create account failed", zap.Error(err))
			os.Exit(1)
		}
		user, err := dao.NewUserDAO(db.DB).CreateUser(ctx, account.IDAccount, *email, *displayName)
		if err != nil {
			logging.ErrorLogger.Error("seed: create user failed", zap.Error(err))
			os.Exit(1)
		}

		logging.AppLogger.Info("seeded account",
			zap.Int64("idAccount", account.IDAccount),
			zap.Int64("idUser", user.IDUser),
		)
		fmt.Println("Account:", account.IDAccount, "reference:", account.Reference)
		fmt.Println("User:", user.IDUser)
		os.Exit(0)
	}

	fmt.Println("NoteBox CLI usage:")
	fmt.Println("  notebox seed -account NAME -email EMAIL [-name DISPLAY]   # Provision an account and its first user")
	os.Exit(1)
}
