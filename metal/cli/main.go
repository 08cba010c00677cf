package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/backup"
	"github.com/Matias-sh/mi-portafolio/metal/cli/accounts"
	"github.com/Matias-sh/mi-portafolio/metal/cli/panel"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/metal/kernel"
	"github.com/Matias-sh/mi-portafolio/pkg/cli"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

var environment *env.Environment
var dbConn *database.Connection

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
	dbConn = kernel.MakeDbConnection(environment)
}

func main() {
	defer dbConn.Close()

	cli.ClearScreen()

	menu := panel.MakeMenu()

	for {
		err := menu.CaptureInput()

		if err != nil {
			cli.Errorln(err.Error())
			continue
		}

		switch menu.GetChoice() {
		case 1:
			if err = createAdminAccount(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 2:
			if err = issueAdminToken(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 3:
			if err = runBackup(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 4:
			if err = dbConn.Migrate(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			cli.Successln("The schema is up to date.")

			return
		case 5:
			if err = generateMasterKey(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 0:
			cli.Successln("Goodbye!")
			return
		default:
			cli.Errorln("Unknown option. Try again.")
		}

		cli.Blueln("Press Enter to continue...")

		menu.PrintLine()
	}
}

func createAdminAccount(menu panel.Menu) error {
	var err error
	var username, password string
	var handler *accounts.Handler

	if username, err = menu.CaptureUsername(); err != nil {
		return err
	}

	if password, err = menu.CapturePassword(); err != nil {
		return err
	}

	if handler, err = accounts.NewHandler(dbConn, environment); err != nil {
		return err
	}

	return handler.CreateAccount(username, password)
}

func issueAdminToken(menu panel.Menu) error {
	var err error
	var username string
	var handler *accounts.Handler

	if username, err = menu.CaptureUsername(); err != nil {
		return err
	}

	if handler, err = accounts.NewHandler(dbConn, environment); err != nil {
		return err
	}

	_, err = handler.IssueToken(username)

	return err
}

func runBackup() error {
	dumper, err := backup.NewDumper(environment)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	path, err := dumper.Run(ctx)
	if err != nil {
		return err
	}

	cli.Successln("\n  The backup was written successfully.")
	cli.Cyanln(fmt.Sprintf("  > File: %s", path))
	fmt.Println(" ")

	return nil
}

func generateMasterKey() error {
	key := make([]byte, 32)

	if _, err := rand.Read(key); err != nil {
		return err
	}

	encoded := hex.EncodeToString(key)

	cli.Successln("\n  The key was generated successfully.")
	cli.Magentaln(fmt.Sprintf("  > ENV_APP_MASTER_KEY=%s", encoded))
	fmt.Println(" ")

	return nil
}
