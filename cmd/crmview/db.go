package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zaibi326/crm-success-hub-sub000/internal/db/connection"
)

// errNoKeyringUser is returned by the db commands when database.keyring_user is unset.
var errNoKeyringUser = errors.New("database.keyring_user is not set")

// dbCmd manages the lead database password kept in the OS keyring
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the lead database password stored in the OS keyring",
}

var dbSetPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Read a password from stdin and store it under database.keyring_user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := keyringAccount()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Password for %s: ", account)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return errors.New("password is empty")
		}

		if err := connection.NewPasswordStore().Save(connectionConfig(cfg), account, password); err != nil {
			return err
		}
		logger.Info("Stored database password", zap.String("account", account))
		fmt.Fprintf(cmd.OutOrStdout(), "Stored password for %s\n", account)
		return nil
	},
}

var dbForgetPasswordCmd = &cobra.Command{
	Use:   "forget-password",
	Short: "Remove the password stored under database.keyring_user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := keyringAccount()
		if err != nil {
			return err
		}
		if err := connection.NewPasswordStore().Delete(connectionConfig(cfg), account); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed password for %s\n", account)
		return nil
	},
}

var dbPasswordStatusCmd = &cobra.Command{
	Use:   "password-status",
	Short: "Report whether a password is stored under database.keyring_user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := keyringAccount()
		if err != nil {
			return err
		}
		_, err = connection.NewPasswordStore().Get(connectionConfig(cfg), account)
		switch {
		case errors.Is(err, connection.ErrPasswordNotFound):
			fmt.Fprintf(cmd.OutOrStdout(), "No password stored for %s\n", account)
			return nil
		case err != nil:
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Password stored for %s\n", account)
		return nil
	},
}

func keyringAccount() (string, error) {
	account := strings.TrimSpace(cfg.Database.KeyringUser)
	if account == "" {
		return "", errNoKeyringUser
	}
	return account, nil
}

func init() {
	dbCmd.AddCommand(dbSetPasswordCmd, dbForgetPasswordCmd, dbPasswordStatusCmd)
}
