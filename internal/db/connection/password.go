package connection

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

const serviceName = "crmview"

// ErrPasswordNotFound is returned when the keyring holds no password for a connection.
var ErrPasswordNotFound = errors.New("password not found in keyring")

// PasswordStore keeps database passwords in the OS keyring.
type PasswordStore struct {
	service string
}

// NewPasswordStore creates a store under the application's keyring service.
func NewPasswordStore() *PasswordStore {
	return &PasswordStore{service: serviceName}
}

// Save stores a password under account, or under the entry keyed by config
// when account is empty. Empty passwords are not saved.
func (ps *PasswordStore) Save(config models.ConnectionConfig, account, password string) error {
	if password == "" {
		return nil
	}
	if err := keyring.Set(ps.service, accountFor(config, account), password); err != nil {
		return fmt.Errorf("failed to save password to keyring: %w", err)
	}
	return nil
}

// Get retrieves the password stored under account.
func (ps *PasswordStore) Get(config models.ConnectionConfig, account string) (string, error) {
	secret, err := keyring.Get(ps.service, accountFor(config, account))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrPasswordNotFound
		}
		return "", fmt.Errorf("failed to read password from keyring: %w", err)
	}
	return secret, nil
}

// Delete removes the password stored under account. A missing entry is not an error.
func (ps *PasswordStore) Delete(config models.ConnectionConfig, account string) error {
	err := keyring.Delete(ps.service, accountFor(config, account))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}

// ResolvePassword fills config.Password from the keyring when it is blank.
// A missing keyring entry leaves the password blank.
func (ps *PasswordStore) ResolvePassword(config models.ConnectionConfig, account string) (models.ConnectionConfig, error) {
	if config.Password != "" {
		return config, nil
	}
	secret, err := ps.Get(config, account)
	if errors.Is(err, ErrPasswordNotFound) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	config.Password = secret
	return config, nil
}

func accountFor(config models.ConnectionConfig, account string) string {
	if account != "" {
		return account
	}
	return makeKey(config)
}

// makeKey creates a unique key for password storage
func makeKey(config models.ConnectionConfig) string {
	return fmt.Sprintf("%s:%d:%s:%s", config.Host, config.Port, config.Database, config.User)
}
