package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func TestPasswordStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	ps := NewPasswordStore()
	cfg := models.ConnectionConfig{Host: "db", Port: 5432, Database: "crm", User: "agent"}

	_, err := ps.Get(cfg, "")
	assert.ErrorIs(t, err, ErrPasswordNotFound)

	require.NoError(t, ps.Save(cfg, "", "s3cret"))
	got, err := ps.Get(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)

	// Named accounts are independent of the config-keyed entry
	require.NoError(t, ps.Save(cfg, "crm-reader", "other"))
	got, err = ps.Get(cfg, "crm-reader")
	require.NoError(t, err)
	assert.Equal(t, "other", got)

	require.NoError(t, ps.Delete(cfg, ""))
	require.NoError(t, ps.Delete(cfg, ""), "deleting twice is fine")
	_, err = ps.Get(cfg, "")
	assert.ErrorIs(t, err, ErrPasswordNotFound)
	_, err = ps.Get(cfg, "crm-reader")
	assert.NoError(t, err)
}

func TestPasswordStore_ResolvePassword(t *testing.T) {
	keyring.MockInit()
	ps := NewPasswordStore()
	cfg := models.ConnectionConfig{Host: "db", Port: 5432, Database: "crm", User: "agent"}

	resolved, err := ps.ResolvePassword(cfg, "")
	require.NoError(t, err)
	assert.Empty(t, resolved.Password)

	require.NoError(t, ps.Save(cfg, "", "from-ring"))
	resolved, err = ps.ResolvePassword(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "from-ring", resolved.Password)

	require.NoError(t, keyring.Set(serviceName, "crm-reader", "by-account"))
	resolved, err = ps.ResolvePassword(cfg, "crm-reader")
	require.NoError(t, err)
	assert.Equal(t, "by-account", resolved.Password)

	cfg.Password = "explicit"
	resolved, err = ps.ResolvePassword(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "explicit", resolved.Password)
}

func TestBuildConnectionString(t *testing.T) {
	cfg := models.ConnectionConfig{Host: "h", Port: 1, Database: "d", User: "u"}
	assert.Equal(t, "host=h port=1 user=u database=d sslmode=prefer", buildConnectionString(cfg))

	cfg.Password = "p"
	cfg.SSLMode = "disable"
	assert.Equal(t, "host=h port=1 user=u database=d sslmode=disable password=p", buildConnectionString(cfg))
}
