package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("jwt_secret: s3cret\n"), "test")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Contains(t, cfg.DSN, "tcp(127.0.0.1:3306)/movies_db")
	assert.Contains(t, cfg.DSN, "parseTime=true")
}

func TestParseRequiresJWTSecret(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("port: 8080\n"), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")

	_, err = Parse([]byte("jwt_secret: \"   \"\n"), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestParseOverridesAndAliases(t *testing.T) {
	t.Parallel()

	content := []byte(`
port: 8080
node_env: Production
jwt_secret: s3cret
db_host: db.internal
db_user: movies
db_password: hunter2
db_name: collection
allowed_origins:
  - " https://movies.example.com "
  - ""
`)
	cfg, err := Parse(content, "test")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, []string{"https://movies.example.com"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.DSN, "movies:hunter2@tcp(db.internal:3306)/collection")
}

func TestParseExplicitDSNWins(t *testing.T) {
	t.Parallel()

	content := []byte(`
jwt_secret: s3cret
dsn: user:pw@tcp(10.0.0.1:3306)/other?parseTime=true
db_host: ignored.example.com
`)
	cfg, err := Parse(content, "test")
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(10.0.0.1:3306)/other?parseTime=true", cfg.DSN)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("jwt_secret: s3cret\nmystery_knob: 1\n"), "test")
	assert.Error(t, err)
}

func TestParseRejectsBadPort(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("jwt_secret: s3cret\nport: 70000\n"), "test")
	assert.Error(t, err)
}
