package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_RejectsMalformedDSN(t *testing.T) {
	conn, err := Connect("postgres://user@host:not-a-port/db", PoolConfig{
		MaxOpen:     5,
		MaxIdle:     5,
		MaxLifetime: time.Minute,
	})

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Contains(t, err.Error(), "db: parse dsn")
}
