package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMySQL_InvalidDSN(t *testing.T) {
	tests := []string{
		"not a dsn",
		"root@tcp(127.0.0.1:3306)/",
	}
	for _, dsn := range tests {
		t.Run(dsn, func(t *testing.T) {
			_, err := OpenMySQL(dsn)
			assert.ErrorContains(t, err, "invalid database DSN")
		})
	}
}

// Runs against a real server when CTR_TEST_MYSQL_DSN is set, e.g.
// root:secret@tcp(127.0.0.1:3306)/ctr_test
func TestMySQLStorage_SaveLoad(t *testing.T) {
	dsn := os.Getenv("CTR_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("CTR_TEST_MYSQL_DSN not set")
	}

	st, err := OpenMySQL(dsn)
	require.NoError(t, err)
	defer st.Close()

	report := sampleReport()
	require.NoError(t, st.Save(report))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, report.Meta, loaded.Meta)
	assert.Equal(t, report.Failures, loaded.Failures)
}
