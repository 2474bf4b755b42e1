package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/hgnckb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetFetchCmd_Exists verifies getFetchCmd returns
// a valid command.
func TestGetFetchCmd_Exists(t *testing.T) {
	cmd := getFetchCmd()
	require.NotNil(t, cmd, "Fetch command should exist")
	assert.Equal(t, "fetch", cmd.Use,
		"Command name should be fetch")
	assert.Contains(t, cmd.Aliases, "download")

	fl := cmd.Flags().Lookup("entries")
	require.NotNil(t, fl)
	assert.Equal(t, "e", fl.Shorthand)
}

// TestRunFetch verifies downloaded entries are saved to the file
// given by the flag.
func TestRunFetch(t *testing.T) {
	body := "HGNC ID\tApproved symbol\n"
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		},
	))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "entries.tsv")
	cmd := getFetchCmd()
	require.NoError(t, cmd.Flags().Set("entries", path))

	c := config.New()
	c.Update([]config.Option{config.OptFetchURL(srv.URL + "/?")})

	err := runFetch(cmd, c, path)
	require.NoError(t, err)

	res, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(res))
}
