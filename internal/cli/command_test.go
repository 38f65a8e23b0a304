package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bookshelf/backend/internal/cli"
	"bookshelf/backend/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.CreateRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateRootCommand(t *testing.T) {
	cmd := cli.CreateRootCommand()
	require.Equal(t, "bookshelfctl", cmd.Use)
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Subset(t, names, []string{"catalog", "regions", "translate"})
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog", "--seed", "abc", "--page", "2", "--pages", "2", "--region", "fr")
	require.NoError(t, err)

	var books []model.BookRecord
	require.NoError(t, json.Unmarshal([]byte(out), &books))
	require.Len(t, books, 40)
	require.Equal(t, 21, books[0].Index)
	require.Equal(t, 60, books[39].Index)

	again, err := run(t, "catalog", "--seed", "abc", "--page", "3", "--region", "fr")
	require.NoError(t, err)
	var page3 []model.BookRecord
	require.NoError(t, json.Unmarshal([]byte(again), &page3))
	require.Equal(t, books[20].Title, page3[0].Title)
	require.Equal(t, books[20].ISBN, page3[0].ISBN)
}

func TestCatalogCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  page: 5\n"), 0o644))

	out, err := run(t, "--config", path, "catalog")
	require.NoError(t, err)

	var books []model.BookRecord
	require.NoError(t, json.Unmarshal([]byte(out), &books))
	require.Equal(t, 81, books[0].Index)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "catalog")
	require.Error(t, err)
}

func TestRegionsCommand(t *testing.T) {
	out, err := run(t, "regions")
	require.NoError(t, err)
	for _, code := range []string{"de\t", "en\t", "fr\t", "ja\t"} {
		require.Contains(t, out, code)
	}
}

func TestTranslateCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Q string `json:"q"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"translatedText": strings.ToUpper(req.Q)})
	}))
	defer srv.Close()

	t.Setenv("BOOKSHELF_TRANSLATE_PROVIDER", "libretranslate")
	t.Setenv("BOOKSHELF_TRANSLATE_URL", srv.URL)

	out, err := run(t, "translate", "--target", "de", "hello", "world")
	require.NoError(t, err)
	require.Equal(t, "HELLO\nWORLD\n", out)

	_, err = run(t, "translate", "hello")
	require.Error(t, err)
}
