// Package dbtest opens throwaway stores for tests.
package dbtest

import (
	"strings"
	"testing"
	"unicode"

	"todocli/database"
)

// Open returns a schema-ready in-memory SQLite store private to t. It is
// closed when the test finishes.
func Open(t testing.TB) *database.Store {
	t.Helper()

	store, err := database.Open(DSN(t), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	return store
}

// DSN names an in-memory database after the test, so parallel tests never share rows.
func DSN(t testing.TB) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())
	return "file:" + name + "?mode=memory&cache=shared"
}
