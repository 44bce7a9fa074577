package arr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-data/arr"
)

// jsonOf renders v as JSON so ordered results can be compared as strings.
func jsonOf(t *testing.T, v any) string {
	t.Helper()
	b, err := arr.ToJSON(v)
	require.NoError(t, err)
	return string(b)
}

func makeNested() *arr.Map {
	return arr.MapOf(
		"user", arr.MapOf(
			"name", "Alice",
			"address", arr.MapOf(
				"city", "London",
				"country", "UK",
			),
		),
		"score", 42,
	)
}

func makeItems() *arr.Map {
	return arr.MapOf(
		"items", []any{
			arr.MapOf("id", 10, "name", "first"),
			arr.MapOf("id", 20, "name", "second"),
		},
	)
}
