package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/internal"
)

func TestBinderBind(t *testing.T) {
	t.Parallel()

	params := []internal.Param{
		{Name: "my-int", Type: internal.TypeInt},
		{Name: "my-string", Type: internal.TypeString},
		internal.Param{Name: "my-boolean", Type: internal.TypeBool}.Optional("false"),
	}

	t.Run("binds declared types", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		args, err := b.Bind(params, map[string]string{
			"my-int":     "42",
			"my-string":  "hello",
			"my-boolean": "TRUE",
		})
		require.NoError(t, err)
		require.Equal(t, 42, args.Int("my-int"))
		require.Equal(t, "hello", args.String("my-string"))
		require.True(t, args.Bool("my-boolean"))
		require.Equal(t, 3, args.Len())
	})

	t.Run("default applies when absent", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		args, err := b.Bind(params, map[string]string{
			"my-int":    "1",
			"my-string": "x",
		})
		require.NoError(t, err)
		require.False(t, args.Bool("my-boolean"))
		require.True(t, args.Has("my-boolean"))
	})

	t.Run("missing required parameter", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		_, err := b.Bind(params, map[string]string{"my-string": "x"})
		var missing *internal.MissingParameterError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "my-int", missing.Name)
	})

	t.Run("unconvertible value", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		_, err := b.Bind(params, map[string]string{
			"my-int":    "not-a-number",
			"my-string": "x",
		})
		var conv *internal.TypeConversionError
		require.ErrorAs(t, err, &conv)
		require.Equal(t, "my-int", conv.Name)
		require.Equal(t, "not-a-number", conv.Raw)
	})

	t.Run("bool rejects non-literals", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		boolParam := []internal.Param{{Name: "flag", Type: internal.TypeBool}}

		for _, raw := range []string{"1", "0", "yes", "no", "t", ""} {
			_, err := b.Bind(boolParam, map[string]string{"flag": raw})
			var conv *internal.TypeConversionError
			require.ErrorAs(t, err, &conv, "expected conversion error for %q", raw)
		}
	})

	t.Run("all-or-nothing", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		args, err := b.Bind(params, map[string]string{
			"my-int":    "7",
			"my-string": "x",
			// my-boolean present but broken
			"my-boolean": "maybe",
		})
		require.Error(t, err)
		require.Equal(t, 0, args.Len())
	})

	t.Run("float types", func(t *testing.T) {
		t.Parallel()
		b := internal.NewBinder()
		floats := []internal.Param{
			{Name: "f64", Type: internal.TypeFloat64},
			{Name: "f32", Type: internal.TypeFloat32},
			{Name: "i64", Type: internal.TypeInt64},
		}
		args, err := b.Bind(floats, map[string]string{
			"f64": "3.25",
			"f32": "1.5",
			"i64": "9000000000",
		})
		require.NoError(t, err)
		require.InDelta(t, 3.25, args.Float64("f64"), 0.0001)
		require.InDelta(t, 1.5, args.Float32("f32"), 0.0001)
		require.Equal(t, int64(9000000000), args.Int64("i64"))
	})
}

func TestBinderSanitizedStrings(t *testing.T) {
	t.Parallel()

	b := internal.NewBinder(internal.WithSanitizedStrings())
	args, err := b.Bind(
		[]internal.Param{{Name: "comment", Type: internal.TypeString}},
		map[string]string{"comment": `<script>alert(1)</script>hello`},
	)
	require.NoError(t, err)
	require.Equal(t, "hello", args.String("comment"))
}

func TestArgsStringMap(t *testing.T) {
	t.Parallel()

	b := internal.NewBinder()
	args, err := b.Bind([]internal.Param{
		{Name: "n", Type: internal.TypeInt},
		{Name: "ok", Type: internal.TypeBool},
		{Name: "who", Type: internal.TypeString},
	}, map[string]string{"n": "5", "ok": "true", "who": "ana"})
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"n":   "5",
		"ok":  "true",
		"who": "ana",
	}, args.StringMap())
}
