package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type nestedOpts struct {
	Level string `long:"level" default:"info"`
}

type testOpts struct {
	Nested *nestedOpts `group:"Nested" namespace:"nested"`
	Name   string      `long:"name" default:"icon"`
	Sizes  []int       `long:"size" default:"192" default:"512"`
}

func TestParseArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := &testOpts{}
		rest, err := ParseArgs(opts, nil)
		require.NoError(t, err)
		require.Empty(t, rest)
		require.NotNil(t, opts.Nested)
		require.Equal(t, "info", opts.Nested.Level)
		require.Equal(t, "icon", opts.Name)
		require.Equal(t, []int{192, 512}, opts.Sizes)
	})

	t.Run("overrides", func(t *testing.T) {
		opts := &testOpts{}
		_, err := ParseArgs(opts, []string{"--name=logo", "--size=64", "--nested.level=debug"})
		require.NoError(t, err)
		require.Equal(t, "logo", opts.Name)
		require.Equal(t, []int{64}, opts.Sizes)
		require.Equal(t, "debug", opts.Nested.Level)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseArgs(&testOpts{}, []string{"--bogus"})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrHelp)
	})

	t.Run("not a struct pointer", func(t *testing.T) {
		_, err := ParseArgs(testOpts{}, nil)
		require.Error(t, err)
	})
}
