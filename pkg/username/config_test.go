package username_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usernamekit/pkg/blacklist"
	"github.com/dmitrymomot/usernamekit/pkg/username"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := username.DefaultConfig()

	assert.True(t, cfg.Trim)
	assert.False(t, cfg.Lowercase)
	assert.False(t, cfg.Uppercase)
	assert.Equal(t, 6, cfg.MinLength)
	assert.Equal(t, 20, cfg.MaxLength)
	assert.Equal(t, blacklist.Default(), cfg.Blacklist)
	assert.Equal(t, []username.Charset{
		username.Letters, username.Numbers, username.Underscores, username.Dashes,
	}, cfg.AllowedCharacters)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("scalar override keeps other fields", func(t *testing.T) {
		base := username.DefaultConfig()
		cfg := username.Resolve(base, username.WithMinLength(3))

		assert.Equal(t, 3, cfg.MinLength)
		assert.Equal(t, base.MaxLength, cfg.MaxLength)
		assert.Equal(t, base.Trim, cfg.Trim)
		assert.Equal(t, base.Blacklist, cfg.Blacklist)
		assert.Equal(t, base.AllowedCharacters, cfg.AllowedCharacters)
	})

	t.Run("list overrides replace whole lists", func(t *testing.T) {
		cfg := username.Resolve(username.DefaultConfig(),
			username.WithBlacklist("spam"),
			username.WithAllowedCharacters(username.Spaces),
		)

		assert.Equal(t, []string{"spam"}, cfg.Blacklist)
		assert.Equal(t, []username.Charset{username.Spaces}, cfg.AllowedCharacters)
	})

	t.Run("empty list overrides are kept as empty", func(t *testing.T) {
		cfg := username.Resolve(username.DefaultConfig(),
			username.WithBlacklist(),
			username.WithAllowedCharacters(),
		)

		require.NotNil(t, cfg.Blacklist)
		require.NotNil(t, cfg.AllowedCharacters)
		assert.Empty(t, cfg.Blacklist)
		assert.Empty(t, cfg.AllowedCharacters)
	})

	t.Run("later options win", func(t *testing.T) {
		cfg := username.Resolve(username.DefaultConfig(),
			username.WithMaxLength(10),
			username.WithMaxLength(12),
		)
		assert.Equal(t, 12, cfg.MaxLength)
	})

	t.Run("with config replaces everything", func(t *testing.T) {
		custom := username.Config{MinLength: 1, MaxLength: 2, Blacklist: []string{"x"}}
		cfg := username.Resolve(username.DefaultConfig(),
			username.WithLowercase(true),
			username.WithConfig(custom),
		)
		assert.Equal(t, custom, cfg)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		assert.Equal(t, username.DefaultConfig(), username.Resolve(username.DefaultConfig(), nil))
	})

	t.Run("base is not modified", func(t *testing.T) {
		base := username.DefaultConfig()
		_ = username.Resolve(base, username.WithAllowedCharacters(username.Spaces), username.WithTrim(false))

		assert.True(t, base.Trim)
		assert.Len(t, base.AllowedCharacters, 4)
	})

	t.Run("caller slices are copied", func(t *testing.T) {
		words := []string{"spam"}
		opt := username.WithBlacklist(words...)
		words[0] = "changed"

		cfg := username.Resolve(username.DefaultConfig(), opt)
		assert.Equal(t, []string{"spam"}, cfg.Blacklist)

		cfg.Blacklist[0] = "mutated"
		assert.Equal(t, []string{"spam"}, username.Resolve(username.DefaultConfig(), opt).Blacklist)
	})
}

func TestValidator_Config(t *testing.T) {
	t.Parallel()

	v := username.New(username.WithBlacklist("spam"))

	cfg := v.Config()
	cfg.Blacklist[0] = "mutated"
	cfg.MinLength = 100

	assert.Equal(t, []string{"spam"}, v.Config().Blacklist)
	assert.Equal(t, 6, v.Config().MinLength)
}
