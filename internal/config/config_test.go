package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/filter"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ja", c.Lang)
	assert.Equal(t, category.Ja, c.Language())
	assert.Equal(t, time.Now().Year(), c.CreatedYear)
	assert.True(t, c.RawIncludeText)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "stderr", c.Log.Output)
	m, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, filter.ModeIgnore, m)
	assert.Empty(t, c.Filters)
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, DirName, "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`lang: en
created_year: 2019
workers: 3
filter_mode: include
filters:
  - category: region
    value: 関西
log:
  level: info
`), 0o644))

	t.Run("file over defaults", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "en", c.Lang)
		assert.Equal(t, 2019, c.CreatedYear)
		assert.Equal(t, 3, c.Workers)
		assert.Equal(t, []filter.Rule{{Category: "region", Value: "関西"}}, c.Filters)
		assert.Equal(t, "info", c.Log.Level)
		assert.Equal(t, "text", c.Log.Format)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("CROSSTAB_CREATED_YEAR", "2021")
		t.Setenv("CROSSTAB_LOG_LEVEL", "debug")
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2021, c.CreatedYear)
		assert.Equal(t, "debug", c.Log.Level)
		assert.Equal(t, "en", c.Lang)
	})

	t.Run("explicit file", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "other.yaml")
		require.NoError(t, os.WriteFile(other, []byte("workers: 1\n"), 0o644))
		c, err := Load(other)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Workers)
		assert.Equal(t, "ja", c.Lang)
	})
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"lang", "lang: fr\n"},
		{"mode", "filter_mode: exclude\n"},
		{"workers", "workers: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key, val, want string
		wantErr        bool
	}{
		{"lang", "EN", "en", false},
		{"lang", "fr", "", true},
		{"created_year", "2020", "2020", false},
		{"created_year", "abc", "", true},
		{"workers", "4", "4", false},
		{"workers", "-1", "", true},
		{"filter_mode", "include", "include", false},
		{"filter_mode", "bogus", "", true},
		{"filters", "gender=女性, region=関西", "gender=女性,region=関西", false},
		{"filters", "gender", "", true},
		{"raw_include_text", "false", "false", false},
		{"log.add_source", "yes", "", true},
		{"log.level", "debug", "debug", false},
		{"nope", "1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			c := &Global{}
			err := c.Set(tt.key, tt.val)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
				return
			}
			require.NoError(t, err)
			got, err := c.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Global{
		Lang: "en", CreatedYear: 2018, Workers: 2, FilterMode: "include",
		Filters:        []filter.Rule{{Category: "gender", Value: "male"}},
		RawIncludeText: false,
		Log:            LogConfig{Level: "info", Format: "json", Output: "stdout"},
	}
	require.NoError(t, Save(in, path))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestKeysAreGettable(t *testing.T) {
	c := &Global{}
	for _, k := range Keys {
		_, err := c.Get(k)
		assert.NoError(t, err, k)
	}
}
