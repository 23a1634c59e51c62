package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/config"
)

type testConfigDefault struct {
	Str  string `env:"CONFIG_TEST_STRING_DEFAULT" envDefault:"default_value"`
	Int  int    `env:"CONFIG_TEST_INT_DEFAULT" envDefault:"42"`
	Bool bool   `env:"CONFIG_TEST_BOOL_DEFAULT" envDefault:"true"`
}

type testConfigSuccess struct {
	Str  string   `env:"CONFIG_TEST_STRING"`
	Int  int      `env:"CONFIG_TEST_INT"`
	List []string `env:"CONFIG_TEST_LIST" envSeparator:","`
}

type testConfigCached struct {
	Str string `env:"CONFIG_TEST_CACHED"`
}

type testConfigRequired struct {
	Required string `env:"CONFIG_TEST_REQUIRED,required"`
}

type testConfigFile struct {
	Value  string `env:"CONFIG_TEST_FILE_VALUE"`
	Quoted string `env:"CONFIG_TEST_QUOTED"`
}

func TestLoad_Success(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIG_TEST_STRING", "test_value")
	t.Setenv("CONFIG_TEST_INT", "100")
	t.Setenv("CONFIG_TEST_LIST", "a,b")

	var cfg testConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.Str)
	assert.Equal(t, 100, cfg.Int)
	assert.Equal(t, []string{"a", "b"}, cfg.List)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.Reset()

	var cfg testConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.Str)
	assert.Equal(t, 42, cfg.Int)
	assert.True(t, cfg.Bool)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first testConfigCached
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED", "second")
	var second testConfigCached
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Str)

	config.Reset()
	var third testConfigCached
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Str)
}

func TestLoad_MissingRequiredIsNotCached(t *testing.T) {
	config.Reset()

	var cfg testConfigRequired
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("CONFIG_TEST_REQUIRED", "now_set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now_set", cfg.Required)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	assert.Panics(t, func() {
		var cfg testConfigRequired
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(func() {
		os.Unsetenv("CONFIG_TEST_FILE_VALUE")
		os.Unsetenv("CONFIG_TEST_QUOTED")
	})

	require.NoError(t, config.LoadEnv("testdata/test.env"))

	var cfg testConfigFile
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
