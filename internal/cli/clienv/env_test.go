package clienv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/steviee/go-mc-profiles/internal/profiles"
	"github.com/steviee/go-mc-profiles/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/minecraft/launcher_profiles.json"

func TestEnv_EditorConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	now := func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }

	cfg := state.DefaultConfig()
	cfg.Launcher.RemoveBeforeCopy = true

	env := &Env{Config: cfg, Fs: fs, Now: now}
	got := env.EditorConfig()

	assert.Same(t, fs, got.Fs)
	assert.True(t, got.RemoveBeforeCopy)
	assert.Equal(t, now(), got.Now())
	assert.NotNil(t, got.NewID)
	assert.NotNil(t, got.NewName)
	assert.NotNil(t, got.Logger)
}

func TestEnv_OpenEditor(t *testing.T) {
	fs := afero.NewMemMapFs()
	env := &Env{Fs: fs, ProfilesFile: testPath}

	_, err := env.OpenEditor()
	assert.ErrorIs(t, err, profiles.ErrNonexistent)

	require.NoError(t, afero.WriteFile(fs, testPath, []byte(`{"profiles":{}}`), 0644))

	ed, err := env.OpenEditor()
	require.NoError(t, err)
	assert.Equal(t, testPath, ed.Path())
	assert.Empty(t, ed.Profiles())
}

func TestEnv_Defaults(t *testing.T) {
	env := &Env{}
	assert.Equal(t, "Furnace", env.Defaults().Icon)

	cfg := state.DefaultConfig()
	cfg.Defaults.Icon = "TNT"
	env.Config = cfg
	assert.Equal(t, "TNT", env.Defaults().Icon)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: bad id", ErrInvalidInput), want: "INVALID_INPUT"},
		{err: fmt.Errorf("%w: forge", ErrProfileNotFound), want: "PROFILE_NOT_FOUND"},
		{err: fmt.Errorf("%w: x", profiles.ErrIDUsed), want: "LAUNCHER_PROFILES_ID_USED"},
		{err: errors.New("boom"), want: profiles.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestOutputError(t *testing.T) {
	errIn := fmt.Errorf("%w: /x", profiles.ErrNonexistent)

	t.Run("json mode prints envelope", func(t *testing.T) {
		var buf bytes.Buffer
		env := &Env{JSON: true}

		err := env.OutputError(&buf, errIn)
		assert.Same(t, errIn, err)

		var out Output
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "error", out.Status)
		assert.Equal(t, errIn.Error(), out.Error)
		assert.Equal(t, "LAUNCHER_PROFILES_NONEXISTENT", out.Code)
	})

	t.Run("human mode prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		env := &Env{}

		err := env.OutputError(&buf, errIn)
		assert.Same(t, errIn, err)
		assert.Empty(t, buf.String())
	})
}

func TestOutputSuccess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputSuccess(&buf, map[string]int{"count": 2}, "done"))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "done", out["message"])
	assert.Equal(t, map[string]interface{}{"count": float64(2)}, out["data"])
	assert.NotContains(t, out, "error")
}

func TestPrintf_Quiet(t *testing.T) {
	var buf bytes.Buffer

	(&Env{Quiet: true}).Printf(&buf, "hello %s\n", "steve")
	assert.Empty(t, buf.String())

	(&Env{}).Printf(&buf, "hello %s\n", "steve")
	assert.Equal(t, "hello steve\n", buf.String())
}
