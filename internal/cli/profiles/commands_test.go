package profiles

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	lprofiles "github.com/steviee/go-mc-profiles/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBackupPath = "/minecraft/backup_launcher_profiles.json"

func TestRunShow(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)

	var buf bytes.Buffer
	require.NoError(t, runShow(env, &buf, "a1b2c3"))

	out := buf.String()
	assert.Contains(t, out, "ID:         a1b2c3")
	assert.Contains(t, out, "Name:       Vanilla")
	assert.Contains(t, out, "Game dir:   /games/vanilla")
	assert.Contains(t, out, "Java:       (launcher default)")
}

func TestRunShow_JSON(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)
	env.JSON = true

	var buf bytes.Buffer
	require.NoError(t, runShow(env, &buf, "forge"))

	data := decodeOutput(t, &buf)["data"].(map[string]interface{})
	assert.Equal(t, "forge", data["id"])
	assert.Equal(t, "1.14.4-forge-28.1.106", data["lastVersionId"])
	assert.Nil(t, data["javaDir"])
}

func TestRunShow_NotFound(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)
	env.JSON = true

	var buf bytes.Buffer
	err := runShow(env, &buf, "missing")
	require.Error(t, err)
	assert.Equal(t, "PROFILE_NOT_FOUND", decodeOutput(t, &buf)["code"])
}

func TestRunPatchForge(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)

	var buf bytes.Buffer
	require.NoError(t, runPatchForge(env, &buf))

	assert.Contains(t, buf.String(), "2019-12-12T03:11:17.000Z")
	forge := readProfiles(t, env, testPath)["forge"]
	assert.Equal(t, "2019-12-12T03:11:17.000Z", forge["lastUsed"])
	assert.Equal(t, "1.14.4-forge-28.1.106", forge["lastVersionId"])
}

func TestRunPatchForge_NoForgeProfile(t *testing.T) {
	env := newTestEnv(t, `{"profiles": {"x": {"name": "x"}}}`)
	env.JSON = true

	var buf bytes.Buffer
	err := runPatchForge(env, &buf)
	assert.ErrorIs(t, err, lprofiles.ErrNoForgeProfile)
	assert.Equal(t, "LAUNCHER_PROFILES_NO_FORGE_PROFILE", decodeOutput(t, &buf)["code"])

	exists, statErr := afero.Exists(env.Fs, testBackupPath)
	require.NoError(t, statErr)
	assert.False(t, exists, "nothing is written on failure")
}

func TestRunRestore(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)

	var buf bytes.Buffer
	require.NoError(t, runAdd(env, &buf, &addOptions{id: "added", name: "Added", version: "1.12.2", gameDir: "/g"}))
	require.Contains(t, readProfiles(t, env, testPath), "added")

	buf.Reset()
	require.NoError(t, runRestore(env, &buf))
	assert.Contains(t, buf.String(), "3 profiles")
	assert.NotContains(t, readProfiles(t, env, testPath), "added")
	assert.Contains(t, readProfiles(t, env, testBackupPath), "added")

	buf.Reset()
	require.NoError(t, runRestore(env, &buf))
	assert.Contains(t, readProfiles(t, env, testPath), "added")
}

func TestRunRestore_NoBackup(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)
	env.JSON = true

	var buf bytes.Buffer
	err := runRestore(env, &buf)
	assert.ErrorIs(t, err, lprofiles.ErrBackupMissing)
	assert.Equal(t, "LAUNCHER_PROFILES_BACKUP_MISSING", decodeOutput(t, &buf)["code"])
}

func TestRunInfo(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)

	var buf bytes.Buffer
	require.NoError(t, runInfo(env, &buf))

	out := buf.String()
	assert.Contains(t, out, "File:     "+testPath)
	assert.Contains(t, out, "Backup:   none")
	assert.Contains(t, out, "Profiles: 3")
	assert.Contains(t, out, "Forge:    yes")
}

func TestRunInfo_ForgeEntryNotAnObject(t *testing.T) {
	env := newTestEnv(t, `{"profiles":{"forge":"oops"}}`)

	var buf bytes.Buffer
	require.NoError(t, runInfo(env, &buf))

	out := buf.String()
	assert.Contains(t, out, "Profiles: 0")
	assert.Contains(t, out, "Forge:    no")
}

func TestRunInfo_JSON(t *testing.T) {
	env := newTestEnv(t, sampleProfiles)
	require.NoError(t, afero.WriteFile(env.Fs, testBackupPath, []byte(`{"profiles":{}}`), 0644))
	env.JSON = true

	var buf bytes.Buffer
	require.NoError(t, runInfo(env, &buf))

	data := decodeOutput(t, &buf)["data"].(map[string]interface{})
	file := data["file"].(map[string]interface{})
	backup := data["backup"].(map[string]interface{})

	assert.Equal(t, testPath, file["path"])
	assert.Equal(t, true, file["exists"])
	assert.Equal(t, float64(len(sampleProfiles)), file["size"])
	assert.Equal(t, "15B", backup["size_human"])
	assert.Equal(t, float64(3), data["profiles"])
	assert.Equal(t, true, data["forge_profile"])
}

func TestStatFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.json", make([]byte, 2048), 0644))

	fi := statFile(fs, "/a.json")
	assert.True(t, fi.Exists)
	assert.Equal(t, int64(2048), fi.Size)
	assert.Equal(t, "2.048kB", fi.SizeHuman)

	fi = statFile(fs, "/missing.json")
	assert.False(t, fi.Exists)
	assert.Zero(t, fi.Size)
}
