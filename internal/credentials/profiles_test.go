package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestListProfilesMergesFiles(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials")
	cfgPath := filepath.Join(dir, "config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credPath)
	t.Setenv("AWS_CONFIG_FILE", cfgPath)

	writeFile(t, credPath, `[default]
aws_access_key_id = AKID
aws_secret_access_key = SECRET

[dev]
aws_access_key_id = AKID2
aws_secret_access_key = SECRET2
`)
	writeFile(t, cfgPath, `[default]
region = us-east-1

[profile dev]
region = eu-west-1

[profile staging]
region = sa-east-1
`)

	profiles, err := ListProfiles()
	require.NoError(t, err)

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"default", "dev", "staging"}, names)

	byName := make(map[string]Profile)
	for _, p := range profiles {
		byName[p.Name] = p
	}

	// dev appears in both files; the credentials entry wins as source and the
	// config file contributes the region.
	assert.Equal(t, "credentials", byName["dev"].Source)
	assert.Equal(t, "eu-west-1", byName["dev"].Region)

	assert.Equal(t, "config", byName["staging"].Source)
	assert.Equal(t, "sa-east-1", byName["staging"].Region)
}

func TestListProfilesMissingFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))

	profiles, err := ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListProfilesStripsProfilePrefix(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_CONFIG_FILE", cfgPath)

	writeFile(t, cfgPath, `[profile my-profile]
region = us-west-2
`)

	profiles, err := ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "my-profile", profiles[0].Name)
}
