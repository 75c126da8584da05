package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Profile is one entry from the shared AWS credentials or config files.
type Profile struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Source string `json:"source"`
}

// ListProfiles returns the union of profiles declared in the shared
// credentials and config files, sorted by name. The "profile " prefix the
// config file uses is stripped so both files report the same names.
func ListProfiles() ([]Profile, error) {
	merged := make(map[string]*Profile)

	if err := mergeProfileFile(merged, sharedCredentialsPath(), "credentials"); err != nil {
		return nil, err
	}
	if err := mergeProfileFile(merged, sharedConfigPath(), "config"); err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(merged))
	for _, p := range merged {
		profiles = append(profiles, *p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles, nil
}

func mergeProfileFile(merged map[string]*Profile, path, source string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, sec := range f.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			continue
		}
		name = strings.TrimPrefix(name, "profile ")

		existing, ok := merged[name]
		if !ok {
			existing = &Profile{Name: name, Source: source}
			merged[name] = existing
		}
		if region := sec.Key("region").String(); region != "" && existing.Region == "" {
			existing.Region = region
		}
	}
	return nil
}

func sharedCredentialsPath() string {
	if path := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aws", "credentials")
}

func sharedConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aws", "config")
}
