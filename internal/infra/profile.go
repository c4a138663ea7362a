package infra

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

// getAWSConfigPath returns the shared config file the SDK reads.
func getAWSConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".aws", "config")
}

// parseAWSConfigProfiles maps profile names to account IDs.
// sso_account_id wins over the account of role_arn. Profiles with neither are omitted.
// Returns nil when the config file cannot be read.
func parseAWSConfigProfiles() map[string]string {
	file, err := ini.Load(getAWSConfigPath())
	if err != nil {
		return nil
	}

	profiles := make(map[string]string)

	for _, section := range file.Sections() {
		name, ok := profileName(section.Name())
		if !ok {
			continue
		}

		if id := section.Key("sso_account_id").String(); id != "" {
			profiles[name] = id

			continue
		}

		if id := accountFromARN(section.Key("role_arn").String()); id != "" {
			profiles[name] = id
		}
	}

	return profiles
}

// profileName extracts the profile name from a section header.
// Sections such as [sso-session x] are not profiles.
func profileName(section string) (string, bool) {
	if strings.EqualFold(section, "default") {
		return "default", true
	}

	if name, ok := strings.CutPrefix(section, "profile "); ok {
		name = strings.TrimSpace(name)

		return name, name != ""
	}

	return "", false
}

// accountFromARN returns the account field of an ARN.
func accountFromARN(arn string) string {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) < 6 || parts[0] != "arn" {
		return ""
	}

	return parts[4]
}

// findProfileByAccountID returns the profile configured for accountID.
// The preferred profiles, then AWS_PROFILE and AWS_DEFAULT_PROFILE, win when
// they match; otherwise the alphabetically first match is returned.
func findProfileByAccountID(accountID string, preferred ...string) string {
	profiles := parseAWSConfigProfiles()
	if len(profiles) == 0 {
		return ""
	}

	candidates := append(slices.Clone(preferred), os.Getenv("AWS_PROFILE"), os.Getenv("AWS_DEFAULT_PROFILE"))
	for _, name := range candidates {
		if name != "" && profiles[name] == accountID {
			return name
		}
	}

	matches := lo.Keys(lo.PickByValues(profiles, []string{accountID}))
	if len(matches) == 0 {
		return ""
	}

	slices.Sort(matches)

	return matches[0]
}
