package services

import "shopconnect/internal/repos"

// SettingsService resolves gateway configuration from the per-shop settings
// store, with a fallback to the legacy unscoped module id for values written
// by old installs.
type SettingsService struct {
	Repo *repos.SettingsRepo
}

func NewSettingsService(repo *repos.SettingsRepo) *SettingsService {
	return &SettingsService{Repo: repo}
}

// APIAccess returns the configured API key and whether plain HTTP is allowed.
// The allowNonSsl flag is read from the same module scope the key was found
// in, so a legacy install keeps its old behavior as a unit.
func (s *SettingsService) APIAccess(shopID string) (string, bool, error) {
	key, err := s.Repo.Get(repos.SettingsModule, "apiKey", shopID)
	if err != nil {
		return "", false, err
	}

	module := repos.SettingsModule
	if key == "" {
		module = repos.LegacySettingsModule
		key, err = s.Repo.Get(module, "apiKey", shopID)
		if err != nil {
			return "", false, err
		}
	}

	allow, err := s.Repo.Get(module, "allowNonSsl", shopID)
	if err != nil {
		return "", false, err
	}
	return key, boolSetting(allow), nil
}

func (s *SettingsService) IncludeSubshops(shopID string) (bool, error) {
	v, err := s.Repo.Get(repos.SettingsModule, "includeSubshops", shopID)
	if err != nil {
		return false, err
	}
	return boolSetting(v), nil
}

func boolSetting(v string) bool {
	return v == "1" || v == "true"
}
