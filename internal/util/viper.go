package util

import (
	"strings"

	"github.com/spf13/viper"
)

// SetKeyValue sets a config value from an env style key such as
// RL_CREATE_DIRS or log_level. The key is matched against every key
// viper knows with dots read as underscores. Returns false if nothing
// matches.
func SetKeyValue(vi *viper.Viper, key string, value interface{}) bool {
	k := strings.TrimPrefix(strings.ToLower(key), "rl_")

	for _, vk := range vi.AllKeys() {
		if strings.ReplaceAll(vk, ".", "_") == k {
			vi.Set(vk, value)
			return true
		}
	}
	return false
}
