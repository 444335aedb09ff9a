package config

import "strings"

// envNames lists the variable names in environ that match key ignoring case.
// key itself always comes first so the exact spelling wins.
func envNames(key string, environ []string) []string {
	names := []string{key}
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || name == key {
			continue
		}
		if strings.EqualFold(name, key) {
			names = append(names, name)
		}
	}
	return names
}
