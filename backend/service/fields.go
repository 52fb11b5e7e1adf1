package service

// MergeFields returns a new map holding defaults overlaid by overrides. Overrides win on collision.
func MergeFields(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

// packFlagDefaults are forced onto every pack write unless the caller sets them.
func packFlagDefaults() map[string]any {
	return map[string]any{
		"locked":     false,
		"visible":    false,
		"selectable": false,
	}
}
