package vbadoc

import (
	"regexp"
	"strings"
)

var libraryIDRe = regexp.MustCompile(`^/vba/[a-z0-9-]+$`)

// Library ID length bounds.
const (
	MinLibraryIDLen = 8
	MaxLibraryIDLen = 100
)

// ValidateLibraryID reports whether id is a well-formed library identifier:
// "/vba/" followed by a lower-case slug of letters, digits and hyphens,
// 8 to 100 characters long, free of < > : " | ? *.
func ValidateLibraryID(id string) bool {
	if !libraryIDRe.MatchString(id) {
		return false
	}
	if len(id) < MinLibraryIDLen || len(id) > MaxLibraryIDLen {
		return false
	}
	return !strings.ContainsAny(id, `<>:"|?*`)
}

// Parameter names recognized by ValidateParameters.
const (
	ParamLibraryName = "libraryName"
	ParamOfficeApp   = "officeApp"
	ParamDifficulty  = "difficulty"
)

// ValidateParameters reports whether inbound request parameters are well
// formed: libraryName must be a non-empty string; officeApp, when set, must
// name one of OfficeApps; difficulty, when set, must name one of
// Difficulties. Empty optional values count as unset.
func ValidateParameters(params map[string]any) bool {
	name, ok := params[ParamLibraryName].(string)
	if !ok || name == "" {
		return false
	}

	if v, set := optionalParam(params, ParamOfficeApp); set {
		s, ok := v.(string)
		if !ok || !OfficeApp(s).Valid() {
			return false
		}
	}

	if v, set := optionalParam(params, ParamDifficulty); set {
		s, ok := v.(string)
		if !ok || !Difficulty(s).Valid() {
			return false
		}
	}

	return true
}

// optionalParam returns the value for key and whether it counts as set.
// Missing keys, nil values and empty strings are unset.
func optionalParam(params map[string]any, key string) (any, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, false
	}
	return v, true
}
