package cmakegen

import "sort"

// platformConditions maps abstract platform identifiers, as they appear in
// package build descriptions, to CMake boolean conditions. An identifier
// without an entry here cannot be expressed in the generated script and is
// rejected by every setter that takes a platform.
var platformConditions = map[string]string{
	"unix":    "UNIX",
	"windows": "WIN32",
	"win32":   "WIN32",
	"cygwin":  "CYGWIN",
	"macosx":  "APPLE",
	"linux":   `(CMAKE_SYSTEM_NAME MATCHES "Linux")`,
	"freebsd": `(CMAKE_SYSTEM_NAME MATCHES "FreeBSD")`,
	"openbsd": `(CMAKE_SYSTEM_NAME MATCHES "OpenBSD")`,
	"netbsd":  `(CMAKE_SYSTEM_NAME MATCHES "NetBSD")`,
	"solaris": `(CMAKE_SYSTEM_NAME MATCHES "SunOS")`,
	"mingw32": "MINGW",
}

// Translate returns the CMake condition for a platform identifier.
func Translate(platform string) (cond string, ok bool) {
	cond, ok = platformConditions[platform]
	return
}

// ValidPlatform reports whether platform has a CMake equivalent.
func ValidPlatform(platform string) bool {
	_, ok := platformConditions[platform]
	return ok
}

// Platforms returns all recognized platform identifiers, sorted.
func Platforms() []string {
	ids := make([]string, 0, len(platformConditions))
	for id := range platformConditions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
