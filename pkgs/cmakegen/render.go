package cmakegen

import (
	"fmt"
	"sort"
	"strings"
)

// Render produces the CMake script for the accumulated configuration. It is
// a pure read of the Config: rendering twice yields byte-identical output.
// Render never fails; configuration problems surface as message(FATAL_ERROR)
// directives that stop CMake, not the generator.
func (c *Config) Render() string {
	sections := []string{
		c.renderPreamble(),
		c.renderErrors(),
		c.renderUnsupportedGuards(),
		c.renderSupportedGuard(),
		c.renderVariables(),
		c.renderPlatformVariables(),
		c.renderInstallDefaults(),
		c.renderScriptInstalls(),
		c.renderPlatformScriptInstalls(),
		c.renderNativeTargets(),
		c.renderPlatformNativeTargets(),
	}
	parts := sections[:0]
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (c *Config) renderPreamble() string {
	var b strings.Builder
	b.WriteString("cmake_minimum_required(VERSION 3.5)\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "project(%s C CXX)\n", c.pkgName)
	b.WriteString("\n")
	b.WriteString("## INSTALL DEFAULTS (relative to CMAKE_INSTALL_PREFIX)\n")
	b.WriteString("set(INSTALL_BIN bin CACHE PATH \"Directory for executables\")\n")
	b.WriteString("set(INSTALL_LIB lib CACHE PATH \"Directory for libraries\")\n")
	b.WriteString("set(INSTALL_ETC etc CACHE PATH \"Directory for configuration files\")\n")
	b.WriteString("set(INSTALL_SHARE share CACHE PATH \"Directory for shared data\")\n")
	b.WriteString("set(INSTALL_LMOD ${INSTALL_SHARE}/lua CACHE PATH \"Directory for Lua modules\")\n")
	b.WriteString("set(INSTALL_CMOD ${INSTALL_LIB}/lua CACHE PATH \"Directory for native Lua modules\")\n")
	return b.String()
}

func (c *Config) renderErrors() string {
	if len(c.errors) == 0 {
		return ""
	}
	var b strings.Builder
	for _, msg := range c.errors {
		fmt.Fprintf(&b, "message(FATAL_ERROR %s)\n", quote(msg))
	}
	return b.String()
}

func (c *Config) renderUnsupportedGuards() string {
	if len(c.unsupported) == 0 {
		return ""
	}
	var b strings.Builder
	for i, platform := range c.unsupported {
		cond, _ := Translate(platform)
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "if (%s)\n", cond)
		fmt.Fprintf(&b, "    message(FATAL_ERROR %s)\n",
			quote(fmt.Sprintf("Package %s does not support platform %s", c.pkgName, platform)))
		b.WriteString("endif()\n")
	}
	return b.String()
}

// renderSupportedGuard emits one abort that fires unless the current
// platform matches at least one declared-supported platform.
func (c *Config) renderSupportedGuard() string {
	if len(c.supported) == 0 {
		return ""
	}
	terms := make([]string, len(c.supported))
	for i, platform := range c.supported {
		cond, _ := Translate(platform)
		terms[i] = "NOT " + cond
	}
	var b strings.Builder
	fmt.Fprintf(&b, "if (%s)\n", strings.Join(terms, " AND "))
	fmt.Fprintf(&b, "    message(FATAL_ERROR %s)\n",
		quote(fmt.Sprintf("Package %s is not supported on this platform (supported: %s)",
			c.pkgName, strings.Join(c.supported, ", "))))
	b.WriteString("endif()\n")
	return b.String()
}

func (c *Config) renderVariables() string {
	if len(c.variables) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range sortedKeys(c.variables) {
		fmt.Fprintf(&b, "set(%s %s)\n", name, value(c.variables[name]))
	}
	return b.String()
}

func (c *Config) renderPlatformVariables() string {
	if len(c.platformVars) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	for _, platform := range sortedKeys(c.platformVars) {
		vars := c.platformVars[platform]
		if len(vars) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		cond, _ := Translate(platform)
		fmt.Fprintf(&b, "if (%s)\n", cond)
		for _, name := range sortedKeys(vars) {
			fmt.Fprintf(&b, "    set(%s %s)\n", name, value(vars[name]))
		}
		b.WriteString("endif()\n")
	}
	return b.String()
}

func (c *Config) renderInstallDefaults() string {
	var b strings.Builder
	b.WriteString("## DEFAULT INSTALL DESTINATIONS\n")
	b.WriteString("set(INSTALL_FILES_DIR ${INSTALL_SHARE})\n")
	b.WriteString("set(INSTALL_LUA_DIR ${INSTALL_LMOD})\n")
	b.WriteString("set(INSTALL_C_DIR ${INSTALL_CMOD})\n")
	b.WriteString("set(INSTALL_CONF_DIR ${INSTALL_ETC})\n")
	b.WriteString("set(INSTALL_BIN_DIR ${INSTALL_BIN})\n")
	return b.String()
}

func (c *Config) renderScriptInstalls() string {
	if len(c.scriptTargets) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range c.scriptTargets {
		b.WriteString(scriptInstall(name))
	}
	return b.String()
}

func (c *Config) renderPlatformScriptInstalls() string {
	if len(c.platformScript) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	for _, platform := range sortedKeys(c.platformScript) {
		var inner strings.Builder
		for _, name := range c.platformScript[platform] {
			if contains(c.scriptTargets, name) {
				continue
			}
			inner.WriteString(scriptInstall(name))
		}
		if inner.Len() == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		cond, _ := Translate(platform)
		fmt.Fprintf(&b, "if (%s)\n", cond)
		b.WriteString(indent(inner.String()))
		b.WriteString("endif()\n")
	}
	return b.String()
}

func (c *Config) renderNativeTargets() string {
	if len(c.nativeTargets) == 0 {
		return ""
	}
	blocks := make([]string, len(c.nativeTargets))
	for i, name := range c.nativeTargets {
		blocks[i] = nativeTarget(name)
	}
	return strings.Join(blocks, "\n")
}

// renderPlatformNativeTargets wraps each platform's extra native modules in
// that platform's conditional, mirroring script-module overrides.
func (c *Config) renderPlatformNativeTargets() string {
	if len(c.platformNative) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	for _, platform := range sortedKeys(c.platformNative) {
		var blocks []string
		for _, name := range c.platformNative[platform] {
			if contains(c.nativeTargets, name) {
				continue
			}
			blocks = append(blocks, nativeTarget(name))
		}
		if len(blocks) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		cond, _ := Translate(platform)
		fmt.Fprintf(&b, "if (%s)\n", cond)
		b.WriteString(indent(strings.Join(blocks, "\n")))
		b.WriteString("endif()\n")
	}
	return b.String()
}

// scriptInstall emits the install directive for one script module. The
// dotted module name becomes a nested destination path and the leaf is
// renamed to <leaf>.lua; the source list comes from the module's
// ${<NAME>_SOURCES} variable.
func scriptInstall(name string) string {
	dir, leaf := splitModule(name)
	dest := "${INSTALL_LUA_DIR}"
	if dir != "" {
		dest += "/" + dir
	}
	return fmt.Sprintf("install(FILES ${%s_SOURCES} DESTINATION %s RENAME %s.lua)\n",
		TargetVarPrefix(name), dest, leaf)
}

// nativeTarget emits the build directive block for one native module:
// library target, library search loop, private usage requirements and the
// install of the built artifact. All per-module data is referenced through
// ${<NAME>_*} variables populated by the caller.
func nativeTarget(name string) string {
	prefix := TargetVarPrefix(name)
	target := targetName(name)
	dir, leaf := splitModule(name)
	dest := "${INSTALL_C_DIR}"
	if dir != "" {
		dest += "/" + dir
	}
	var b strings.Builder
	fmt.Fprintf(&b, "add_library(%s MODULE ${%s_SOURCES})\n", target, prefix)
	fmt.Fprintf(&b, "foreach(LIBRARY ${%s_LIB_NAMES})\n", prefix)
	fmt.Fprintf(&b, "    find_library(%s_${LIBRARY} NAMES ${LIBRARY} PATHS ${%s_LIB_DIRS})\n", prefix, prefix)
	b.WriteString("endforeach()\n")
	fmt.Fprintf(&b, "target_include_directories(%s PRIVATE ${%s_INCLUDE_DIRS})\n", target, prefix)
	fmt.Fprintf(&b, "target_compile_definitions(%s PRIVATE ${%s_DEFINES})\n", target, prefix)
	fmt.Fprintf(&b, "target_link_libraries(%s PRIVATE ${%s_LIBRARIES})\n", target, prefix)
	fmt.Fprintf(&b, "set_target_properties(%s PROPERTIES PREFIX \"\" OUTPUT_NAME %s)\n", target, leaf)
	fmt.Fprintf(&b, "install(TARGETS %s DESTINATION %s)\n", target, dest)
	return b.String()
}

// splitModule splits a dotted module name into its parent path (dots to
// slashes) and leaf component.
func splitModule(name string) (dir, leaf string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return strings.ReplaceAll(name[:i], ".", "/"), name[i+1:]
	}
	return "", name
}

// targetName derives the CMake target name for a module.
func targetName(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, ".", "_"), "-", "_")
}

// TargetVarPrefix derives the variable prefix that carries a module's
// declared sources, libraries, include dirs and defines.
func TargetVarPrefix(name string) string {
	return strings.ToUpper(targetName(name))
}

// value renders a variable value, quoting only when whitespace would
// otherwise split it into multiple CMake arguments.
func value(v string) string {
	if strings.ContainsAny(v, " \t") {
		return quote(v)
	}
	return v
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
