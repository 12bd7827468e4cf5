package manifest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/qiniu/x/log"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/rockbind/rock2cmake/pkgs/cmakegen"
)

// Apply feeds a decoded manifest into cfg through the accumulator's setters.
// baseDir is the directory source globs resolve against, normally the
// manifest's own directory. Problems with the manifest's content (unknown
// platforms, unknown module types, unconvertible values) are down-leveled
// into the configuration's error list and end up as abort directives in the
// rendered script; Apply itself never fails on them.
func Apply(f *File, baseDir string, cfg *cmakegen.Config) {
	if f.Platforms != nil {
		for _, id := range f.Platforms.Supported {
			cfg.AddSupportedPlatform(id)
		}
		for _, id := range f.Platforms.Unsupported {
			cfg.AddUnsupportedPlatform(id)
		}
	}
	for _, v := range f.Variables {
		applyVariable(v, cfg)
	}
	for _, m := range f.Modules {
		applyModule(m, baseDir, cfg)
	}
}

func applyVariable(v *Variable, cfg *cmakegen.Config) {
	val, err := valueString(v.Value)
	if err != nil {
		cfg.AddError(fmt.Sprintf("variable '%s': %v", v.Name, err))
		return
	}
	if v.Platform == "" {
		cfg.SetVariable(v.Name, val)
		return
	}
	cfg.SetPlatformVariable(v.Platform, v.Name, val)
}

func applyModule(m *Module, baseDir string, cfg *cmakegen.Config) {
	sources := expandSources(baseDir, m.Sources)
	setModuleVar(cfg, m, "SOURCES", sources)

	switch m.Type {
	case "", "script":
		if m.Platform == "" {
			cfg.AddScriptTarget(m.Name)
		} else {
			cfg.AddPlatformScriptTarget(m.Platform, m.Name)
		}
	case "native":
		setModuleVar(cfg, m, "LIB_NAMES", m.Libraries)
		setModuleVar(cfg, m, "LIB_DIRS", m.LibDirs)
		setModuleVar(cfg, m, "INCLUDE_DIRS", m.IncDirs)
		setModuleVar(cfg, m, "DEFINES", m.Defines)
		setModuleVar(cfg, m, "LIBRARIES", m.Libraries)
		if m.Platform == "" {
			cfg.AddNativeTarget(m.Name)
		} else {
			cfg.AddPlatformNativeTarget(m.Platform, m.Name)
		}
	default:
		cfg.AddError(fmt.Sprintf("module '%s': unknown build type '%s'", m.Name, m.Type))
	}
}

// setModuleVar records one ${<NAME>_<suffix>} list variable in the module's
// scope. Empty lists set nothing; the rendered ${...} reference then
// expands to an empty CMake list.
func setModuleVar(cfg *cmakegen.Config, m *Module, suffix string, values []string) {
	if len(values) == 0 {
		return
	}
	name := cmakegen.TargetVarPrefix(m.Name) + "_" + suffix
	value := strings.Join(values, ";")
	if m.Platform == "" {
		cfg.SetVariable(name, value)
		return
	}
	cfg.SetPlatformVariable(m.Platform, name, value)
}

// expandSources resolves glob patterns against baseDir. Entries without
// glob metacharacters, and patterns that match nothing, pass through
// verbatim so the generated script still names the missing file.
func expandSources(baseDir string, sources []string) []string {
	var out []string
	for _, src := range sources {
		if !strings.ContainsAny(src, "*?[{") {
			out = append(out, src)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(baseDir), src)
		if err != nil || len(matches) == 0 {
			log.Warnf("source pattern %q matched nothing under %s", src, baseDir)
			out = append(out, src)
			continue
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}
	return out
}

// valueString renders a manifest value as the string the CMake script will
// carry. Strings, numbers and bools all convert; aggregates become
// semicolon-separated CMake lists.
func valueString(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", fmt.Errorf("value is null")
	}
	if v.Type().IsTupleType() || v.Type().IsListType() {
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			s, err := valueString(ev)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ";"), nil
	}
	conv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot render value as string: %w", err)
	}
	return conv.AsString(), nil
}
