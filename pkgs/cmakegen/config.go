// Package cmakegen renders a declarative package build configuration
// (platform support lists, variables, script and native module targets)
// into a CMake script.
package cmakegen

import "fmt"

// Config accumulates everything the renderer needs to emit a CMake script
// for one package: fatal errors, platform support lists, variable bindings
// and module targets, each in a default scope plus per-platform override
// scopes. One Config serves one generation run; populate it through the
// setters, then call Render.
type Config struct {
	pkgName string

	errors      []string
	supported   []string
	unsupported []string

	variables    map[string]string
	platformVars map[string]map[string]string

	scriptTargets  []string
	nativeTargets  []string
	platformScript map[string][]string
	platformNative map[string][]string
}

// New creates an empty Config for the named package.
func New(pkgName string) *Config {
	return &Config{
		pkgName:        pkgName,
		variables:      map[string]string{},
		platformVars:   map[string]map[string]string{},
		platformScript: map[string][]string{},
		platformNative: map[string][]string{},
	}
}

// PkgName returns the package name the Config was created with.
func (c *Config) PkgName() string {
	return c.pkgName
}

// AddError records a fatal error. Errors are rendered as unconditional
// message(FATAL_ERROR) directives; generation itself never fails on them.
func (c *Config) AddError(msg string) {
	c.errors = append(c.errors, msg)
}

// Errors returns all recorded fatal errors, in insertion order.
func (c *Config) Errors() []string {
	return c.errors
}

// checkPlatform validates a platform identifier, recording a fatal error
// for unknown ones. Setters call it first and bail out on failure, so an
// invalid platform leaves everything but the error list untouched.
func (c *Config) checkPlatform(platform string) bool {
	if ValidPlatform(platform) {
		return true
	}
	c.AddError(fmt.Sprintf("unsupported platform '%s': no CMake equivalent defined", platform))
	return false
}

// AddSupportedPlatform declares a platform the package supports.
func (c *Config) AddSupportedPlatform(platform string) {
	if !c.checkPlatform(platform) {
		return
	}
	c.supported = append(c.supported, platform)
}

// AddUnsupportedPlatform declares a platform the package refuses to build on.
func (c *Config) AddUnsupportedPlatform(platform string) {
	if !c.checkPlatform(platform) {
		return
	}
	c.unsupported = append(c.unsupported, platform)
}

// SetVariable binds a variable in the default scope.
func (c *Config) SetVariable(name, value string) {
	c.variables[name] = value
}

// SetPlatformVariable binds a variable inside the given platform's
// conditional block. It does not replace a default-scope binding of the
// same name; CMake's last-assignment-wins semantics resolve the effective
// value when the block applies.
func (c *Config) SetPlatformVariable(platform, name, value string) {
	if !c.checkPlatform(platform) {
		return
	}
	vars := c.platformVars[platform]
	if vars == nil {
		vars = map[string]string{}
		c.platformVars[platform] = vars
	}
	vars[name] = value
}

// AddScriptTarget appends a script module to the default target list.
// Duplicates are preserved; avoiding them is the caller's business.
func (c *Config) AddScriptTarget(name string) {
	c.scriptTargets = append(c.scriptTargets, name)
}

// AddPlatformScriptTarget appends a script module to a platform's override
// list. At render time the module is skipped if the default list already
// carries it: an override adds to the default set, it never duplicates it.
func (c *Config) AddPlatformScriptTarget(platform, name string) {
	if !c.checkPlatform(platform) {
		return
	}
	c.platformScript[platform] = append(c.platformScript[platform], name)
}

// AddNativeTarget appends a native module to the default target list.
func (c *Config) AddNativeTarget(name string) {
	c.nativeTargets = append(c.nativeTargets, name)
}

// AddPlatformNativeTarget appends a native module to a platform's override
// list, with the same render-time suppression as script overrides.
func (c *Config) AddPlatformNativeTarget(platform, name string) {
	if !c.checkPlatform(platform) {
		return
	}
	c.platformNative[platform] = append(c.platformNative[platform], name)
}
