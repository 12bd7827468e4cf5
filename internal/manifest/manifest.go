// Package manifest reads a package build manifest (HCL) and feeds it into a
// cmakegen.Config. The manifest is the declarative description of one
// package: its name, platform support, build variables and module targets.
package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded form of one build manifest.
type File struct {
	Package   *Package   `hcl:"package,block"`
	Platforms *Platforms `hcl:"platforms,block"`
	Variables []*Variable `hcl:"variable,block"`
	Modules   []*Module   `hcl:"module,block"`
}

// Package names the package being described.
type Package struct {
	Name    string `hcl:"name"`
	Version string `hcl:"version,optional"`
}

// Platforms classifies platforms as supported or unsupported. Identifiers
// are validated downstream, against the CMake translation table.
type Platforms struct {
	Supported   []string `hcl:"supported,optional"`
	Unsupported []string `hcl:"unsupported,optional"`
}

// Variable binds one build variable. An empty Platform means the default
// scope; otherwise the binding lands inside that platform's conditional
// block. Value stays a cty.Value so `value = 5.1` and `value = "5.1"` both
// decode.
type Variable struct {
	Name     string    `hcl:"name,label"`
	Value    cty.Value `hcl:"value"`
	Platform string    `hcl:"platform,optional"`
}

// Module declares one module target. Type is "script" (the default) or
// "native"; the native-only fields are ignored for script modules. Sources
// entries may be doublestar glob patterns, resolved against the manifest
// directory.
type Module struct {
	Name      string   `hcl:"name,label"`
	Type      string   `hcl:"type,optional"`
	Sources   []string `hcl:"sources,optional"`
	Libraries []string `hcl:"libraries,optional"`
	LibDirs   []string `hcl:"libdirs,optional"`
	IncDirs   []string `hcl:"incdirs,optional"`
	Defines   []string `hcl:"defines,optional"`
	Platform  string   `hcl:"platform,optional"`
}

// Load parses the manifest at path.
func Load(path string) (*File, error) {
	var f File
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if f.Package == nil || f.Package.Name == "" {
		return nil, fmt.Errorf("manifest %s: missing package name", path)
	}
	return &f, nil
}
