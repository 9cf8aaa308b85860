// Package config provides the manifest loader for provision.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	defaultCompiler = "g++"
	defaultTool     = "pip3"
	defaultSuffix   = ".gz"

	// pipStampName is the lockstamp written after a successful dependency
	// install. It serves as the existence probe for install-deps targets.
	pipStampName = ".provision-pip-stamp"
	// pipManifestName is the requirements file the stamp is compared against.
	pipManifestName = "requirements.txt"
)

// Loader implements ports.ConfigLoader using a YAML manifest file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads a manifest file from the given path and returns a domain.Graph.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	g := domain.NewGraph()
	names := make(map[string]bool, len(manifest.Targets))

	// First pass: collect all target names to verify prerequisites later.
	for name := range manifest.Targets {
		names[name] = true
	}

	// Second pass: convert and add to the graph.
	for name, dto := range manifest.Targets {
		if name == "all" {
			return nil, zerr.With(domain.ErrReservedTargetName, "target", name)
		}

		for _, dep := range dto.DependsOn {
			if !names[dep] {
				depErr := zerr.With(domain.ErrMissingPrerequisite, "target", name)
				return nil, zerr.With(depErr, "prerequisite", dep)
			}
		}

		target, err := toTarget(name, dto)
		if err != nil {
			return nil, err
		}

		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// toTarget converts a manifest entry into a domain target, deriving the
// declared outputs from the action parameters.
func toTarget(name string, dto TargetDTO) (*domain.Target, error) {
	action, outputs, err := toAction(name, dto)
	if err != nil {
		return nil, err
	}

	t := &domain.Target{
		Name:          domain.NewInternedString(name),
		Outputs:       internStrings(outputs),
		Prerequisites: internStrings(dto.DependsOn),
		Action:        action,
	}

	if dto.Probe != nil {
		t.Probe = &domain.Probe{
			Path:      dto.Probe.Path,
			NewerThan: dto.Probe.NewerThan,
		}
	} else if action.Kind == domain.ActionInstallDeps {
		// Default probe: lockstamp next to the requirements file.
		t.Probe = &domain.Probe{
			Path:      filepath.Join(action.ManifestDir, pipStampName),
			NewerThan: filepath.Join(action.ManifestDir, pipManifestName),
		}
	}

	return t, nil
}

func toAction(name string, dto TargetDTO) (domain.Action, []string, error) {
	kind := domain.ActionKind(dto.Action)

	switch kind {
	case domain.ActionFetchArchive:
		if err := requireFields(name, kind, field{"url", dto.URL}, field{"destDir", dto.DestDir}); err != nil {
			return domain.Action{}, nil, err
		}
		return domain.Action{Kind: kind, URL: dto.URL, DestDir: dto.DestDir}, []string{dto.DestDir}, nil

	case domain.ActionFetchExecutable:
		if err := requireFields(name, kind, field{"url", dto.URL}, field{"destPath", dto.DestPath}); err != nil {
			return domain.Action{}, nil, err
		}
		return domain.Action{Kind: kind, URL: dto.URL, DestPath: dto.DestPath}, []string{dto.DestPath}, nil

	case domain.ActionBuildExternal:
		if err := requireFields(name, kind,
			field{"sourceDir", dto.SourceDir},
			field{"buildDir", dto.BuildDir},
			field{"installDir", dto.InstallDir},
		); err != nil {
			return domain.Action{}, nil, err
		}
		return domain.Action{
			Kind:       kind,
			SourceDir:  dto.SourceDir,
			BuildDir:   dto.BuildDir,
			InstallDir: dto.InstallDir,
		}, []string{dto.InstallDir}, nil

	case domain.ActionCompile:
		if len(dto.Sources) == 0 {
			return domain.Action{}, nil, invalidAction(name, kind, "sources")
		}
		if err := requireFields(name, kind, field{"output", dto.Output}); err != nil {
			return domain.Action{}, nil, err
		}
		compiler := dto.Compiler
		if compiler == "" {
			compiler = defaultCompiler
		}
		return domain.Action{
			Kind:        kind,
			Sources:     dto.Sources,
			OutputPath:  dto.Output,
			IncludeDirs: dto.IncludeDirs,
			Compiler:    compiler,
		}, []string{dto.Output}, nil

	case domain.ActionInstallDeps:
		if err := requireFields(name, kind, field{"manifestDir", dto.ManifestDir}); err != nil {
			return domain.Action{}, nil, err
		}
		tool := dto.Tool
		if tool == "" {
			tool = defaultTool
		}
		// Side-effect target: no declared outputs, satisfaction via probe.
		return domain.Action{Kind: kind, ManifestDir: dto.ManifestDir, Tool: tool}, nil, nil

	case domain.ActionDecompress:
		if err := requireFields(name, kind, field{"path", dto.Path}); err != nil {
			return domain.Action{}, nil, err
		}
		out := strings.TrimSuffix(dto.Path, filepath.Ext(dto.Path))
		return domain.Action{Kind: kind, Path: dto.Path}, []string{out}, nil

	case domain.ActionDecompressDir:
		if err := requireFields(name, kind, field{"dir", dto.Dir}); err != nil {
			return domain.Action{}, nil, err
		}
		suffix := dto.Suffix
		if suffix == "" {
			suffix = defaultSuffix
		}
		// Fan-out rule: outputs are discovered at walk time, never declared.
		return domain.Action{Kind: kind, Dir: dto.Dir, Suffix: suffix}, nil, nil

	default:
		kindErr := zerr.With(domain.ErrUnknownActionKind, "target", name)
		return domain.Action{}, nil, zerr.With(kindErr, "action", dto.Action)
	}
}

type field struct {
	name  string
	value string
}

func requireFields(target string, kind domain.ActionKind, fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return invalidAction(target, kind, f.name)
		}
	}
	return nil
}

func invalidAction(target string, kind domain.ActionKind, missing string) error {
	err := zerr.With(domain.ErrInvalidAction, "target", target)
	err = zerr.With(err, "action", string(kind))
	return zerr.With(err, "missing_field", missing)
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
