package config

// Manifest represents the structure of the provision.yaml manifest file.
type Manifest struct {
	Version string               `yaml:"version"`
	Targets map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents a single target declaration in the manifest. The
// action field selects the kind; the remaining fields are per-kind
// parameters and stay empty for other kinds.
type TargetDTO struct {
	Action    string   `yaml:"action"`
	DependsOn []string `yaml:"dependsOn"`

	// fetch-archive / fetch-executable
	URL      string `yaml:"url"`
	DestDir  string `yaml:"destDir"`
	DestPath string `yaml:"destPath"`

	// build-external
	SourceDir  string `yaml:"sourceDir"`
	BuildDir   string `yaml:"buildDir"`
	InstallDir string `yaml:"installDir"`

	// compile
	Sources     []string `yaml:"sources"`
	Output      string   `yaml:"output"`
	IncludeDirs []string `yaml:"includeDirs"`
	Compiler    string   `yaml:"compiler"`

	// install-deps
	ManifestDir string `yaml:"manifestDir"`
	Tool        string `yaml:"tool"`

	// decompress / decompress-dir
	Path   string `yaml:"path"`
	Dir    string `yaml:"dir"`
	Suffix string `yaml:"suffix"`

	Probe *ProbeDTO `yaml:"probe"`
}

// ProbeDTO declares an explicit existence probe for side-effect targets.
type ProbeDTO struct {
	Path      string `yaml:"path"`
	NewerThan string `yaml:"newerThan"`
}
