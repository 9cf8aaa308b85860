package domain

// ActionKind identifies the concrete operation that produces a target's outputs.
type ActionKind string

const (
	// ActionFetchArchive downloads a remote archive and unpacks it into a directory.
	ActionFetchArchive ActionKind = "fetch-archive"
	// ActionFetchExecutable downloads a single file and marks it executable.
	ActionFetchExecutable ActionKind = "fetch-executable"
	// ActionBuildExternal configures and builds an external project from its source tree.
	ActionBuildExternal ActionKind = "build-external"
	// ActionCompile invokes a compiler on local sources against installed headers.
	ActionCompile ActionKind = "compile"
	// ActionInstallDeps invokes a language-level dependency installer.
	ActionInstallDeps ActionKind = "install-deps"
	// ActionDecompress decompresses a single file in place.
	ActionDecompress ActionKind = "decompress"
	// ActionDecompressDir is a fan-out rule: decompress every matching file under a directory.
	// It expands into one ActionDecompress target per discovered file at walk time.
	ActionDecompressDir ActionKind = "decompress-dir"
)

// Action is a tagged variant: Kind selects the operation, the remaining
// fields carry the parameters for that kind. Unused fields stay empty.
type Action struct {
	Kind ActionKind

	// fetch-archive / fetch-executable
	URL      string
	DestDir  string
	DestPath string

	// build-external: configure step in BuildDir, then build+install into InstallDir.
	SourceDir  string
	BuildDir   string
	InstallDir string

	// compile
	Sources     []string
	OutputPath  string
	IncludeDirs []string
	Compiler    string

	// install-deps
	ManifestDir string
	Tool        string

	// decompress / decompress-dir
	Path   string
	Dir    string
	Suffix string
}

// Probe is an existence check for targets whose action has side effects but
// no natural output path. The target counts as satisfied when Path exists
// and is not older than NewerThan.
type Probe struct {
	Path      string
	NewerThan string
}

// Target represents one build goal in the dependency graph. Satisfaction is
// never stored: it is rederived from the filesystem on every run.
type Target struct {
	Name          InternedString
	Outputs       []InternedString
	Prerequisites []InternedString
	Action        Action
	Probe         *Probe
}

// OutputPaths returns the declared output paths as plain strings.
func (t *Target) OutputPaths() []string {
	outs := make([]string, len(t.Outputs))
	for i, o := range t.Outputs {
		outs[i] = o.String()
	}
	return outs
}

// IsFanOut reports whether the target is a fan-out rule that must be
// expanded into per-file targets at walk time.
func (t *Target) IsFanOut() bool {
	return t.Action.Kind == ActionDecompressDir
}
