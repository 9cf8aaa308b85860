package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when attempting to add a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingPrerequisite is returned when a target references a prerequisite that doesn't exist in the graph.
	ErrMissingPrerequisite = zerr.New("missing prerequisite")

	// ErrCycleDetected is returned when a cycle is detected in the prerequisite graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not found in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrReservedTargetName is returned when a target uses a reserved name.
	ErrReservedTargetName = zerr.New("target name 'all' is reserved")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrUnknownActionKind is returned when a manifest entry names an action kind the runner cannot dispatch.
	ErrUnknownActionKind = zerr.New("unknown action kind")

	// ErrInvalidAction is returned when an action is missing a required parameter.
	ErrInvalidAction = zerr.New("invalid action")

	// ErrActionFailed is returned when an action's underlying operation fails.
	ErrActionFailed = zerr.New("action failed")

	// ErrOutputMissing is returned when an action reports success but a declared output does not exist.
	ErrOutputMissing = zerr.New("action completed but produced no output")

	// ErrMissingTool is returned when a required external tool is absent from the environment.
	ErrMissingTool = zerr.New("required tool not found")

	// ErrFetchFailed is returned when downloading a remote artifact fails.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrExtractFailed is returned when unpacking an archive fails.
	ErrExtractFailed = zerr.New("archive extraction failed")

	// ErrDecompressFailed is returned when decompressing a file fails.
	ErrDecompressFailed = zerr.New("decompression failed")

	// ErrExpandFailed is returned when a fan-out rule cannot be expanded.
	ErrExpandFailed = zerr.New("failed to expand fan-out rule")

	// ErrBuildFailed is returned when the overall build execution fails.
	ErrBuildFailed = zerr.New("build execution failed")
)
