package domain

// Command is a single external tool invocation performed by a stage.
type Command struct {
	// Argv is the program and its arguments. Argv[0] may be relative to
	// the project root or resolved via PATH.
	Argv []string

	// Dir is the working directory for the invocation, relative to the
	// project root. Empty means the root itself.
	Dir string

	// Env holds explicit KEY=VALUE pairs applied to this invocation only.
	// Behavior-carrying variables (such as the browser-binary placement
	// variable) are attached here rather than set on the apbuild process,
	// so the invocation is self-describing.
	Env []string
}

// Stage is one unit of the packaging pipeline.
//
// A stage is skipped when its input hash matches the recorded one and its
// outputs still verify. Outputs of a stage must exist and be non-empty
// before any dependent stage runs.
type Stage struct {
	Name      string
	DependsOn []string

	// Inputs are files, directories, or glob patterns relative to the
	// project root that feed the stage's cache key.
	Inputs []string

	// Outputs are paths relative to the project root that the stage must
	// produce. Directories count as produced when non-empty.
	Outputs []string

	Commands []Command
}
