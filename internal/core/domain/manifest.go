package domain

// Stage names are fixed; the manifest configures them, it cannot rename them.
const (
	StageEnv       = "env"
	StageBundle    = "bundle"
	StageInstaller = "installer"
)

// Manifest is the validated build configuration loaded from the project
// manifest file. The file doubles as the project root marker.
type Manifest struct {
	App       AppIdentity
	Env       EnvSpec
	Bundle    BundleSpec
	Installer InstallerSpec
}

// AppIdentity identifies the packaged application. All fields feed the
// installer descriptor as preprocessor defines.
type AppIdentity struct {
	// ID is the installer's globally-unique application identifier.
	ID        string
	Name      string
	Version   string
	Publisher string
}

// EnvSpec configures the environment preparation stage.
type EnvSpec struct {
	// Interpreter is the base interpreter used to create the environment.
	Interpreter string

	// Dir is the environment directory, relative to the project root.
	Dir string

	// Requirements is the dependency lock file, relative to the root.
	Requirements string

	// Browsers lists the headless browser engines to install.
	Browsers []string

	// BrowsersPath is the placement value handed to the browser installer.
	// The default "0" directs it to install inside the automation library's
	// own package tree, which is what makes the binaries bundleable.
	BrowsersPath string
}

// BundleSpec configures the executable assembly stage.
type BundleSpec struct {
	// Entry is the application entry-point script, relative to the root.
	Entry string

	// DistDir is the directory the onedir bundle is written to.
	DistDir string

	// Windowed suppresses the console window of the bundled executable.
	Windowed bool

	// CollectAll names dependencies whose data files, binaries, and
	// submodules are gathered wholesale into the bundle.
	CollectAll []string

	// HiddenImportsFrom names dependencies whose importable submodules are
	// enumerated defensively because they import conditionally at runtime,
	// which static analysis cannot see.
	HiddenImportsFrom []string

	// Inputs are extra hashed inputs (source globs) beyond the entry script.
	Inputs []string
}

// InstallerSpec configures the installer compilation stage.
type InstallerSpec struct {
	// Script is the installer descriptor file, relative to the root.
	Script string

	// OutputDir is where the compiled installer is written.
	OutputDir string

	// BaseName is the installer's base filename (no extension). Rebuilds
	// overwrite the artifact; names are never versioned.
	BaseName string

	// Compiler is the installer compiler executable. Defaults to "iscc".
	Compiler string
}

// BundleDir returns the directory the assembled bundle lives in,
// relative to the project root.
func (m *Manifest) BundleDir() string {
	return m.Bundle.DistDir + "/" + m.App.Name
}

// InstallerPath returns the fixed path of the compiled installer,
// relative to the project root.
func (m *Manifest) InstallerPath() string {
	return m.Installer.OutputDir + "/" + m.Installer.BaseName + ".exe"
}
