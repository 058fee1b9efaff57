package manifest

// File mirrors the YAML structure of apbuild.yaml.
type File struct {
	Version   string       `yaml:"version"`
	App       AppDTO       `yaml:"app"`
	Env       EnvDTO       `yaml:"env"`
	Bundle    BundleDTO    `yaml:"bundle"`
	Installer InstallerDTO `yaml:"installer"`
}

// AppDTO identifies the packaged application.
type AppDTO struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Publisher string `yaml:"publisher"`
}

// EnvDTO configures the environment preparation stage.
type EnvDTO struct {
	Interpreter  string   `yaml:"interpreter"`
	Dir          string   `yaml:"dir"`
	Requirements string   `yaml:"requirements"`
	Browsers     []string `yaml:"browsers"`
	BrowsersPath string   `yaml:"browsersPath"`
}

// BundleDTO configures the executable assembly stage.
type BundleDTO struct {
	Entry             string   `yaml:"entry"`
	DistDir           string   `yaml:"distDir"`
	Windowed          *bool    `yaml:"windowed"`
	CollectAll        []string `yaml:"collectAll"`
	HiddenImportsFrom []string `yaml:"hiddenImportsFrom"`
	Inputs            []string `yaml:"inputs"`
}

// InstallerDTO configures the installer compilation stage.
type InstallerDTO struct {
	Script    string `yaml:"script"`
	OutputDir string `yaml:"outputDir"`
	BaseName  string `yaml:"baseName"`
	Compiler  string `yaml:"compiler"`
}
