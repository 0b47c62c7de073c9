package manifest

// Source kinds accepted in Config.Source.
const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// Config holds configuration for where the desired labels are read from.
type Config struct {
	// Source selects the manifest location: "file" or "storage".
	Source string `mapstructure:"source" default:"file"`
	// Path is the manifest file. Relative paths resolve against the workspace.
	Path string `mapstructure:"path" default:".github/labels.json"`
	// Object is the object name inside the storage bucket when Source is "storage".
	Object string `mapstructure:"object" default:"labels.json"`
}

// IsValidSource checks if the configured source is known.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}
