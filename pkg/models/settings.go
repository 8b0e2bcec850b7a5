package models

// Settings represents the application configuration
type Settings struct {
	Storage  StorageSettings  `yaml:"storage"`
	UI       UISettings       `yaml:"ui"`
	Designer DesignerSettings `yaml:"designer"`
}

// StorageSettings controls where form data lives
type StorageSettings struct {
	Backend  string `yaml:"backend"`   // "json" or "sqlite"
	IDFormat string `yaml:"id_format"` // "timestamp" or "uuid"
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview"`
}

// DesignerSettings controls designer behavior
type DesignerSettings struct {
	// DragThreshold is the pointer movement (in cells) below which a
	// press-and-release is treated as a click, not a drag.
	DragThreshold int `yaml:"drag_threshold"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			Backend:  "json",
			IDFormat: "timestamp",
		},
		UI: UISettings{
			ShowPreview: true,
		},
		Designer: DesignerSettings{
			DragThreshold: 2,
		},
	}
}
