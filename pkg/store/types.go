package store

// DocResult is one row of a documentation full-text search: an immutable
// projection of the docs index, never written back.
type DocResult struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Snippet  string `json:"snippet"`
	Category string `json:"category,omitempty"`
}

// IconRow is one row of an icon full-text search. Several rows may describe
// the same icon at different sizes; grouping happens in the search executor.
type IconRow struct {
	Name     string   `json:"name"`
	BaseName string   `json:"baseName"`
	Type     string   `json:"type"`
	Size     int      `json:"size"`
	ViewBox  string   `json:"viewBox"`
	Paths    []string `json:"paths"`
}

// Prop describes one property of a component.
type Prop struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Required      bool     `json:"required"`
	Default       string   `json:"default,omitempty"`
	Description   string   `json:"description,omitempty"`
	AllowedValues []string `json:"allowed_values,omitempty"`
}

// Component is a design-system component with its prop schema.
type Component struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tag         string `json:"tag,omitempty"`
	ImportPath  string `json:"import_path,omitempty"`
	Props       []Prop `json:"props"`
}

// Utility is a single CSS utility class.
type Utility struct {
	ClassName string `json:"class_name"`
	Property  string `json:"property"`
	Value     string `json:"value"`
}

// DocRecord is a documentation page as collected by the build pass.
type DocRecord struct {
	Title    string
	Path     string
	Category string
	Body     string
}
