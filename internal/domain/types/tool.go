package types

// ToolDescriptor is one entry of the tool catalog.
type ToolDescriptor struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Slug        string   `json:"slug" yaml:"slug"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Status      Status   `json:"status" yaml:"status"`
}

// Available reports whether the tool can be run.
func (t ToolDescriptor) Available() bool { return t.Status == StatusAvailable }

// Param describes one named argument of a runnable tool.
type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
}
