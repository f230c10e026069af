package model

// ProjectType classifies an example answer
type ProjectType string

const (
	ProjectNewFeature   ProjectType = "new-feature"
	ProjectEnhancement  ProjectType = "enhancement"
	ProjectIntegration  ProjectType = "integration"
	ProjectOptimization ProjectType = "optimization"
)

// Example is a sample answer shown alongside a question
type Example struct {
	ID          string      `json:"id" yaml:"id"`
	ProjectType ProjectType `json:"projectType" yaml:"projectType"`
	Content     string      `json:"content" yaml:"content"`
	Metrics     []string    `json:"metrics" yaml:"metrics"`
	Context     string      `json:"context" yaml:"context"`
}

// QuestionDefinition is one fixed entry of the intake catalog
type QuestionDefinition struct {
	ID              string    `json:"id" yaml:"id"`
	Order           int       `json:"order" yaml:"order"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	Placeholder     string    `json:"placeholder" yaml:"placeholder"`
	SubPrompts      []string  `json:"subPrompts" yaml:"subPrompts"`
	MinCharacters   int       `json:"minCharacters" yaml:"minCharacters"`
	RequiresMetrics bool      `json:"requiresMetrics" yaml:"requiresMetrics"`
	RequiresNumbers bool      `json:"requiresNumbers" yaml:"requiresNumbers"`
	Examples        []Example `json:"examples" yaml:"examples"`
}

// ValidationState is the derived classification of one answer
type ValidationState string

const (
	ValidationIncomplete   ValidationState = "incomplete"
	ValidationNeedsMetrics ValidationState = "needs-metrics"
	ValidationValid        ValidationState = "valid"
)
