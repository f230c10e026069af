// Package catalog holds the fixed, ordered intake question set.
package catalog

import "intakeflow/internal/model"

// Question IDs in catalog order
const (
	BusinessImpact = "q1-business-impact"
	UserValue      = "q2-user-value"
	TechnicalScope = "q3-technical-scope"
	SuccessMetrics = "q4-success-metrics"
	Dependencies   = "q5-dependencies"
	UserExperience = "q6-user-experience"
	AdoptionPlan   = "q7-adoption-plan"
)

var questions = []model.QuestionDefinition{
	{
		ID:          BusinessImpact,
		Order:       1,
		Title:       "What specific business problem are you solving?",
		Description: "Focus on measurable impact to sales platform users and the organization.",
		Placeholder: "Example: Our sales team loses 5 hours per week manually updating opportunity stages across three different systems, costing approximately $150K annually in lost productivity...",
		SubPrompts: []string{
			"What revenue impact do you expect?",
			"How will this improve productivity?",
			"What user satisfaction improvements are expected?",
		},
		MinCharacters:   150,
		RequiresMetrics: true,
		RequiresNumbers: true,
		Examples: []model.Example{
			{
				ID:          "ex1",
				ProjectType: model.ProjectNewFeature,
				Content:     "Our enterprise sales reps spend 8-10 hours weekly searching for customer data across Salesforce, internal wiki, and email archives. This creates a 15% delay in quote turnaround time, resulting in an estimated $2M in delayed revenue annually. By implementing unified customer intelligence, we expect to reduce search time by 70% and improve quote response time by 40%.",
				Metrics:     []string{"8-10 hours weekly", "15% delay", "$2M annual impact", "70% reduction", "40% improvement"},
				Context:     "Customer Intelligence Portal - Q3 2024",
			},
		},
	},
	{
		ID:          UserValue,
		Order:       2,
		Title:       "Who are the primary users and what specific benefits will they gain?",
		Description: "Describe how daily workflows and productivity will change.",
		Placeholder: "Example: Enterprise Account Executives (75 users) will be able to access complete customer context in under 30 seconds instead of 10+ minutes. This will allow them to...",
		SubPrompts: []string{
			"Which user personas are affected?",
			"What pain points are being addressed?",
			"How will workflows improve?",
		},
		MinCharacters:   150,
		RequiresMetrics: true,
		RequiresNumbers: true,
		Examples: []model.Example{
			{
				ID:          "ex2",
				ProjectType: model.ProjectEnhancement,
				Content:     "The primary users are our 150+ Mid-Market Sales Managers. Currently, they spend 4 hours every Monday compiling pipeline reports manually. The new automated dashboard will provide real-time visibility into quota attainment and deal velocity, saving each manager 3.5 hours weekly. This allows them to spend more time coaching reps, which we expect will increase team quota attainment by 10%.",
				Metrics:     []string{"150+ Managers", "4 hours", "3.5 hours weekly", "10% increase"},
				Context:     "Manager Performance Dashboard",
			},
		},
	},
	{
		ID:          TechnicalScope,
		Order:       3,
		Title:       "What are the core functional requirements?",
		Description: "Define the essential capabilities required to solve the problem.",
		Placeholder: "List the key features and functionalities...",
		SubPrompts: []string{
			`What are the "must-have" features?`,
			"Are there specific data integrations needed?",
			"What are the key user interactions?",
		},
		MinCharacters: 150,
	},
	{
		ID:          SuccessMetrics,
		Order:       4,
		Title:       "How will success be measured?",
		Description: "Define the KPIs and metrics that will track the project impact.",
		Placeholder: "Example: Target is a 20% reduction in churn rate within 6 months...",
		SubPrompts: []string{
			"What are the primary KPIs?",
			"What is the baseline today?",
			"What is the target improvement?",
		},
		MinCharacters:   100,
		RequiresMetrics: true,
		RequiresNumbers: true,
	},
	{
		ID:          Dependencies,
		Order:       5,
		Title:       "What are the key dependencies and risks?",
		Description: "Identify technical, resource, or business dependencies.",
		Placeholder: "Identify potential blockers...",
		SubPrompts: []string{
			"Technical dependencies (APIs, platforms)?",
			"Resource constraints?",
			"Major risks to timeline or adoption?",
		},
		MinCharacters: 100,
	},
	{
		ID:          UserExperience,
		Order:       6,
		Title:       "What are the key UX principles for this solution?",
		Description: "Describe the desired user journey and experience standards.",
		Placeholder: "Describe the look and feel...",
		SubPrompts: []string{
			"Key design considerations?",
			"Mobile vs. Desktop priority?",
			"Accessibility requirements?",
		},
		MinCharacters: 100,
	},
	{
		ID:          AdoptionPlan,
		Order:       7,
		Title:       "What is the rollout and adoption strategy?",
		Description: "How will you ensure users successfully transition to the new tool?",
		Placeholder: "Plan for training and communication...",
		SubPrompts: []string{
			"Phased rollout vs big bang?",
			"Training requirements?",
			"Feedback loops?",
		},
		MinCharacters: 100,
	},
}

// Questions returns a copy of the catalog in order
func Questions() []model.QuestionDefinition {
	out := make([]model.QuestionDefinition, len(questions))
	for i, q := range questions {
		out[i] = clone(q)
	}
	return out
}

// Len is the number of catalog questions
func Len() int {
	return len(questions)
}

// At returns the question at a zero-based cursor position
func At(index int) (model.QuestionDefinition, bool) {
	if index < 0 || index >= len(questions) {
		return model.QuestionDefinition{}, false
	}
	return clone(questions[index]), true
}

// ByID looks up a question by its ID
func ByID(id string) (model.QuestionDefinition, bool) {
	for _, q := range questions {
		if q.ID == id {
			return clone(q), true
		}
	}
	return model.QuestionDefinition{}, false
}

// IDs returns the question IDs in catalog order
func IDs() []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func clone(q model.QuestionDefinition) model.QuestionDefinition {
	q.SubPrompts = append([]string(nil), q.SubPrompts...)
	if q.Examples != nil {
		examples := make([]model.Example, len(q.Examples))
		for i, ex := range q.Examples {
			ex.Metrics = append([]string(nil), ex.Metrics...)
			examples[i] = ex
		}
		q.Examples = examples
	}
	return q
}
