package scoring

import (
	_ "embed"
	"strings"
)

const (
	requirementsSystem = "You are a helpful assistant."
	scoringSystem      = "You are a resume scoring expert."
)

var (
	//go:embed prompts/requirements.md
	requirementsTemplate string

	//go:embed prompts/score.md
	scoreTemplate string
)

// fillTemplate substitutes every {{KEY}} marker in one pass, so values that
// themselves contain markers are left as they are.
func fillTemplate(template string, values map[string]string) string {
	pairs := make([]string, 0, 2*len(values))
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func buildRequirementsPrompt(jobTitle string) string {
	return fillTemplate(requirementsTemplate, map[string]string{
		"JOB_TITLE": jobTitle,
	})
}

func buildScorePrompt(in Input) string {
	weights := in.Weights
	if strings.TrimSpace(weights) == "" {
		weights = "{}"
	}
	return fillTemplate(scoreTemplate, map[string]string{
		"JOB_TITLE":    in.JobTitle,
		"REQUIREMENTS": in.Requirements,
		"WEIGHTS":      weights,
		"RESUME_TEXT":  in.ResumeText,
	})
}
