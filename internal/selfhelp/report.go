package selfhelp

import (
	"fmt"
	"strings"
)

type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Report is a scored assessment. Markdown is the full rendered text the
// client displays; the other fields let callers act on the outcome.
type Report struct {
	QuizID     string   `json:"quiz_id"`
	QuizTitle  string   `json:"quiz_title"`
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Percentage int      `json:"percentage"`
	Severity   Severity `json:"severity"`
	Markdown   string   `json:"markdown"`
}

var recommendations = map[Severity][]string{
	SeverityMinimal: {
		"Continue maintaining your current healthy habits",
		"Practice regular self-care and stress management",
		"Stay connected with supportive friends and family",
		"Engage in activities you enjoy",
		"Maintain a balanced lifestyle with adequate sleep and exercise",
	},
	SeverityMild: {
		"Consider implementing stress-reduction techniques like meditation or deep breathing",
		"Establish a regular sleep schedule and exercise routine",
		"Talk to trusted friends or family members about how you're feeling",
		"Consider journaling to process your thoughts and emotions",
		"If symptoms persist, consider speaking with a counselor or therapist",
	},
	SeverityModerate: {
		"It may be helpful to speak with a mental health professional",
		"Practice mindfulness and relaxation techniques regularly",
		"Maintain social connections and don't isolate yourself",
		"Focus on basic self-care: regular meals, sleep, and gentle exercise",
		"Consider support groups or peer support networks",
		"Keep a mood diary to track patterns and triggers",
	},
	SeveritySevere: {
		"We strongly encourage you to reach out to a mental health professional",
		"Contact your primary care doctor for a referral if needed",
		"Consider calling a crisis helpline if you're in immediate distress",
		"Lean on your support system - friends, family, or support groups",
		"Focus on basic daily functioning and self-care",
		"Remember that seeking help is a sign of strength, not weakness",
	},
}

// GenerateReport scores the answers against the quiz and renders the
// report. Answers must match the question count one to one and each sit
// in [0, MaxOptionScore].
func GenerateReport(quiz Quiz, answers []int) (Report, error) {
	if len(answers) != len(quiz.Questions) {
		return Report{}, fmt.Errorf("selfhelp: quiz %q expects %d answers, got %d",
			quiz.ID, len(quiz.Questions), len(answers))
	}

	score := 0
	for i, a := range answers {
		if a < 0 || a > MaxOptionScore {
			return Report{}, fmt.Errorf("selfhelp: answer %d out of range: %d", i+1, a)
		}
		score += a
	}

	maxScore := len(quiz.Questions) * MaxOptionScore
	percentage := int(float64(score)/float64(maxScore)*100 + 0.5)

	var severity Severity
	var outlook string
	switch {
	case percentage <= 25:
		severity = SeverityMinimal
		outlook = "Your responses suggest you may be experiencing minimal symptoms related to " + strings.ToLower(quiz.Title) + "."
	case percentage <= 50:
		severity = SeverityMild
		outlook = "Your responses indicate you may be experiencing mild symptoms related to " + strings.ToLower(quiz.Title) + "."
	case percentage <= 75:
		severity = SeverityModerate
		outlook = "Your responses suggest you may be experiencing moderate symptoms related to " + strings.ToLower(quiz.Title) + "."
	default:
		severity = SeveritySevere
		outlook = "Your responses indicate you may be experiencing significant symptoms related to " + strings.ToLower(quiz.Title) + "."
	}

	return Report{
		QuizID:     quiz.ID,
		QuizTitle:  quiz.Title,
		Score:      score,
		MaxScore:   maxScore,
		Percentage: percentage,
		Severity:   severity,
		Markdown:   renderMarkdown(quiz, score, maxScore, percentage, severity, outlook),
	}, nil
}

func renderMarkdown(quiz Quiz, score, maxScore, percentage int, severity Severity, outlook string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Your %s Assessment Results\n\n", quiz.Title)
	fmt.Fprintf(&sb, "**Your Score:** %d out of %d (%d%%)\n\n", score, maxScore, percentage)

	sb.WriteString("### What This Means\n\n")
	sb.WriteString(outlook)
	sb.WriteString(" This assessment is designed to give you insight into your recent experiences, " +
		"but it's important to remember that only a qualified mental health professional can provide a proper evaluation.\n\n")

	sb.WriteString("### Recommendations for Well-being\n\n")
	for _, rec := range recommendations[severity] {
		sb.WriteString("- " + rec + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("### Important Reminders\n\n")
	sb.WriteString("- This assessment is not a diagnostic tool and cannot replace professional medical advice\n")
	sb.WriteString("- Everyone's experience is unique, and these results should be considered alongside your personal circumstances\n")
	sb.WriteString("- If you're experiencing persistent distress or thoughts of self-harm, please reach out to a mental health professional immediately\n")
	sb.WriteString("- Recovery and healing are possible with the right support and resources\n")

	return sb.String()
}
