// Package selfhelp holds the self-assessment quiz bank and scores
// submitted answers into a written report.
package selfhelp

// Option is one Likert choice. Every question uses the same four.
type Option struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Options     []Option   `json:"options"`
}

// MaxOptionScore is the top Likert score ("Nearly every day").
const MaxOptionScore = 3

var likertOptions = []Option{
	{Score: 0, Text: "Not at all"},
	{Score: 1, Text: "Several days"},
	{Score: 2, Text: "More than half the days"},
	{Score: 3, Text: "Nearly every day"},
}

var quizzes = []Quiz{
	{
		ID:          "anxiety",
		Title:       "Anxiety",
		Description: "Understand and manage feelings of worry and unease.",
		Questions: []Question{
			{ID: 1, Text: "Feeling nervous, anxious, or on edge?"},
			{ID: 2, Text: "Not being able to stop or control worrying?"},
			{ID: 3, Text: "Worrying too much about different things?"},
			{ID: 4, Text: "Trouble relaxing?"},
			{ID: 5, Text: "Being so restless that it is hard to sit still?"},
		},
	},
	{
		ID:          "depression",
		Title:       "Depression",
		Description: "Assess feelings of sadness and loss of interest in activities.",
		Questions: []Question{
			{ID: 1, Text: "Little interest or pleasure in doing things?"},
			{ID: 2, Text: "Feeling down, depressed, or hopeless?"},
			{ID: 3, Text: "Trouble falling or staying asleep, or sleeping too much?"},
			{ID: 4, Text: "Feeling tired or having little energy?"},
			{ID: 5, Text: "Poor appetite or overeating?"},
		},
	},
	{
		ID:          "burnout",
		Title:       "Burnout",
		Description: "Evaluate feelings of exhaustion and work-related stress.",
		Questions: []Question{
			{ID: 1, Text: "Feeling exhausted and drained?"},
			{ID: 2, Text: "Feeling cynical or detached from your work?"},
			{ID: 3, Text: "Having difficulty concentrating at work?"},
			{ID: 4, Text: "Feeling like you have little control over your work?"},
			{ID: 5, Text: "Feeling less effective and productive?"},
		},
	},
	{
		ID:          "stress",
		Title:       "Stress",
		Description: "Get an understanding of your current stress levels.",
		Questions: []Question{
			{ID: 1, Text: "Feeling overwhelmed by your responsibilities?"},
			{ID: 2, Text: "Having difficulty sleeping due to worries?"},
			{ID: 3, Text: "Experiencing physical symptoms of stress (e.g., headaches, muscle tension)?"},
			{ID: 4, Text: "Finding it hard to relax or calm down?"},
			{ID: 5, Text: "Feeling irritable or easily frustrated?"},
		},
	},
	{
		ID:          "grief",
		Title:       "Grief",
		Description: "A quiz to help you navigate feelings of loss.",
		Questions: []Question{
			{ID: 1, Text: "Experiencing intense sadness or yearning for a lost loved one?"},
			{ID: 2, Text: "Feeling emotionally numb or detached?"},
			{ID: 3, Text: "Having difficulty accepting the reality of the loss?"},
			{ID: 4, Text: "Finding it difficult to function or carry on with life?"},
			{ID: 5, Text: "Feeling a sense of emptiness or loneliness?"},
		},
	},
	{
		ID:          "loneliness",
		Title:       "Loneliness",
		Description: "Explore feelings of social isolation and disconnection.",
		Questions: []Question{
			{ID: 1, Text: "Feeling isolated from others?"},
			{ID: 2, Text: "Lacking companionship or a sense of belonging?"},
			{ID: 3, Text: "Feeling like no one understands you?"},
			{ID: 4, Text: "Struggling to connect with people?"},
			{ID: 5, Text: "Having a fear of being alone?"},
		},
	},
	{
		ID:          "self-esteem",
		Title:       "Low Self-Esteem",
		Description: "Assess feelings of self-worth and confidence.",
		Questions: []Question{
			{ID: 1, Text: "Feeling worthless or a burden to others?"},
			{ID: 2, Text: "Being overly critical of yourself?"},
			{ID: 3, Text: "Feeling like you are not good enough?"},
			{ID: 4, Text: "Having difficulty accepting compliments?"},
			{ID: 5, Text: "Feeling inadequate compared to others?"},
		},
	},
	{
		ID:          "anger",
		Title:       "Anger Issues",
		Description: "A brief check-in on feelings of anger and frustration.",
		Questions: []Question{
			{ID: 1, Text: "Feeling easily irritated or quick to get angry?"},
			{ID: 2, Text: "Having outbursts of temper you later regret?"},
			{ID: 3, Text: "Feeling resentful or bitter towards others?"},
			{ID: 4, Text: "Having trouble controlling your temper?"},
			{ID: 5, Text: "Losing your temper over minor things?"},
		},
	},
	{
		ID:          "insomnia",
		Title:       "Insomnia",
		Description: "Evaluate your sleep patterns and quality.",
		Questions: []Question{
			{ID: 1, Text: "Difficulty falling asleep?"},
			{ID: 2, Text: "Waking up frequently during the night?"},
			{ID: 3, Text: "Waking up earlier than you wanted to?"},
			{ID: 4, Text: "Feeling tired or sleepy during the day?"},
			{ID: 5, Text: "Feeling dissatisfied with your sleep?"},
		},
	},
	{
		ID:          "positivity",
		Title:       "Daily Positivity",
		Description: "A check-in on your daily mood and outlook.",
		Questions: []Question{
			{ID: 1, Text: "Feeling hopeful about the future?"},
			{ID: 2, Text: "Experiencing feelings of gratitude?"},
			{ID: 3, Text: "Feeling a sense of purpose?"},
			{ID: 4, Text: "Finding joy in small things?"},
			{ID: 5, Text: "Feeling connected to your friends and family?"},
		},
	},
}

// Quizzes returns the full quiz bank with options attached.
func Quizzes() []Quiz {
	out := make([]Quiz, len(quizzes))
	for i, q := range quizzes {
		q.Options = likertOptions
		out[i] = q
	}
	return out
}

// GetQuiz looks a quiz up by its ID.
func GetQuiz(id string) (Quiz, bool) {
	for _, q := range quizzes {
		if q.ID == id {
			q.Options = likertOptions
			return q, true
		}
	}
	return Quiz{}, false
}
