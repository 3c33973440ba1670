package wellbeing

// InsightKind identifies which narrative was chosen
type InsightKind string

const (
	InsightTaskMoodPositive InsightKind = "task_mood_positive"
	InsightTaskMoodNegative InsightKind = "task_mood_negative"
	InsightInsufficientData InsightKind = "insufficient_data"
)

const (
	positiveMessage = "There appears to be a positive correlation between task completion and improved mood. " +
		"Consider setting daily wellness tasks to help maintain a positive mindset."
	negativeMessage = "On days when you complete fewer tasks, your mood tends to be lower. " +
		"Consider breaking larger tasks into smaller, more manageable steps."
	insufficientMessage = "We're still gathering data to identify strong patterns between your mood and task completion. " +
		"Continue tracking to unlock more personalized insights."
)

// Insight is the single narrative shown alongside the correlation table
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Message string      `json:"message"`
}

// Narrate reduces the full, untruncated set of classified rows to one
// insight. A strong positive day anywhere wins over a negative day.
func Narrate(rows []CorrelationRow) Insight {
	negative := false
	for _, r := range rows {
		switch r.Tier {
		case TierStrongPositive:
			return NewInsight(InsightTaskMoodPositive)
		case TierNegative:
			negative = true
		}
	}
	if negative {
		return NewInsight(InsightTaskMoodNegative)
	}
	return NewInsight(InsightInsufficientData)
}

// NewInsight returns the fixed message for kind
func NewInsight(kind InsightKind) Insight {
	switch kind {
	case InsightTaskMoodPositive:
		return Insight{Kind: kind, Message: positiveMessage}
	case InsightTaskMoodNegative:
		return Insight{Kind: kind, Message: negativeMessage}
	default:
		return Insight{Kind: InsightInsufficientData, Message: insufficientMessage}
	}
}
