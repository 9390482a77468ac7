package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank returns a sort priority (lower = more urgent).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

// ActiveTaskStatuses is the set of statuses a task may carry while it still
// counts as workable for scoring and the Today view.
var ActiveTaskStatuses = map[TaskStatus]bool{
	TaskTodo:       true,
	TaskInProgress: true,
	TaskReview:     true,
}

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

type Mood string

const (
	MoodOptimistic Mood = "optimistic"
	MoodInspired   Mood = "inspired"
	MoodReflective Mood = "reflective"
	MoodChallenged Mood = "challenged"
	MoodFrustrated Mood = "frustrated"
	MoodAnxious    Mood = "anxious"
)

// ValidMoods is the canonical set of accepted journal moods.
var ValidMoods = map[string]bool{
	"optimistic": true, "inspired": true, "reflective": true,
	"challenged": true, "frustrated": true, "anxious": true,
}

type SentimentCategory string

const (
	SentimentVeryPositive SentimentCategory = "very_positive"
	SentimentPositive     SentimentCategory = "positive"
	SentimentNeutral      SentimentCategory = "neutral"
	SentimentNegative     SentimentCategory = "negative"
	SentimentVeryNegative SentimentCategory = "very_negative"
)

type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// AIFeature identifies a quota-consuming AI interaction kind.
type AIFeature string

const (
	FeatureSentimentAnalysis AIFeature = "sentiment_analysis"
	FeatureWhyStatements     AIFeature = "task_why_statements"
	FeatureTodayPriorities   AIFeature = "today_priorities"
	FeatureGoalCoaching      AIFeature = "goal_coaching"
	FeatureDecomposition     AIFeature = "project_decomposition"
	FeatureSemanticSearch    AIFeature = "semantic_search"
)

// EmbeddingDomain tags the entity kind an embedding row was built from.
type EmbeddingDomain string

const (
	DomainPillar       EmbeddingDomain = "pillar"
	DomainArea         EmbeddingDomain = "area"
	DomainProject      EmbeddingDomain = "project"
	DomainTask         EmbeddingDomain = "task"
	DomainJournalEntry EmbeddingDomain = "journal_entry"
	DomainConversation EmbeddingDomain = "conversation"
)
