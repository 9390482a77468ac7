package contract

import (
	"time"

	"github.com/aurumlife/aurum/internal/scoring"
)

type TodayRequest struct {
	Now *time.Time
	// Location sets the day boundary for "due today" and the completed-today
	// stats. Nil means UTC.
	Location *time.Location
	Limit    int
	CoachTop int // how many top tasks get a coaching message
}

func NewTodayRequest() TodayRequest {
	return TodayRequest{
		Limit:    50,
		CoachTop: 3,
	}
}

// TodayTask is one ranked entry in the Today view.
type TodayTask struct {
	TaskID      string
	Name        string
	ProjectName string
	AreaName    string
	PillarName  string
	DueDate     *time.Time
	Priority    string
	Score       float64
	Reasons     []scoring.Reason
	Blocked     bool
	Coaching    string // empty unless this task made the coached top N
}

type TodayStats struct {
	TotalToday     int
	CompletedToday int
	CompletionRate float64 // 0-100
}

type TodayResponse struct {
	GeneratedAt time.Time
	Tasks       []TodayTask
	Stats       TodayStats
}
