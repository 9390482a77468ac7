package service

import (
	"context"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/google/uuid"
)

type seedService struct {
	uow db.UnitOfWork
}

func NewSeedService(uow db.UnitOfWork) SeedService {
	return &seedService{uow: uow}
}

type seedPillar struct {
	name    string
	desc    string
	icon    string
	color   string
	timePct float64
	areas   []seedArea
}

type seedArea struct {
	name       string
	desc       string
	importance int
	projects   []seedProject
}

type seedProject struct {
	name       string
	desc       string
	priority   domain.Priority
	importance int
	tasks      []seedTask
}

type seedTask struct {
	name     string
	priority domain.Priority
	dueIn    int // days from now, 0 means no due date
}

var seedData = []seedPillar{
	{
		name: "Health & Wellness", desc: "Physical and mental wellbeing", icon: "💪", color: "#10B981", timePct: 30,
		areas: []seedArea{
			{
				name: "Fitness", desc: "Regular exercise and movement", importance: 5,
				projects: []seedProject{
					{
						name: "Morning Workout Routine", desc: "Build a consistent morning exercise habit",
						priority: domain.PriorityHigh, importance: 4,
						tasks: []seedTask{
							{name: "Plan weekly workout schedule", priority: domain.PriorityHigh, dueIn: 1},
							{name: "Buy resistance bands", priority: domain.PriorityLow, dueIn: 7},
							{name: "Complete first week of workouts", priority: domain.PriorityMedium, dueIn: 7},
						},
					},
				},
			},
			{
				name: "Nutrition", desc: "Mindful eating habits", importance: 4,
				projects: []seedProject{
					{
						name: "Meal Prep System", desc: "Weekly meal preparation",
						priority: domain.PriorityMedium, importance: 3,
						tasks: []seedTask{
							{name: "Research healthy recipes", priority: domain.PriorityMedium},
							{name: "Plan first week of meals", priority: domain.PriorityMedium, dueIn: 3},
						},
					},
				},
			},
		},
	},
	{
		name: "Career Growth", desc: "Professional development and work", icon: "🚀", color: "#3B82F6", timePct: 30,
		areas: []seedArea{
			{
				name: "Skill Development", desc: "Learning and upskilling", importance: 5,
				projects: []seedProject{
					{
						name: "Learn a New Framework", desc: "Structured learning path",
						priority: domain.PriorityHigh, importance: 5,
						tasks: []seedTask{
							{name: "Complete the official tutorial", priority: domain.PriorityHigh, dueIn: 5},
							{name: "Build a small demo project", priority: domain.PriorityMedium, dueIn: 14},
							{name: "Write up lessons learned", priority: domain.PriorityLow},
						},
					},
				},
			},
		},
	},
	{
		name: "Relationships", desc: "Family, friends and community", icon: "❤️", color: "#EF4444", timePct: 20,
		areas: []seedArea{
			{
				name: "Family Time", desc: "Quality time with family", importance: 5,
				projects: []seedProject{
					{
						name: "Weekly Family Activities", desc: "Regular shared activities",
						priority: domain.PriorityMedium, importance: 4,
						tasks: []seedTask{
							{name: "Plan weekend outing", priority: domain.PriorityMedium, dueIn: 4},
						},
					},
				},
			},
		},
	},
	{
		name: "Personal Development", desc: "Growth, reflection and hobbies", icon: "🌱", color: "#8B5CF6", timePct: 20,
		areas: []seedArea{
			{
				name: "Mindfulness", desc: "Reflection and journaling", importance: 3,
				projects: []seedProject{
					{
						name: "Daily Journaling Habit", desc: "Write every day",
						priority: domain.PriorityLow, importance: 3,
						tasks: []seedTask{
							{name: "Journal for seven days straight", priority: domain.PriorityLow, dueIn: 7},
						},
					},
				},
			},
		},
	},
}

var seedEntries = []struct {
	title   string
	content string
	mood    domain.Mood
}{
	{
		title:   "Getting started",
		content: "Set up my pillars today. Feeling optimistic about having everything in one place.",
		mood:    domain.MoodOptimistic,
	},
	{
		title:   "Reflection",
		content: "A challenging week at work, but the morning workouts are keeping me grounded.",
		mood:    domain.MoodReflective,
	},
}

// Seed builds the demo hierarchy transactionally. Either the whole demo
// lands or none of it does.
func (s *seedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	now := time.Now().UTC()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		pillars := repository.NewSQLitePillarRepo(tx)
		areas := repository.NewSQLiteAreaRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		entries := repository.NewSQLiteJournalRepo(tx)

		for i, sp := range seedData {
			pillar := &domain.Pillar{
				ID:                uuid.New().String(),
				Name:              sp.name,
				Description:       sp.desc,
				Icon:              sp.icon,
				Color:             sp.color,
				TimeAllocationPct: sp.timePct,
				SortOrder:         i,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := pillars.Create(ctx, pillar); err != nil {
				return err
			}
			result.Pillars++

			for _, sa := range sp.areas {
				area := &domain.Area{
					ID:          uuid.New().String(),
					PillarID:    &pillar.ID,
					Name:        sa.name,
					Description: sa.desc,
					Importance:  sa.importance,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				if err := areas.Create(ctx, area); err != nil {
					return err
				}
				result.Areas++

				for _, spr := range sa.projects {
					project := &domain.Project{
						ID:          uuid.New().String(),
						AreaID:      area.ID,
						Name:        spr.name,
						Description: spr.desc,
						Status:      domain.ProjectInProgress,
						Priority:    spr.priority,
						Importance:  spr.importance,
						CreatedAt:   now,
						UpdatedAt:   now,
					}
					if err := projects.Create(ctx, project); err != nil {
						return err
					}
					result.Projects++

					for _, st := range spr.tasks {
						task := &domain.Task{
							ID:        uuid.New().String(),
							ProjectID: project.ID,
							Name:      st.name,
							Status:    domain.TaskTodo,
							Priority:  st.priority,
							CreatedAt: now,
							UpdatedAt: now,
						}
						if st.dueIn > 0 {
							due := now.AddDate(0, 0, st.dueIn)
							task.DueDate = &due
						}
						if err := tasks.Create(ctx, task); err != nil {
							return err
						}
						result.Tasks++
					}
				}
			}
		}

		for _, se := range seedEntries {
			entry := &domain.JournalEntry{
				ID:        uuid.New().String(),
				Title:     se.title,
				Content:   se.content,
				Mood:      se.mood,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := entries.Create(ctx, entry); err != nil {
				return err
			}
			result.Entries++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
