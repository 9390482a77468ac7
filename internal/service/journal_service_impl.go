package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/google/uuid"
)

type journalService struct {
	entries repository.JournalRepo
}

func NewJournalService(entries repository.JournalRepo) JournalService {
	return &journalService{entries: entries}
}

func (s *journalService) Create(ctx context.Context, e *domain.JournalEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Content == "" {
		return fmt.Errorf("journal entry content is required")
	}
	if e.Mood != "" && !domain.ValidMoods[string(e.Mood)] {
		return fmt.Errorf("unknown mood %q", e.Mood)
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.entries.Create(ctx, e)
}

func (s *journalService) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *journalService) List(ctx context.Context, limit int, includeDeleted bool) ([]*domain.JournalEntry, error) {
	return s.entries.List(ctx, limit, includeDeleted)
}

func (s *journalService) Update(ctx context.Context, e *domain.JournalEntry) error {
	if e.Mood != "" && !domain.ValidMoods[string(e.Mood)] {
		return fmt.Errorf("unknown mood %q", e.Mood)
	}
	e.UpdatedAt = time.Now().UTC()
	return s.entries.Update(ctx, e)
}

func (s *journalService) Delete(ctx context.Context, id string) error {
	return s.entries.SoftDelete(ctx, id)
}

// Trends aggregates sentiment per day over the trailing window and derives
// the wellness score and journaling streak. Days are bucketed in now's
// location, so a configured timezone shifts the day boundaries with it.
func (s *journalService) Trends(ctx context.Context, days int, now time.Time) (*contract.SentimentTrends, error) {
	if days <= 0 {
		days = 30
	}
	loc := now.Location()
	since := now.AddDate(0, 0, -days)
	entries, err := s.entries.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   float64
		count int
	}
	byDay := make(map[time.Time]*bucket)
	entryDays := make(map[time.Time]bool)
	var analyzed int
	var total float64

	for _, e := range entries {
		day := dayOf(e.CreatedAt, loc)
		entryDays[day] = true
		if e.Sentiment == nil {
			continue
		}
		analyzed++
		total += e.Sentiment.Score
		b := byDay[day]
		if b == nil {
			b = &bucket{}
			byDay[day] = b
		}
		b.sum += e.Sentiment.Score
		b.count++
	}

	trends := &contract.SentimentTrends{
		Analyzed: analyzed,
		Total:    len(entries),
	}
	for day, b := range byDay {
		trends.Points = append(trends.Points, contract.SentimentTrendPoint{
			Day:      day,
			AvgScore: b.sum / float64(b.count),
			Entries:  b.count,
		})
	}
	sort.Slice(trends.Points, func(i, j int) bool {
		return trends.Points[i].Day.Before(trends.Points[j].Day)
	})

	// Mean score -1..1 maps linearly onto 0-100.
	if analyzed > 0 {
		mean := total / float64(analyzed)
		trends.WellnessScore = (mean + 1) / 2 * 100
	}

	trends.StreakDays = streak(entryDays, dayOf(now, loc))
	return trends, nil
}

// dayOf returns midnight of t's calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// streak counts consecutive journaling days ending today, or yesterday if
// today has no entry yet.
func streak(days map[time.Time]bool, today time.Time) int {
	start := today
	if !days[start] {
		start = start.AddDate(0, 0, -1)
	}
	var n int
	for d := start; days[d]; d = d.AddDate(0, 0, -1) {
		n++
	}
	return n
}
