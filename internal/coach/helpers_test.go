package coach

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/llm"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	pillars  *repository.SQLitePillarRepo
	areas    *repository.SQLiteAreaRepo
	projects *repository.SQLiteProjectRepo
	tasks    *repository.SQLiteTaskRepo
	journal  *repository.SQLiteJournalRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		pillars:  repository.NewSQLitePillarRepo(database),
		areas:    repository.NewSQLiteAreaRepo(database),
		projects: repository.NewSQLiteProjectRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		journal:  repository.NewSQLiteJournalRepo(database),
	}
}

func (e *testEnv) seedHierarchy(t *testing.T) (*domain.Pillar, *domain.Area, *domain.Project) {
	t.Helper()
	ctx := context.Background()

	pillar := testutil.NewTestPillar("Health", testutil.WithTimeAllocation(40))
	require.NoError(t, e.pillars.Create(ctx, pillar))

	area := testutil.NewTestArea("Fitness", testutil.WithPillar(pillar.ID), testutil.WithImportance(5))
	require.NoError(t, e.areas.Create(ctx, area))

	project := testutil.NewTestProject(area.ID, "Marathon",
		testutil.WithProjectPriority(domain.PriorityHigh),
		testutil.WithProjectImportance(4))
	require.NoError(t, e.projects.Create(ctx, project))

	return pillar, area, project
}

func (e *testEnv) addTask(t *testing.T, projectID, name string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, name, opts...)
	require.NoError(t, e.tasks.Create(context.Background(), task))
	return task
}

// stubQuota lets tests control the quota outcome without a profile table.
type stubQuota struct {
	err      error
	consumed []domain.AIFeature
}

func (s *stubQuota) Status(context.Context) (*contract.QuotaStatus, error) {
	return &contract.QuotaStatus{}, nil
}

func (s *stubQuota) Consume(_ context.Context, feature domain.AIFeature) error {
	if s.err != nil {
		return s.err
	}
	s.consumed = append(s.consumed, feature)
	return nil
}

// fakeOllama runs an httptest server that answers every generate call with
// the given text.
func fakeOllama(t *testing.T, response string) llm.LLMClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3.2",
			"response": response,
		})
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, nil)
}

// deadOllama returns a client whose server is already gone.
func deadOllama(t *testing.T) llm.LLMClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, nil)
}

func dueIn(d time.Duration) time.Time {
	return time.Now().UTC().Add(d)
}
