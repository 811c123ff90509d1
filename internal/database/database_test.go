package database

import (
	"context"
	"testing"
	"time"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Connect(config.DBConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitializeSchema(context.Background(), db))
	return db
}

func newQuestion(category, province string) models.Question {
	return models.Question{
		Category:      category,
		Question:      "What is the capital of Canada?",
		Options:       models.OptionList{"Toronto", "Ottawa", "Montreal", "Vancouver"},
		CorrectAnswer: 1,
		Province:      province,
	}
}

func createUser(t *testing.T, db *sqlx.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func TestInitializeSchema_Idempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, InitializeSchema(ctx, db))

	tables, err := Tables(ctx, db)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"questions", "test_results", "user_progress", "users"}, tables)
}

func TestResetSchema_DropsData(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	q := newQuestion(models.CategoryHistory, "")
	require.NoError(t, repo.Create(ctx, &q))

	require.NoError(t, ResetSchema(ctx, db))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostgresDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		ssl     bool
		want    string
		wantErr bool
	}{
		{name: "empty", raw: "", wantErr: true},
		{name: "url without sslmode", raw: "postgres://u:p@host:5432/db", ssl: true, want: "postgres://u:p@host:5432/db?sslmode=require"},
		{name: "url keeps sslmode", raw: "postgres://u:p@host/db?sslmode=verify-full", ssl: true, want: "postgres://u:p@host/db?sslmode=verify-full"},
		{name: "key value", raw: "host=localhost dbname=test", want: "host=localhost dbname=test sslmode=disable"},
		{name: "key value keeps sslmode", raw: "host=localhost sslmode=require", want: "host=localhost sslmode=require"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := postgresDSN(tt.raw, tt.ssl)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Connect(config.DBConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestUserRepository(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	name := "Jane"
	user := &models.User{Email: "jane@example.com", PasswordHash: "hash", Name: &name}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Jane", *got.Name)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)

	exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	dup := &models.User{Email: "jane@example.com", PasswordHash: "other"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicate)
}

func TestQuestionRepository_RandomFilters(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	fixtures := []models.Question{
		newQuestion(models.CategoryHistory, ""),
		newQuestion(models.CategoryHistory, "ab"),
		newQuestion(models.CategoryHistory, "on"),
		newQuestion(models.CategoryGovernment, ""),
		newQuestion(models.CategoryGeography, "ab"),
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(ctx, &fixtures[i]))
	}

	tests := []struct {
		name   string
		filter QuestionFilter
		want   int
	}{
		{name: "everything", filter: QuestionFilter{Limit: 50}, want: 5},
		{name: "full means every category", filter: QuestionFilter{Category: models.CategoryFull, Limit: 50}, want: 5},
		{name: "category", filter: QuestionFilter{Category: models.CategoryHistory, Limit: 50}, want: 3},
		{name: "province includes all", filter: QuestionFilter{Province: "ab", Limit: 50}, want: 4},
		{name: "category and province", filter: QuestionFilter{Category: models.CategoryHistory, Province: "ab", Limit: 50}, want: 2},
		{name: "limit", filter: QuestionFilter{Limit: 2}, want: 2},
		{name: "unknown category", filter: QuestionFilter{Category: "sports", Limit: 50}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Random(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestQuestionRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	explanation := "Ottawa became the capital in 1857."
	q := newQuestion(models.CategoryGeography, "")
	q.Explanation = &explanation
	require.NoError(t, repo.Create(ctx, &q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Options, got.Options)
	assert.Equal(t, 1, got.CorrectAnswer)
	assert.Equal(t, "medium", got.Difficulty)
	assert.Equal(t, models.ProvinceAll, got.Province)
	assert.Equal(t, explanation, got.ExplanationText())

	_, err = repo.GetByID(ctx, q.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	counts, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{models.CategoryGeography: 1}, counts)
}

func TestQuestionRepository_LegacyOptions(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO questions (category, question, options, correct_answer)
		VALUES ('history', 'Who?', 'A • B • C • D', 2)`)
	require.NoError(t, err)

	got, err := NewQuestionRepository(db).Sample(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.OptionList{"A", "B", "C", "D"}, got[0].Options)
}

func TestQuestionStore_ReplaceAll(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	store := NewQuestionStore(db)

	old := newQuestion(models.CategoryRights, "")
	require.NoError(t, store.Create(ctx, &old))

	inserted, err := store.ReplaceAll(ctx, []models.Question{
		newQuestion(models.CategoryHistory, ""),
		newQuestion(models.CategoryGovernment, ""),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.CategoryHistory, all[0].Category)
}

func TestResultStore_SaveAccumulatesProgress(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	store := NewResultStore(db)
	user := createUser(t, db, "student@example.com")

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	r1 := &models.TestResult{UserID: user.ID, Category: models.CategoryHistory, Score: 80, TotalQuestions: 10, CorrectAnswers: 8, CompletedAt: first}
	r2 := &models.TestResult{UserID: user.ID, Category: models.CategoryHistory, Score: 60, TotalQuestions: 5, CorrectAnswers: 3, CompletedAt: second}
	require.NoError(t, store.Save(ctx, r1))
	require.NoError(t, store.Save(ctx, r2))
	assert.NotZero(t, r1.ID)
	assert.NotEqual(t, r1.ID, r2.ID)

	progress, err := store.Progress(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 15, progress[0].QuestionsAttempted)
	assert.Equal(t, 11, progress[0].QuestionsCorrect)
	require.NotNil(t, progress[0].LastAttempted)
	assert.True(t, second.Equal(*progress[0].LastAttempted))

	results, err := store.ListByUser(ctx, user.ID, "", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, r2.ID, results[0].ID)

	limited, err := store.ListByUser(ctx, user.ID, models.CategoryGovernment, 10)
	require.NoError(t, err)
	assert.Empty(t, limited)

	stats, err := store.Stats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTests)
	assert.InDelta(t, 70, stats.AverageScore, 0.001)
	assert.Equal(t, 15, stats.TotalQuestions)
	assert.Equal(t, 11, stats.TotalCorrect)
}

func TestResultStore_SaveRollsBackOnUnknownUser(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	store := NewResultStore(db)

	err := store.Save(ctx, &models.TestResult{UserID: 999, Category: models.CategoryRights, Score: 50, TotalQuestions: 2, CorrectAnswers: 1})
	require.Error(t, err)

	count, err := store.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTestResultRepository_StatsEmpty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	stats, err := NewTestResultRepository(db).Stats(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.ResultStats{}, stats)
}

func TestMaintenance(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	m := NewMaintenance(db)

	assert.Equal(t, "SQLite", m.DatabaseType())
	require.NoError(t, m.Ping(ctx))

	createUser(t, db, "reset@example.com")
	require.NoError(t, m.Reset(ctx))

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "reset@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	tables, err := m.Tables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, 4)
}
