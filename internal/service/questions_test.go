package service

import (
	"context"
	"errors"
	"testing"

	"github.com/example/citizenprep/internal/database"
	mock_service "github.com/example/citizenprep/internal/service/mock"
	"github.com/example/citizenprep/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuestionServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockQuestionRI)) *QuestionS {
	repo := mock_service.NewMockQuestionRI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewQuestionService(repo, zap.NewNop())
}

func sampleQuestion(id int64, options ...string) models.Question {
	return models.Question{ID: id, Category: models.CategoryHistory, Question: "Q?", Options: options}
}

func TestQuestionS_Questions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   QuestionQuery
		f       func(*mock_service.MockQuestionRI)
		wantLen int
		wantErr string
	}{
		{
			name:  "province defaults to all",
			query: QuestionQuery{Limit: DefaultQuestionLimit},
			f: func(m *mock_service.MockQuestionRI) {
				m.EXPECT().Random(gomock.Any(), database.QuestionFilter{Province: models.ProvinceAll, Limit: 20}).
					Return([]models.Question{sampleQuestion(1, "a", "b", "c", "d")}, nil)
			},
			wantLen: 1,
		},
		{
			name:  "drops questions without options",
			query: QuestionQuery{Category: models.CategoryHistory, Province: "ab", Limit: 5},
			f: func(m *mock_service.MockQuestionRI) {
				m.EXPECT().Random(gomock.Any(), database.QuestionFilter{Category: models.CategoryHistory, Province: "ab", Limit: 5}).
					Return([]models.Question{sampleQuestion(1, "a", "b"), sampleQuestion(2), sampleQuestion(3, "x")}, nil)
			},
			wantLen: 2,
		},
		{
			name:    "invalid category",
			query:   QuestionQuery{Category: "sports"},
			wantErr: "Invalid category",
		},
		{
			name:    "invalid province",
			query:   QuestionQuery{Province: "xx"},
			wantErr: "Invalid province",
		},
		{
			name:    "limit too high",
			query:   QuestionQuery{Limit: 51},
			wantErr: "Limit must be between 1 and 50",
		},
		{
			name:    "zero limit",
			query:   QuestionQuery{},
			wantErr: "Limit must be between 1 and 50",
		},
		{
			name:    "negative limit",
			query:   QuestionQuery{Limit: -1},
			wantErr: "Limit must be between 1 and 50",
		},
		{
			name:  "store failure",
			query: QuestionQuery{Limit: 1},
			f: func(m *mock_service.MockQuestionRI) {
				m.EXPECT().Random(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: "db down",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newQuestionServiceMock(t, ctrl, tt.f)
			got, err := s.Questions(context.Background(), tt.query)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestQuestionS_QuestionsInvalidInputIsTyped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := newQuestionServiceMock(t, ctrl, nil)

	_, err := s.Questions(context.Background(), QuestionQuery{Category: "nope", Limit: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "Invalid category", inputErr.Msg)
}

func TestQuestionS_Question(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := newQuestionServiceMock(t, ctrl, func(m *mock_service.MockQuestionRI) {
		q := sampleQuestion(7, "a", "b", "c", "d")
		m.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&q, nil)
		m.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, database.ErrNotFound)
	})

	got, err := s.Question(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	_, err = s.Question(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionS_Categories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := newQuestionServiceMock(t, ctrl, func(m *mock_service.MockQuestionRI) {
		m.EXPECT().CountByCategory(gomock.Any()).Return(map[string]int{
			models.CategoryHistory:   4,
			models.CategoryGeography: 2,
		}, nil)
	})

	got, err := s.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(models.Categories))

	byKey := map[string]int{}
	for _, c := range got {
		byKey[c.Key] = c.Available
	}
	assert.Equal(t, 4, byKey[models.CategoryHistory])
	assert.Equal(t, 0, byKey[models.CategoryRights])
	assert.Equal(t, 6, byKey[models.CategoryFull])

	assert.Zero(t, models.Categories[0].Available, "catalogue must not be mutated")
}

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  Jane  ", want: "Jane"},
		{in: "<script>alert(1)</script>", want: "scriptalert(1)/script"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeInput(tt.in))
	}

	long := make([]rune, 1500)
	for i := range long {
		long[i] = 'é'
	}
	assert.Len(t, []rune(SanitizeInput(string(long))), 1000)
}
