package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionList_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  interface{}
		want OptionList
	}{
		{
			name: "json text",
			src:  `["Ottawa","Toronto","Montreal","Vancouver"]`,
			want: OptionList{"Ottawa", "Toronto", "Montreal", "Vancouver"},
		},
		{
			name: "json bytes",
			src:  []byte(`["Yes","No"]`),
			want: OptionList{"Yes", "No"},
		},
		{
			name: "bullet separated fallback",
			src:  "• Ottawa • Toronto • Montreal • Vancouver • Calgary",
			want: OptionList{"Ottawa", "Toronto", "Montreal", "Vancouver"},
		},
		{
			name: "newline separated fallback",
			src:  "Ottawa\n\nToronto\r\nMontreal",
			want: OptionList{"Ottawa", "Toronto", "Montreal"},
		},
		{
			name: "null",
			src:  nil,
			want: OptionList{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got OptionList
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionList_ScanUnsupported(t *testing.T) {
	t.Parallel()

	var got OptionList
	require.Error(t, got.Scan(42))
}

func TestOptionList_Value(t *testing.T) {
	t.Parallel()

	v, err := OptionList{"A", "B's"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["A","B's"]`, v)

	v, err = OptionList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestQuestion_CorrectOption(t *testing.T) {
	t.Parallel()

	q := Question{Options: OptionList{"1865", "1867"}, CorrectAnswer: 1}
	assert.Equal(t, "1867", q.CorrectOption())
	assert.True(t, q.IsCorrect(1))
	assert.False(t, q.IsCorrect(0))

	q.CorrectAnswer = 5
	assert.Equal(t, "", q.CorrectOption())
}

func TestScoreAndGrade(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 75, Score(15, 20))
	assert.Equal(t, 67, Score(2, 3))
	assert.Equal(t, 0, Score(3, 0))
	assert.True(t, Passed(75))
	assert.False(t, Passed(74))
	assert.Contains(t, Grade(95), "Excellent")
	assert.Contains(t, Grade(80), "passed")
	assert.Contains(t, Grade(60), "right track")
	assert.Contains(t, Grade(10), "Keep studying")
}

func TestCatalogue(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCategory("history"))
	assert.False(t, IsCategory("sports"))
	assert.True(t, IsProvince("qc"))
	assert.False(t, IsProvince("zz"))
	assert.Equal(t, "Canadian History", CategoryName("history"))
	assert.Equal(t, "unknown", CategoryName("unknown"))
}
