// internal/model/answer_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer_Empty(t *testing.T) {
	tests := []struct {
		name   string
		answer *Answer
		empty  bool
	}{
		{
			name:   "empty text answer",
			answer: NewAnswer(1, "c1", "", ValueTypeText),
			empty:  true,
		},
		{
			name:   "non-empty text answer",
			answer: NewAnswer(1, "c1", "hello", ValueTypeText),
			empty:  false,
		},
		{
			name:   "empty options answer",
			answer: NewAnswer(1, "c1", "", ValueTypeOptions),
			empty:  true,
		},
		{
			name:   "options answer with keys but empty values",
			answer: NewAnswer(1, "c1", "a=,b=", ValueTypeOptions),
			empty:  true,
		},
		{
			name:   "options answer with one non-empty value",
			answer: NewAnswer(1, "c1", "a=,b=2", ValueTypeOptions),
			empty:  false,
		},
		{
			name:   "empty image answer",
			answer: NewAnswer(1, "c1", "", ValueTypeImage),
			empty:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.answer.Empty())
		})
	}
}

func TestAnswer_Matches(t *testing.T) {
	tests := []struct {
		name    string
		answer  *Answer
		value   string
		matches bool
	}{
		{
			name:    "options token decodes to value after equals",
			answer:  NewAnswer(1, "c1", "a=1,b=2", ValueTypeOptions),
			value:   "1",
			matches: true,
		},
		{
			name:    "options second token matches",
			answer:  NewAnswer(1, "c1", "a=1,b=2", ValueTypeOptions),
			value:   "2",
			matches: true,
		},
		{
			name:    "options key does not match as value",
			answer:  NewAnswer(1, "c1", "a=1,b=2", ValueTypeOptions),
			value:   "a",
			matches: false,
		},
		{
			name:    "bare options token matches itself",
			answer:  NewAnswer(1, "c1", "yes,no", ValueTypeOptions),
			value:   "yes",
			matches: true,
		},
		{
			name:    "text compares exactly",
			answer:  NewAnswer(1, "c1", "hello", ValueTypeText),
			value:   "hello",
			matches: true,
		},
		{
			name:    "text does not substring match",
			answer:  NewAnswer(1, "c1", "hello world", ValueTypeText),
			value:   "hello",
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.answer.Matches(tt.value))
		})
	}
}

func TestAnswer_HasOptionKey(t *testing.T) {
	ans := NewAnswer(1, "c1", "vulnerable=Vulnerable participants,deception=Deception", ValueTypeOptions)

	assert.True(t, ans.HasOptionKey("vulnerable"))
	assert.True(t, ans.HasOptionKey("deception"))
	assert.False(t, ans.HasOptionKey("unlawful"))

	bare := NewAnswer(1, "c1", "yes", ValueTypeOptions)
	assert.True(t, bare.HasOptionKey("yes"))

	text := NewAnswer(1, "c1", "yes", ValueTypeText)
	assert.False(t, text.HasOptionKey("yes"))
}

func TestStatus_Editable(t *testing.T) {
	assert.True(t, StatusDraft.Editable())
	assert.True(t, StatusReferred.Editable())

	for _, s := range []Status{StatusSubmitted, StatusResubmitted, StatusInReview, StatusReviewed, StatusApproved, StatusRejected} {
		assert.False(t, s.Editable(), "status %s must not be editable", s)
	}
}

func TestUser_Is(t *testing.T) {
	a := &User{ID: 1, Username: "alice"}
	b := &User{ID: 2, Username: "alice"}
	c := &User{ID: 3, Username: "bob"}

	assert.True(t, a.Is(b), "identity is by username, not id")
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(nil))
}
