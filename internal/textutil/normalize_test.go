package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and collapses whitespace",
			input:    "Senior   Backend\tEngineer",
			expected: "senior backend engineer",
		},
		{
			name:     "strips punctuation",
			input:    "Python, Docker & Kubernetes!",
			expected: "python docker kubernetes",
		},
		{
			name:     "keeps hyphens and digits",
			input:    "CI-CD pipelines, 5+ years",
			expected: "ci-cd pipelines 5 years",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!!! ??? ...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("We are looking for a Python engineer with Docker experience")
	assert.Equal(t, []string{"python", "engineer", "docker", "experience"}, tokens)
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("the and with"))
}

func TestBigrams(t *testing.T) {
	assert.Equal(t, []string{"machine learning", "learning engineer"}, Bigrams([]string{"machine", "learning", "engineer"}))
	assert.Nil(t, Bigrams([]string{"solo"}))
	assert.Nil(t, Bigrams(nil))
}
