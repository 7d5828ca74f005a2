package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCandidates = []Candidate{
	{Name: "Lotus Temple", Category: "temples", Distance: 8.2},
	{Name: "India Gate", Category: "attractions", Distance: 3.1},
	{Name: "Lodhi Garden", Category: "parks", Distance: 5.5},
	{Name: "Hauz Khas", Category: "attractions", Distance: 9.7},
}

func TestParseSuggestions(t *testing.T) {
	text := `Here you go: ["India Gate", "Lotus Temple", "Lodhi Garden"]`

	names, err := parseSuggestions(text, testCandidates)

	assert.NoError(t, err)
	assert.Equal(t, []string{"India Gate", "Lotus Temple", "Lodhi Garden"}, names)
}

func TestParseSuggestionsDropsUnknownNames(t *testing.T) {
	text := `["India Gate", "Atlantis", "Lotus Temple", "Lodhi Garden"]`

	names, err := parseSuggestions(text, testCandidates)

	assert.NoError(t, err)
	assert.Equal(t, []string{"India Gate", "Lotus Temple", "Lodhi Garden"}, names)
}

func TestParseSuggestionsNoArray(t *testing.T) {
	_, err := parseSuggestions("I recommend the temple.", testCandidates)
	assert.Equal(t, ErrUnparsableSuggestions, err)
}

func TestParseSuggestionsMalformedJSON(t *testing.T) {
	_, err := parseSuggestions(`[India Gate, Lotus Temple]`, testCandidates)
	assert.Equal(t, ErrUnparsableSuggestions, err)
}

func TestParseSuggestionsTooFewValid(t *testing.T) {
	_, err := parseSuggestions(`["India Gate", "Atlantis", "El Dorado"]`, testCandidates)
	assert.Equal(t, ErrInsufficientSuggestions, err)
}

func TestParseSuggestionsCapped(t *testing.T) {
	candidates := make([]Candidate, 0, 6)
	quoted := make([]string, 0, 6)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		candidates = append(candidates, Candidate{Name: name})
		quoted = append(quoted, `"`+name+`"`)
	}

	names, err := parseSuggestions("["+strings.Join(quoted, ",")+"]", candidates)

	assert.NoError(t, err)
	assert.Len(t, names, maxSuggestions)
}

func TestConversationPromptRequiresUserLast(t *testing.T) {
	_, err := conversationPrompt("system", []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})
	assert.Equal(t, ErrLastMessageNotUser, err)
}

func TestConversationPromptRejectsEmpty(t *testing.T) {
	_, err := conversationPrompt("system", []Message{{Role: "user", Content: "   "}})
	assert.Equal(t, ErrNoMessages, err)
}

func TestConversationPromptRejectsLongMessage(t *testing.T) {
	_, err := conversationPrompt("system", []Message{
		{Role: "user", Content: strings.Repeat("x", maxMessageLength+1)},
	})
	assert.Equal(t, ErrMessageTooLong, err)
}

func TestConversationPromptIncludesHistory(t *testing.T) {
	prompt, err := conversationPrompt("system", []Message{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
		{Role: "user", Content: "second question"},
	})

	assert.NoError(t, err)
	assert.Contains(t, prompt, "system")
	assert.Contains(t, prompt, "User: first question")
	assert.Contains(t, prompt, "WanderAI: first answer")
	assert.True(t, strings.HasSuffix(prompt, "User: second question\n\nWanderAI:"))
}

func TestDestinationSystemPromptMentionsContext(t *testing.T) {
	rating := 4.4
	prompt := destinationSystemPrompt(DestinationContext{
		Name:     "Lotus Temple",
		Category: "temples",
		Rating:   &rating,
	})

	assert.Contains(t, prompt, "Lotus Temple")
	assert.Contains(t, prompt, "temples")
	assert.Contains(t, prompt, "4.4/5")
}
