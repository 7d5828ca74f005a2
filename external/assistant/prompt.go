package assistant

import (
	"fmt"
	"strings"

	"github.com/wanderhub/wanderhub-api/schema"
)

const generalTravelPrompt = `You are WanderAI, an intelligent and friendly travel guide assistant for WanderHub.

YOUR ROLE:
1. Provide helpful, practical travel tips and recommendations
2. Help users plan trips based on their interests, budget, and preferences
3. Suggest destinations, activities, and authentic experiences
4. Answer travel questions about locations, timing, packing, and logistics

GUIDELINES:
- Focus exclusively on travel, destinations, and tourism topics
- When you don't have specific information, be honest about it
- Keep responses concise (2-3 paragraphs) unless the user asks for more detail
- If asked about non-travel topics, politely redirect to travel planning`

// destinationSystemPrompt grounds the chat on the cached destination
// record so the model answers from real data instead of general
// knowledge.
func destinationSystemPrompt(d DestinationContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are WanderAI, a travel assistant for WanderHub, currently helping a user explore %q.\n\n", d.Name)
	b.WriteString("DESTINATION CONTEXT:\n")
	fmt.Fprintf(&b, "- Name: %s\n", d.Name)
	fmt.Fprintf(&b, "- Category: %s\n", d.Category)
	if d.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", d.Description)
	}
	if d.Address != "" {
		fmt.Fprintf(&b, "- Address: %s\n", d.Address)
	}
	if d.Rating != nil {
		fmt.Fprintf(&b, "- Rating: %.1f/5\n", *d.Rating)
	}
	if d.PriceLevel != nil {
		fmt.Fprintf(&b, "- Price Level: %s/4\n", strings.Repeat("$", *d.PriceLevel))
	}
	if d.Website != "" {
		fmt.Fprintf(&b, "- Website: %s\n", d.Website)
	}
	if len(d.OpeningHours) > 0 {
		b.WriteString("- Opening Hours:\n")
		for _, h := range d.OpeningHours {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
	}

	fmt.Fprintf(&b, `
RULES:
- Answer questions specifically about %s using the context above
- If the context doesn't contain the requested information, say so clearly and share what you do know
- If the user asks about a completely different location, politely redirect to %s
- Never make up facts about %s; only use the provided context
- Keep responses concise (2-3 paragraphs unless more detail is requested)`, d.Name, d.Name, d.Name)

	return b.String()
}

// conversationPrompt builds the full generation prompt from the system
// instruction and the message history. The last message must come from
// the user; only the tail of the history is kept as context.
func conversationPrompt(systemPrompt string, messages []Message) (string, error) {
	valid := make([]Message, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Content) != "" {
			valid = append(valid, m)
		}
	}
	if len(valid) == 0 {
		return "", ErrNoMessages
	}

	current := valid[len(valid)-1]
	if current.Role != "user" {
		return "", ErrLastMessageNotUser
	}
	if len(current.Content) > maxMessageLength {
		return "", ErrMessageTooLong
	}

	previous := valid[:len(valid)-1]
	if len(previous) > contextWindow-1 {
		previous = previous[len(previous)-(contextWindow-1):]
	}

	var b strings.Builder
	b.WriteString(systemPrompt)

	if len(previous) > 0 {
		b.WriteString("\n\nPrevious conversation:\n")
		for i, m := range previous {
			role := "User"
			if m.Role == "assistant" {
				role = "WanderAI"
			}
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "%s: %s", role, m.Content)
		}
	}

	fmt.Fprintf(&b, "\n\nUser: %s\n\nWanderAI:", current.Content)
	return b.String(), nil
}

// recommendationPrompt asks for a strict JSON array so the reply can be
// validated against the candidate set.
func recommendationPrompt(interests []string, budget string, location schema.Location, candidates []Candidate) string {
	var b strings.Builder

	b.WriteString("You are WanderAI, a personalized travel recommendation engine. Based on user preferences, recommend the top 5 destinations from the provided list.\n\n")
	b.WriteString("USER PREFERENCES:\n")
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(interests, ", "))
	fmt.Fprintf(&b, "- Budget: %s\n", budget)
	fmt.Fprintf(&b, "- Current Location: %f, %f\n\n", location.Latitude, location.Longitude)

	b.WriteString("AVAILABLE DESTINATIONS:\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s (%s, %.1fkm away)\n", i+1, c.Name, c.Category, c.Distance)
	}

	b.WriteString(`
INSTRUCTIONS:
1. Match the user's interests with destination categories
2. Factor in budget constraints
3. Balance proximity with relevance to interests
4. Return ONLY a JSON array with exactly 5 destination names in priority order, no explanations`)

	return b.String()
}
