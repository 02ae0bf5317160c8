package companion

import (
	"strings"
	"text/template"
)

const suggestionPrompt = `You are a supportive AI companion. Based on the user's mood and journal entry, provide a list of exactly 3 personalized, realistic, and actionable self-care suggestions.

Each suggestion should have a short, catchy title and a clear, concise description.

Your suggestions should be creative and diverse. Mix and match from the following categories:
- A simple mindfulness or breathing exercise.
- A creative prompt (e.g., "doodle a place that feels safe," "write a short poem about the color blue").
- A light physical activity (e.g., "do 5 minutes of gentle stretching," "walk around your block and notice three new things").
- A small, comforting activity (e.g., "make a warm cup of tea and savor it," "listen to one favorite song without distractions").

Make the suggestions specific and easy to start right away.

Mood Data: {{.MoodData}}`

const chatPrompt = `You are a mental health support chatbot providing empathetic, non-clinical responses to students.

Respond to the user message, considering the chat history to maintain context. Be supportive and understanding.

Chat History:
{{- range .History}}
{{- if .IsUser}}
User: {{.Content}}
{{- end}}
{{- if .IsBot}}
Bot: {{.Content}}
{{- end}}
{{- end}}

User Message: {{.Message}}

Bot:`

// SuggestionJSONHint describes the output for backends without native
// schema support.
const SuggestionJSONHint = `Return ONLY a JSON object with this structure, no other text:
{"suggestions": [{"title": "short title", "description": "one or two sentences"}]}`

// ChatJSONHint describes the chat output for backends without native schema
// support.
const ChatJSONHint = `Return ONLY a JSON object with this structure, no other text:
{"response": "your reply"}`

var (
	suggestionTmpl = template.Must(template.New("suggestions").Parse(suggestionPrompt))
	chatTmpl       = template.Must(template.New("chat").Parse(chatPrompt))
)

// RenderSuggestionPrompt fills the suggestion prompt.
func RenderSuggestionPrompt(in SuggestionInput) (string, error) {
	var sb strings.Builder
	if err := suggestionTmpl.Execute(&sb, in); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderChatPrompt fills the chat prompt, walking the decorated history.
func RenderChatPrompt(in ChatInput) (string, error) {
	data := struct {
		Message string
		History []DecoratedTurn
	}{
		Message: in.Message,
		History: DecorateHistory(in.History),
	}
	var sb strings.Builder
	if err := chatTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// StripFences removes a surrounding markdown code block from model output.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
