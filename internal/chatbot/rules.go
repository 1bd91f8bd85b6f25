package chatbot

import "strings"

// CrisisLine is the hotline shown on the chat page and in crisis replies.
const CrisisLine = "1-800-MINDCARE"

// Greeting opens every conversation.
const Greeting = "Hello! I'm MindCare AI, your personal mental health companion. " +
	"I'm here to listen and provide support. How are you feeling today?"

// Disclaimer is displayed under the chat window.
const Disclaimer = "This AI assistant provides support and resources but is not a replacement " +
	"for professional medical advice. In case of emergency, please call 911 or our crisis line."

// QuickResponses are offered as one-click prompts.
var QuickResponses = []string{
	"I'm feeling anxious",
	"I'm struggling with studies",
	"I feel overwhelmed",
	"I'm having trouble sleeping",
}

// Rule maps matching input to a canned reply.
type Rule struct {
	Name  string
	Match func(lower string) bool
	Reply string
	Kind  Kind
}

// Keywords builds a matcher that fires when any keyword occurs in the lowercased input.
func Keywords(words ...string) func(string) bool {
	return func(lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

// DefaultRules are evaluated in order. The first match wins.
var DefaultRules = []Rule{
	{
		Name:  "crisis",
		Match: Keywords("suicide", "kill myself", "end my life", "hurt myself", "die", "hopeless"),
		Reply: "I'm really concerned about what you're sharing. Your life has value and there are people who want to help. " +
			"Please reach out to our 24/7 crisis line at " + CrisisLine + " or text HOME to 741741. " +
			"Would you like me to help you connect with a crisis counselor right now?",
		Kind: KindCrisis,
	},
	{
		Name:  "anxiety",
		Match: Keywords("anxious", "worried", "stress"),
		Reply: "I understand you're feeling anxious. Let's try a quick grounding technique: " +
			"Can you name 5 things you can see, 4 things you can touch, 3 things you can hear, " +
			"2 things you can smell, and 1 thing you can taste? This can help bring you back to the present moment.",
		Kind: KindSuggestion,
	},
	{
		Name:  "sadness",
		Match: Keywords("sad", "depressed", "down"),
		Reply: "I hear that you're feeling sad. Those feelings are valid and it's okay to experience them. " +
			"Sometimes when we're feeling down, small actions can help - like taking a short walk, " +
			"listening to music, or reaching out to a friend. What usually helps you feel a bit better?",
		Kind: KindSuggestion,
	},
	{
		Name:  "academic",
		Match: Keywords("exam", "study", "academic", "school"),
		Reply: "Academic pressure can be overwhelming. Remember that your worth isn't determined by grades alone. " +
			"Let's break this down - what specific aspect of your studies is causing you the most stress? " +
			"I can help you develop some coping strategies.",
		Kind: KindSuggestion,
	},
}

// FallbackReplies is the pool used when no rule matches.
var FallbackReplies = []string{
	"Thank you for sharing that with me. Your feelings are important and valid. How would you like to explore this further?",
	"I appreciate you opening up. It takes courage to talk about how we're feeling. What's been on your mind lately?",
	"That sounds challenging. Remember, you don't have to face this alone. What kind of support would be most helpful for you right now?",
	"I'm here to listen and support you. Sometimes just talking about our feelings can help us process them better. Tell me more about what you're experiencing.",
}
