// Package support holds the canned wellness collaborators: the chatbot
// reply table, the therapy suggestion table and the placeholder emotion
// pick. These are lookup tables by design, not an inference pipeline.
package support

import (
	"math/rand/v2"
	"strings"
)

var Emotions = []string{"happy", "sad", "angry", "anxious", "neutral"}

var replies = map[string]string{
	"happy":   "I'm glad you're feeling happy! Would you like to share what's making you feel this way?",
	"sad":     "I'm sorry to hear you're feeling sad. Would you like to talk about what's bothering you?",
	"angry":   "I understand you're feeling angry. Taking deep breaths might help calm you down. Would you like to discuss what triggered this emotion?",
	"anxious": "It sounds like you're feeling anxious. Remember to breathe deeply. Would you like some techniques to help manage anxiety?",
	"neutral": "How are you feeling today? Would you like to talk about anything specific?",
}

const defaultReply = "I'm here to support you. Can you tell me more about how you're feeling?"

var therapySuggestions = map[string][]string{
	"happy": {
		"Continue with positive activities that bring you joy.",
		"Practice gratitude journaling to maintain your positive mood.",
		"Consider sharing your positive energy through volunteer work.",
	},
	"sad": {
		"Try gentle exercise like walking or yoga.",
		"Consider cognitive behavioral therapy techniques.",
		"Make sure to connect with supportive friends or family.",
		"Practice self-compassion exercises.",
	},
	"angry": {
		"Practice deep breathing exercises for immediate relief.",
		"Try progressive muscle relaxation.",
		"Consider journaling about what triggered your anger.",
		"Physical activity can help release tension.",
	},
	"anxious": {
		"Practice the 5-4-3-2-1 grounding technique.",
		"Try guided meditation or mindfulness exercises.",
		"Progressive muscle relaxation may help reduce physical tension.",
		"Consider limiting caffeine intake which can exacerbate anxiety.",
	},
	"neutral": {
		"Practice mindfulness to become more aware of your emotions.",
		"Consider regular physical activity to promote overall well-being.",
		"Maintain social connections for emotional support.",
	},
}

// ReplyTo returns the canned reply for the first emotion keyword found in
// the input, or the default reply.
func ReplyTo(input string) string {
	lower := strings.ToLower(input)
	for _, emotion := range Emotions {
		if strings.Contains(lower, emotion) {
			return replies[emotion]
		}
	}
	return defaultReply
}

// TherapyFor returns suggestions for the given emotion, falling back to the
// neutral set for anything unrecognized.
func TherapyFor(emotion string) []string {
	if suggestions, ok := therapySuggestions[emotion]; ok {
		return suggestions
	}
	return therapySuggestions["neutral"]
}

// PickEmotion stands in for a real facial emotion classifier.
func PickEmotion() string {
	return Emotions[rand.IntN(len(Emotions))]
}
