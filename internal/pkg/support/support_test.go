package support

import (
	"slices"
	"testing"
)

func TestReplyToMatchesEmotionKeyword(t *testing.T) {
	reply := ReplyTo("I feel really SAD today")
	if reply != replies["sad"] {
		t.Errorf("ReplyTo = %q, want the sad reply", reply)
	}

	if got := ReplyTo("just checking in"); got != defaultReply {
		t.Errorf("ReplyTo = %q, want the default reply", got)
	}
}

func TestTherapyForFallsBackToNeutral(t *testing.T) {
	if got := TherapyFor("angry"); len(got) == 0 {
		t.Error("no suggestions for a known emotion")
	}

	got := TherapyFor("confused")
	want := therapySuggestions["neutral"]
	if !slices.Equal(got, want) {
		t.Errorf("TherapyFor(confused) = %v, want the neutral set", got)
	}
}

func TestPickEmotionReturnsKnownEmotion(t *testing.T) {
	for range 20 {
		if !slices.Contains(Emotions, PickEmotion()) {
			t.Fatal("PickEmotion returned an unknown emotion")
		}
	}
}
