package chat

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthmate-server/internal/models"
)

func TestNewSessionSeededWithGreeting(t *testing.T) {
	s := NewSession("id")

	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, models.ChatRoleAssistant, transcript[0].Role)
	assert.Equal(t, models.LanguageEnglish, s.Language())
}

func TestSendRoundTripAppendsTwoMessages(t *testing.T) {
	s := NewSession("id")
	before := len(s.Transcript())

	require.NoError(t, s.BeginSend("What is paracetamol used for?"))
	s.CompleteSend("Paracetamol relieves pain and fever.")

	transcript := s.Transcript()
	require.Len(t, transcript, before+2)
	assert.Equal(t, models.ChatRoleUser, transcript[before].Role)
	assert.Equal(t, models.ChatRoleAssistant, transcript[before+1].Role)
}

func TestSequentialSendsOnly(t *testing.T) {
	s := NewSession("id")

	require.NoError(t, s.BeginSend("first"))
	assert.ErrorIs(t, s.BeginSend("second"), ErrReplyPending)

	s.CompleteSend("reply")
	assert.NoError(t, s.BeginSend("second"))
}

func TestFailSendKeepsUserMessage(t *testing.T) {
	s := NewSession("id")
	require.NoError(t, s.BeginSend("question"))

	s.FailSend()

	transcript := s.Transcript()
	assert.Equal(t, "question", transcript[len(transcript)-1].Content)
	assert.NoError(t, s.BeginSend("retry"))
}

func TestTranscriptIsACopy(t *testing.T) {
	s := NewSession("id")
	transcript := s.Transcript()
	transcript[0].Content = "mutated"

	assert.NotEqual(t, "mutated", s.Transcript()[0].Content)
}

func TestSetLanguage(t *testing.T) {
	s := NewSession("id")

	s.SetLanguage(models.LanguageHindi)
	assert.Equal(t, models.LanguageHindi, s.Language())

	// Unknown flags are ignored.
	s.SetLanguage(models.Language("fr"))
	assert.Equal(t, models.LanguageHindi, s.Language())
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore(time.Minute)

	s := st.Create()
	got, err := st.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNoopSpeakerFiresEvents(t *testing.T) {
	var started, ended bool
	NoopSpeaker{}.Speak("hello", models.LanguageEnglish, SpeechEvents{
		OnStart: func() { started = true },
		OnEnd:   func() { ended = true },
		OnError: func(error) { t.Fatal(errors.New("unexpected error callback")) },
	})

	assert.True(t, started)
	assert.True(t, ended)
}
