package chat

import "healthmate-server/internal/models"

// SpeechEvents notifies the caller about the lifecycle of one spoken reply.
// Any of the callbacks may be nil.
type SpeechEvents struct {
	OnStart func()
	OnEnd   func()
	OnError func(err error)
}

// Speaker is the speech-output port. Implementations voice assistant replies
// in the session language; failures are reported through the events and
// never block the transcript.
type Speaker interface {
	Speak(text string, lang models.Language, events SpeechEvents)
}

// NoopSpeaker is the default Speaker for deployments without a voice
// backend. It completes every request immediately.
type NoopSpeaker struct{}

func (NoopSpeaker) Speak(_ string, _ models.Language, events SpeechEvents) {
	if events.OnStart != nil {
		events.OnStart()
	}
	if events.OnEnd != nil {
		events.OnEnd()
	}
}
