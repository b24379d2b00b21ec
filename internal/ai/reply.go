// Package ai holds the demo's generation logic: deterministic reply
// templating and seeded placeholder image URLs. Nothing here touches the
// store or the network.
package ai

import (
	"fmt"
	"unicode/utf8"

	"character-chat-demo/backend/internal/models"
)

// maxEchoLen bounds how many characters of the user's text are echoed into
// a reply.
const maxEchoLen = 400

// GenerateReply builds the character's reply for one chat turn. Output is a
// fixed template over the character's name, personality and a truncated echo
// of the user's text. Same inputs always produce the same reply.
func GenerateReply(character *models.Character, userText string) string {
	persona := character.Personality
	if persona == "" {
		persona = "kind and helpful"
	}
	name := character.Name
	if name == "" {
		name = "Your character"
	}
	return fmt.Sprintf(
		"%s: As a %s character, I hear you say: '%s'. "+
			"Here's my friendly response: I'm excited to chat and co-create images. "+
			"Share more about style, mood, and setting!",
		name, persona, Truncate(userText, maxEchoLen),
	)
}

// Truncate cuts s to at most n characters, never splitting a rune.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
