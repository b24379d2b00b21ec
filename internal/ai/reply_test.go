package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"character-chat-demo/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func testCharacter() *models.Character {
	return &models.Character{
		DocID:       "char-1",
		Name:        "Luna",
		Personality: "mysterious and witty",
	}
}

func TestGenerateReplyContainsNameAndEcho(t *testing.T) {
	reply := GenerateReply(testCharacter(), "tell me about the moon")

	assert.True(t, strings.HasPrefix(reply, "Luna:"))
	assert.Contains(t, reply, "mysterious and witty")
	assert.Contains(t, reply, "'tell me about the moon'")
}

func TestGenerateReplyTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("a", 1000)
	reply := GenerateReply(testCharacter(), long)

	assert.Contains(t, reply, "'"+strings.Repeat("a", 400)+"'")
	assert.NotContains(t, reply, strings.Repeat("a", 401))
}

func TestGenerateReplyKeepsMultibyteInputUnderLimit(t *testing.T) {
	// 200 characters but 600 bytes; the echo counts characters
	text := strings.Repeat("日", 200)
	reply := GenerateReply(testCharacter(), text)

	assert.Contains(t, reply, "'"+text+"'")
	assert.True(t, utf8.ValidString(reply))
}

func TestGenerateReplyTruncatesMultibyteInputByCharacter(t *testing.T) {
	text := strings.Repeat("日", 500)
	reply := GenerateReply(testCharacter(), text)

	assert.Contains(t, reply, "'"+strings.Repeat("日", 400)+"'")
	assert.NotContains(t, reply, strings.Repeat("日", 401))
	assert.True(t, utf8.ValidString(reply))
}

func TestGenerateReplyDeterministic(t *testing.T) {
	c := testCharacter()
	assert.Equal(t, GenerateReply(c, "hi there"), GenerateReply(c, "hi there"))
}

func TestGenerateReplyFallbacks(t *testing.T) {
	reply := GenerateReply(&models.Character{}, "hello")

	assert.True(t, strings.HasPrefix(reply, "Your character:"))
	assert.Contains(t, reply, "kind and helpful")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abcde", 2))
	assert.Equal(t, "", Truncate("", 2))

	// Counts characters, not bytes, and never splits a rune
	assert.Equal(t, "日本", Truncate("日本語", 2))
	assert.Equal(t, "日本語", Truncate("日本語", 3))
	assert.True(t, utf8.ValidString(Truncate(strings.Repeat("é", 300), 250)))
}
