package ai

import (
	"fmt"
	"hash/fnv"

	"character-chat-demo/backend/internal/models"
)

// Placeholder image dimensions.
const (
	imageWidth  = 768
	imageHeight = 512
	seedRange   = 1000
)

// ImageDescription composes the string the image seed is derived from. The
// character's stored traits and the prompt fully determine it, so repeating
// a (character, prompt) pair yields the same placeholder.
func ImageDescription(character *models.Character, prompt string) string {
	appearance := ""
	if character.Appearance != nil {
		appearance = *character.Appearance
	}
	location := ""
	if character.Location != nil {
		location = *character.Location
	}
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		character.Name, character.Personality, appearance, location, prompt)
}

// ImageSeed maps a description to a bounded seed. FNV-1a is stable across
// runs; the exact hash is not a compatibility surface.
func ImageSeed(description string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(description))
	return h.Sum32() % seedRange
}

// PlaceholderImageURL returns the stock-image URL for a description.
func PlaceholderImageURL(description string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d",
		ImageSeed(description), imageWidth, imageHeight)
}
