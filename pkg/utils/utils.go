package utils

import (
	"fmt"
	"strings"
)

func GetFullName(firstName, lastName string) string {
	fullName := strings.TrimSpace(firstName + " " + lastName)
	if len([]rune(fullName)) > 10 {
		fullName = string([]rune(fullName)[:10]) + "..."
	}
	return fullName
}

// Permalink builds a t.me message link; only public chats have one.
func Permalink(chatUsername string, msgID int) string {
	if chatUsername == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s/%d", chatUsername, msgID)
}

// IsGreeting reports whether the text opens with one of the configured
// greeting words.
func IsGreeting(text string, greetings []string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, g := range greetings {
		if t == g || strings.HasPrefix(t, g+" ") || strings.HasPrefix(t, g+",") || strings.HasPrefix(t, g+"!") {
			return true
		}
	}
	return false
}

// MentionsUser reports whether the text contains @username (case-insensitive).
func MentionsUser(text, username string) bool {
	if username == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), "@"+strings.ToLower(username))
}
