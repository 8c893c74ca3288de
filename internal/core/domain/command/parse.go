package command

import "strings"

// ParseCommand returns the lowercased first word of the text, with any
// @botname suffix stripped so group mentions like /help@marvin still match.
func ParseCommand(text string) string {
	token := strings.ToLower(strings.Split(text, " ")[0])
	if at := strings.Index(token, "@"); at > 0 {
		token = token[:at]
	}
	return token
}

// ParseCommandArgs returns everything after the first word.
func ParseCommandArgs(text string) string {
	words := strings.Split(text, " ")
	return strings.Join(words[1:], " ")
}
