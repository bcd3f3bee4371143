package translate

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const systemPrompt = "You are a translation engine. Translate the user's text into the requested language. " +
	"Respond with only the translated text, without quotes, notes or explanations. " +
	"Preserve line breaks."

// languageName renders a code like "hi" as "Hindi (hi)" for LLM prompts
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

func userPrompt(text, targetLanguage string) string {
	return fmt.Sprintf("Target language: %s\n\n%s", languageName(targetLanguage), text)
}

func cleanCompletion(s string) string {
	return strings.TrimSpace(s)
}
