package services

import (
	"fmt"
	"strings"

	"comment_monitor/models"
)

var toneDescriptions = map[models.Tone]string{
	models.ToneProfessional: "professional and insightful",
	models.ToneFriendly:     "warm and friendly",
	models.ToneCasual:       "relaxed and casual",
	models.ToneFormal:       "formal and respectful",
	models.ToneEnthusiastic: "enthusiastic and energetic",
}

var languageNames = map[string]string{
	models.LanguagePortuguese: "Brazilian Portuguese",
	models.LanguageEnglish:    "English",
}

// buildSystemPrompt turns owner settings into instructions for the model.
// The owner's own system prompt, when set, is appended verbatim.
func buildSystemPrompt(st models.OwnerSettings) string {
	var b strings.Builder
	b.WriteString("You write short comments on social media posts on behalf of a professional.\n")

	tone, ok := toneDescriptions[st.Tone]
	if !ok {
		tone = toneDescriptions[models.ToneProfessional]
	}
	lang, ok := languageNames[st.Language]
	if !ok {
		lang = languageNames[models.LanguagePortuguese]
	}
	fmt.Fprintf(&b, "Tone: %s.\n", tone)
	fmt.Fprintf(&b, "Language: %s.\n", lang)
	fmt.Fprintf(&b, "Maximum length: %d characters.\n", st.MaxLength)
	if st.UseEmojis {
		b.WriteString("You may use at most one emoji.\n")
	} else {
		b.WriteString("Do not use emojis.\n")
	}
	b.WriteString("Reply with the comment text only, no quotes, no hashtags.")

	if extra := strings.TrimSpace(st.SystemPrompt); extra != "" {
		b.WriteString("\n\n")
		b.WriteString(extra)
	}
	return b.String()
}

// buildUserPrompt asks for a comment on one post that mentions the lead term.
func buildUserPrompt(req CompositionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Author: %s (@%s on %s)\n", req.Profile.DisplayName, req.Profile.Handle, req.Profile.Platform)
	fmt.Fprintf(&b, "Post:\n%s\n", strings.TrimSpace(req.PostText))
	if len(req.MatchedTerms) > 0 {
		fmt.Fprintf(&b, "\nThe comment must mention %q. Related topics: %s.", req.MatchedTerms[0], strings.Join(req.MatchedTerms, ", "))
	}
	return b.String()
}
