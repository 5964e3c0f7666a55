package generator

import "github.com/zpeteman/content-repurposer/internal/app/model"

// languageSystemPrompts sets the writing persona per output language. The
// prompt itself is written in the target language so the model commits to it.
var languageSystemPrompts = map[string]string{
	"english":    "You are a social media content creator writing in English.",
	"spanish":    "Eres un creador de contenido para redes sociales escribiendo en español.",
	"french":     "Vous êtes un créateur de contenu pour les réseaux sociaux écrivant en français.",
	"german":     "Sie sind ein Social-Media-Content-Creator, der auf Deutsch schreibt.",
	"portuguese": "Você é um criador de conteúdo para mídias sociais escrevendo em português.",
	"italian":    "Sei un creatore di contenuti per social media che scrive in italiano.",
}

// platformPrompts holds the per-platform user prompt template. %s is replaced
// with the transcript text.
var platformPrompts = map[model.Platform]string{
	model.PlatformInstagram: `Convert the following transcription into an engaging Instagram caption.
Use relevant hashtags, keep it concise (max 2200 characters), and make it visually appealing.
Focus on creating a caption that will drive engagement and interest.

Transcription: %s`,

	model.PlatformX: `Convert the following transcription into a sharp, concise tweet for X (Twitter).
Aim for maximum impact in 280 characters. Use a punchy, direct style that captures
the essence of the content.

Transcription: %s`,

	model.PlatformLinkedIn: `Transform the transcription into a professional LinkedIn post.
Provide insights, add value, and maintain a professional tone.
Include key takeaways or professional learnings.

Transcription: %s`,

	model.PlatformFacebook: `Create a compelling Facebook post from the transcription.
Make it conversational, engaging, and shareable.
Add context and encourage interaction or discussion.

Transcription: %s`,
}

// SupportedLanguages returns the languages content can be generated in,
// in a stable order.
func SupportedLanguages() []string {
	return []string{"english", "spanish", "french", "german", "portuguese", "italian"}
}

// IsSupportedLanguage reports whether content can be generated in the given
// language. Matching is case-insensitive via normalization in the service.
func IsSupportedLanguage(language string) bool {
	_, ok := languageSystemPrompts[language]
	return ok
}
