package application

import (
	"fmt"

	"iri-guide/backend/internal/features/fonts/domain"
)

const fontSystemPromptTemplate = `You are an expert typography designer specializing in Google Fonts. Your task is to recommend 3 Google Fonts that work perfectly together for a design system.

Context:
- Service Type: %s
- Mood/Keyword: %s
- Platform: %s
- Design Mood: Soft(%s), Static(%s)

Requirements:
1. Heading Font: Choose a serif or display font from Google Fonts for titles and headings
2. Body Font: Choose a clean sans-serif font from Google Fonts for body text
3. Korean Font: Choose a Korean-compatible Google Font (must be actually available on Google Fonts)

IMPORTANT: Only recommend fonts that are actually available on Google Fonts.
Korean fonts available on Google Fonts include: Noto Sans KR, Noto Serif KR, Nanum Gothic, Nanum Myeongjo, Jua, Black Han Sans, Do Hyeon, Gamja Flower, Gowun Batang, Stylish, East Sea Dokdo, Hi Melody, Poor Story, Single Day, Sunflower, Yeon Sung, etc.

Return ONLY valid JSON in this exact format:
{
  "heading": "Font Name",
  "body": "Font Name",
  "korean": "Korean Font Name",
  "reasoning": "2-3 sentences in Korean explaining why these fonts work well together for this specific service type and mood"
}`

const fontUserPrompt = "Recommend the perfect font combination for this project. Return only JSON."

// BuildFontPrompt renders the system prompt for a font request.
func BuildFontPrompt(req domain.FontRequest) string {
	var mood domain.MoodVector
	if req.Mood != nil {
		mood = *req.Mood
	}
	return fmt.Sprintf(fontSystemPromptTemplate,
		req.Service,
		req.Keyword,
		req.Platform,
		mood.Soft,
		mood.Static,
	)
}
