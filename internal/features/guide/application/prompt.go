package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"iri-guide/backend/internal/features/guide/domain"
)

const guideSystemPromptTemplate = `You are a UI/UX design expert. Generate a color palette and typography guide based on the provided context.
Platform: %s
Service: %s
Mood: %s
Primary Color: %s
%s
Use the following guidelines: %s

Return a JSON object with:
- colorSystem: primary (main, light, dark) and secondary (main, light, dark)
- typography: bodySize, headlineSize, lineHeight
- accessibility: textColorOnPrimary, contrastRatio`

const guideUserPrompt = "Generate the design guide."

// PlatformGuideline returns the guideline for the platform, falling back to "web".
// An entry whose value is null, false, 0 or "" counts as absent. The result is
// compact JSON, or "null" when neither entry is usable.
func PlatformGuideline(kb domain.KnowledgeBase, platform string) string {
	raw := kb.Guidelines[strings.ToLower(platform)]
	if isEmptyGuideline(raw) {
		raw = kb.Guidelines["web"]
	}
	if isEmptyGuideline(raw) {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func isEmptyGuideline(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

// MatchColorGroup returns the first group whose keywords contain keyword.
func MatchColorGroup(kb domain.KnowledgeBase, keyword string) (domain.ColorGroup, bool) {
	return lo.Find(kb.IRIColors, func(g domain.ColorGroup) bool {
		return lo.Contains(g.Keywords, keyword)
	})
}

// BuildGuidePrompt renders the system prompt for a guide request.
func BuildGuidePrompt(dc domain.DesignContext, kb domain.KnowledgeBase) string {
	colorLines := ""
	if group, ok := MatchColorGroup(kb, dc.Keyword); ok {
		var buf bytes.Buffer
		data := string(group.Raw)
		if err := json.Compact(&buf, group.Raw); err == nil {
			data = buf.String()
		}
		colorLines = fmt.Sprintf("Color Group: %s\nColor Group Data: %s\n", group.Name, data)
	}

	return fmt.Sprintf(guideSystemPromptTemplate,
		dc.Platform,
		dc.Service,
		dc.Keyword,
		dc.PrimaryColor,
		colorLines,
		PlatformGuideline(kb, dc.Platform),
	)
}
