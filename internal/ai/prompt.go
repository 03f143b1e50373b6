package ai

import "strings"

// GenerationOptions carries the resolved prompt fragments for one generation
// attempt. It is immutable once built from the request.
type GenerationOptions struct {
	Gender           string
	SuitPrompt       string
	BackgroundPrompt string
	FramingPrompt    string
	AnglePrompt      string
	ExpressionPrompt string
	RetouchingPrompt string
	SpecialRequest   string
	AspectRatio      string
}

// BuildResumePrompt assembles the single instruction string sent to the image
// model. Same options always produce the same string. A special request is
// trimmed and appended as exactly one clause; an empty or whitespace-only
// request is omitted entirely.
func BuildResumePrompt(opts GenerationOptions) string {
	specialSection := ""
	if req := strings.TrimSpace(opts.SpecialRequest); req != "" {
		specialSection = "- **Special Retouching Request:** " + req + "\n"
	}

	var b strings.Builder
	b.WriteString("You are an expert photo editor. Transform the user's photo into a professional headshot suitable for a resume.\n\n")
	b.WriteString("**Strict Rules:**\n")
	b.WriteString("1. **Identity Preservation & Retouching:** " + opts.RetouchingPrompt + " The person's core identity MUST be preserved.\n")
	b.WriteString("2. **Facial Expression:** " + opts.ExpressionPrompt + "\n")
	b.WriteString("3. **Natural Appearance:** Avoid any excessive or unrealistic airbrushing. The final image must look natural and authentic based on the requested retouching level.\n")
	b.WriteString("4. **Focus on Clothing, Background, and Composition:** Your primary tasks are:\n")
	b.WriteString("   - Replace the existing clothing with the specified formal attire.\n")
	b.WriteString("   - Replace the background with the specified color.\n")
	b.WriteString("   - " + opts.AnglePrompt + "\n")
	b.WriteString("   - " + opts.FramingPrompt + "\n")
	b.WriteString("5. **Realistic Integration:** The new clothing must be seamlessly blended. Pay close attention to the neckline, shadows, and lighting to match the original photo.\n\n")
	b.WriteString("**User's Request:**\n")
	b.WriteString("- **Gender of Person in Photo:** " + opts.Gender + "\n")
	b.WriteString("- **Desired Attire:** " + opts.SuitPrompt + "\n")
	b.WriteString("- **Desired Background:** " + opts.BackgroundPrompt + "\n")
	b.WriteString(specialSection)
	b.WriteString("- **Final Composition:** A natural, business-style portrait with the specified framing and angle.\n\n")
	b.WriteString("Generate only the edited image. Do not output any text.")
	return b.String()
}
