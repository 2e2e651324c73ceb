package chatbot

import (
	"fmt"
	"strings"
)

// Profile identifies the portfolio owner in the system prompt.
type Profile struct {
	Name      string
	Email     string
	GitHub    string
	Portfolio string
	LinkedIn  string
}

// FirstName returns the first word of the owner's name.
func (p Profile) FirstName() string {
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return p.Name
}

// SystemPrompt renders the instructions sent ahead of every conversation.
func SystemPrompt(p Profile, portfolioContext string) string {
	first := p.FirstName()

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an AI assistant for %s's portfolio website. You help visitors learn about %s's background, skills, and projects.\n\n", p.Name, first)
	sb.WriteString("REAL-TIME PORTFOLIO DATA (use this as your primary source):\n")
	sb.WriteString(portfolioContext)
	sb.WriteString("\n\nContact Information:\n")
	contact := []struct{ label, value string }{
		{"Email", p.Email},
		{"GitHub", p.GitHub},
		{"Portfolio", p.Portfolio},
		{"LinkedIn", p.LinkedIn},
	}
	for _, c := range contact {
		if c.value != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", c.label, c.value)
		}
	}
	sb.WriteString("\nInstructions:\n")
	sb.WriteString("- Be friendly, professional, and concise\n")
	sb.WriteString("- Answer questions using the REAL-TIME PORTFOLIO DATA above\n")
	sb.WriteString("- Keep responses to 2-3 sentences maximum\n")
	sb.WriteString("- If asked about availability or hiring, suggest using the contact form\n")
	fmt.Fprintf(&sb, "- If you don't know something specific, suggest contacting %s directly\n", first)
	sb.WriteString("- Don't make up information - stick to the data provided\n")
	fmt.Fprintf(&sb, "\nRemember: You're here to help visitors learn about %s and encourage them to reach out!", first)
	return sb.String()
}
