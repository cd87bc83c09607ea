package messaging

import (
	"fmt"
	"strings"

	"github.com/mtorelli/linknest/internal/models"
)

// System instructions sent to the generative provider for each operation.
const (
	GenerateSystemPrompt = `You are an expert networking assistant that specializes in crafting personalized, effective outreach messages.
Your task is to create a tailored networking message based on:
1. The sender's profile
2. The recipient's profile
3. The type of message (cold outreach, follow-up, informational interview)
4. The networking goal

Craft a message that is:
- Personalized with specific details about the recipient
- Authentic and conversational (not generic or salesy)
- Concise (under 150 words)
- Includes a clear reason for connecting
- Has a specific, low-friction call to action
- Is appropriately professional but friendly
- Avoids clichés and obvious flattery
- Focused more on giving value than asking for something

Return only the text of the message itself, without any explanation or commentary.`

	AnalyzeSystemPrompt = `You are an expert networking message analyst. Evaluate the provided networking outreach message based on:

1. Personalization - Does it show research and include specific details about the recipient?
2. Value proposition - Is it clear why connecting would be beneficial?
3. Authenticity - Does it sound genuine rather than generic or salesy?
4. Call to action - Is there a clear, low-friction next step?
5. Focus - Is it concise (under 150 words) and focused?
6. Tone - Is it appropriately professional but friendly?

Provide your analysis in JSON format with these fields:
- overallScore: number between 0-100
- strengths: array of strings (2-4 specific strengths)
- weaknesses: array of strings (0-3 specific weaknesses)
- suggestions: array of strings (0-3 specific improvement suggestions)
- assessment: string (1-2 sentence overall assessment)

Return ONLY the JSON object without any additional text or explanation.`

	ImproveSystemPrompt = `You are an expert networking message editor. Your task is to improve the provided networking outreach message while keeping its core intent and content.

Focus on enhancing:
1. Personalization - Add specific details about the recipient
2. Value proposition - Clarify why connecting would be beneficial
3. Authenticity - Make it sound more genuine and less generic
4. Call to action - Ensure there's a clear, low-friction next step
5. Conciseness - Keep it under 150 words and focused
6. Tone - Make it appropriately professional but friendly

Return ONLY the improved message text without any explanation or commentary about your changes.`
)

// GeneratePrompt builds the structured user prompt for message generation.
func GeneratePrompt(c models.Contact, p models.UserProfile, messageType, goal, topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a personalized %s message to %s.\n\n", messageType, c.FullName())

	b.WriteString("RECIPIENT'S PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", c.FullName())
	fmt.Fprintf(&b, "- Role: %s\n", c.Role)
	fmt.Fprintf(&b, "- Company: %s\n", c.Company)
	fmt.Fprintf(&b, "- Industry: %s\n", c.Industry)
	fmt.Fprintf(&b, "- Expertise: %s\n", c.Expertise)
	fmt.Fprintf(&b, "- Seniority: %s\n", c.Seniority)
	fmt.Fprintf(&b, "- Recent Projects: %s\n", c.RecentProjects)
	fmt.Fprintf(&b, "- Key Achievements: %s\n", c.KeyAchievements)
	fmt.Fprintf(&b, "- Mutual Connections: %d\n", c.MutualConnections)
	if c.RecentActivity != nil {
		fmt.Fprintf(&b, "- Recent Activity: %s about %s\n", c.RecentActivity.Type, c.RecentActivity.Topic)
	}

	b.WriteString("\nSENDER'S PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Role: %s\n", p.CurrentRole)
	fmt.Fprintf(&b, "- Industry: %s\n", p.Industry)
	fmt.Fprintf(&b, "- Expertise: %s\n", p.Expertise)
	fmt.Fprintf(&b, "- Company: %s\n", p.Company)
	fmt.Fprintf(&b, "- Interests: %s\n", p.Interests)

	b.WriteString("\nMESSAGE DETAILS:\n")
	fmt.Fprintf(&b, "- Message Type: %s\n", messageType)
	fmt.Fprintf(&b, "- Networking Goal: %s\n", goal)
	fmt.Fprintf(&b, "- Specific Topic of Interest: %s\n", specificTopic(c, topic))

	fmt.Fprintf(&b, "\nCreate a personalized %s message based on this information.", messageType)
	return b.String()
}

// AnalyzePrompt builds the user prompt for message analysis.
func AnalyzePrompt(c models.Contact, goal, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this networking outreach message to %s, who is a %s at %s in the %s industry:\n\n",
		c.FullName(), c.Role, c.Company, c.Industry)
	fmt.Fprintf(&b, "MESSAGE:\n%s\n\n", message)
	b.WriteString("RECIPIENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Expertise: %s\n", c.Expertise)
	fmt.Fprintf(&b, "- Seniority: %s\n", c.Seniority)
	fmt.Fprintf(&b, "- Recent Projects: %s\n", c.RecentProjects)
	b.WriteString("\nSENDER GOAL:\n")
	fmt.Fprintf(&b, "- Networking Goal: %s\n", goal)
	b.WriteString("\nEvaluate this message and provide feedback in the required JSON format.")
	return b.String()
}

// ImprovePrompt builds the user prompt for message improvement.
func ImprovePrompt(c models.Contact, p models.UserProfile, goal, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Improve this networking outreach message to %s, who is a %s at %s in the %s industry:\n\n",
		c.FullName(), c.Role, c.Company, c.Industry)
	fmt.Fprintf(&b, "ORIGINAL MESSAGE:\n%s\n\n", message)
	b.WriteString("RECIPIENT DETAILS:\n")
	fmt.Fprintf(&b, "- Expertise: %s\n", c.Expertise)
	fmt.Fprintf(&b, "- Seniority: %s\n", c.Seniority)
	fmt.Fprintf(&b, "- Recent Projects: %s\n", c.RecentProjects)
	fmt.Fprintf(&b, "- Key Achievements: %s\n", c.KeyAchievements)
	if c.RecentActivity != nil {
		fmt.Fprintf(&b, "- Recent Activity: %s about %s\n", c.RecentActivity.Type, c.RecentActivity.Topic)
	}
	b.WriteString("\nSENDER DETAILS:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Role: %s\n", p.CurrentRole)
	fmt.Fprintf(&b, "- Expertise: %s\n", p.Expertise)
	fmt.Fprintf(&b, "- Networking Goal: %s\n", goal)
	b.WriteString("\nImprove this message while keeping its core intent. Return only the improved message text.")
	return b.String()
}
