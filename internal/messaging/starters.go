package messaging

import (
	"fmt"

	"github.com/mtorelli/linknest/internal/models"
)

var industryTopics = map[string][]string{
	"Technology": {"AI advancements", "remote work technologies", "cybersecurity trends"},
	"Finance":    {"fintech innovations", "sustainable investing", "regulatory changes"},
	"E-commerce": {"omnichannel strategies", "customer retention", "logistics optimization"},
	"Software":   {"cloud architecture", "no-code platforms", "developer experience"},
}

var fallbackTopics = []string{"industry innovations", "current challenges", "future trends"}

// Starters generates exactly three conversation openers for a contact, drawn
// from recent activity, achievements, shared industry, projects and mutual
// connections, topped up with generic questions when those run dry.
func (d *Drafter) Starters(c models.Contact, p models.UserProfile) []string {
	var starters []string

	if c.RecentActivity != nil {
		switch c.RecentActivity.Type {
		case "post":
			starters = append(starters, fmt.Sprintf("I noticed your recent post about %s. What sparked your interest in this area?", c.RecentActivity.Topic))
		case "article":
			starters = append(starters, fmt.Sprintf("I read your article on %s. Your perspective was thought-provoking.", c.RecentActivity.Topic))
		}
	}

	if c.KeyAchievements != "" {
		starters = append(starters, fmt.Sprintf("Your achievement in %s is impressive. I'd love to hear more about your approach.", c.KeyAchievements))
	}

	if c.Industry != "" && c.Industry == p.Industry {
		topics, ok := industryTopics[c.Industry]
		if !ok {
			topics = fallbackTopics
		}
		topic := topics[d.rng.Intn(len(topics))]
		starters = append(starters, fmt.Sprintf("As fellow professionals in %s, I'm curious about your thoughts on %s.", c.Industry, topic))
	}

	if c.RecentProjects != "" {
		starters = append(starters, fmt.Sprintf("I found your work on %s interesting. What inspired you to take on that project?", firstTerm(c.RecentProjects)))
	}

	if c.MutualConnections > 0 {
		starters = append(starters, fmt.Sprintf("I noticed we have %d shared connections. The industry community is smaller than it seems!", c.MutualConnections))
	}

	generic := []string{
		"What's the most interesting project you've worked on recently?",
		fmt.Sprintf("What aspect of your work in %s do you find most fulfilling?", c.Industry),
		fmt.Sprintf("How did you first become interested in %s?", c.Industry),
		fmt.Sprintf("What's one challenge in %s that isn't getting enough attention?", c.Industry),
		fmt.Sprintf("What skills do you think will be most important for professionals in %s in the next few years?", c.Industry),
	}
	for len(starters) < 3 {
		s := generic[d.rng.Intn(len(generic))]
		if !containsString(starters, s) {
			starters = append(starters, s)
		}
	}

	return starters[:3]
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
