// Package messaging drafts outreach text locally. It is the fallback path
// when no generative provider is configured, and the source of conversation
// starters and prompt scaffolding when one is.
package messaging

import (
	"math/rand"
	"strings"

	"github.com/mtorelli/linknest/internal/models"
)

// Rand picks templates and starters. Injectable so tests are deterministic.
// Implementations must be safe for concurrent use: one Drafter serves every
// request goroutine.
type Rand interface {
	Intn(n int) int
}

// stdRand draws from the lock-protected top-level math/rand source.
type stdRand struct{}

func (stdRand) Intn(n int) int { return rand.Intn(n) }

// Drafter renders outreach messages by template substitution.
type Drafter struct {
	rng Rand
}

// NewDrafter returns a Drafter with the given picker, or the shared math/rand
// source when nil.
func NewDrafter(rng Rand) *Drafter {
	if rng == nil {
		rng = stdRand{}
	}
	return &Drafter{rng: rng}
}

var templates = map[string][]string{
	models.MessageColdOutreach: {
		`Hi {{firstName}},

I noticed your work in {{industry}} at {{company}}. Your expertise in {{expertise}} particularly caught my attention.

I'm currently a {{userRole}} specializing in {{userExpertise}} and would love to connect to learn more about your experiences with {{specificTopic}}.

Would you be open to a brief conversation in the coming weeks? I'd appreciate the opportunity to gain insights from your perspective.

Thanks for considering,
{{userName}}`,
		`Hello {{firstName}},

I came across your profile and was impressed by your background in {{expertise}} and your work at {{company}}.

I'm {{userName}}, a {{userRole}} focused on {{userExpertise}}. I'm particularly interested in your experience with {{specificTopic}} as it aligns with some challenges I'm currently addressing.

I'd value the opportunity to exchange ideas with someone of your expertise. Would you be interested in a 15-minute virtual coffee to discuss {{specificTopic}}?

Best regards,
{{userName}}`,
	},
	models.MessageFollowUp: {
		`Hi {{firstName}},

I hope you're doing well. I wanted to follow up on my previous message about connecting to discuss {{specificTopic}}.

Since then, I've been working on some interesting projects related to {{userExpertise}} which has given me some additional perspective I'd love to share and get your thoughts on.

If your schedule permits, I'd still appreciate that brief conversation we discussed. Would you be available for a quick chat in the coming weeks?

All the best,
{{userName}}`,
	},
	models.MessageInformationalInterview: {
		`Hi {{firstName}},

I hope this message finds you well. I'm {{userName}}, a {{userRole}} with a background in {{userExpertise}}.

I've been following your career journey in {{industry}} and have been particularly impressed by your work at {{company}}. Your approach to {{specificTopic}} is something I find truly inspiring.

I'm currently exploring opportunities in this field and would greatly value a 15-20 minute conversation to gain insights from your experience. I'm specifically interested in learning more about {{specificTopic}}.

I understand you must be busy, so I'm happy to work around your schedule. Would you be open to a brief call in the coming weeks?

Thank you for considering my request. I appreciate your time.

Best regards,
{{userName}}`,
	},
}

// ValidMessageType reports whether t names a known template family.
func ValidMessageType(t string) bool {
	_, ok := templates[t]
	return ok
}

// Draft renders one message of the given type. Unknown types fall back to
// cold outreach; the topic defaults to the contact's lead expertise in their
// industry.
func (d *Drafter) Draft(c models.Contact, p models.UserProfile, messageType, topic string) string {
	family, ok := templates[messageType]
	if !ok {
		family = templates[models.MessageColdOutreach]
	}
	tpl := family[d.rng.Intn(len(family))]

	replacements := map[string]string{
		"{{firstName}}":     c.FirstName,
		"{{industry}}":      c.Industry,
		"{{company}}":       c.Company,
		"{{expertise}}":     firstTerm(c.Expertise),
		"{{userRole}}":      p.CurrentRole,
		"{{userExpertise}}": p.Expertise,
		"{{userName}}":      p.Name,
		"{{specificTopic}}": specificTopic(c, topic),
	}
	for key, value := range replacements {
		tpl = strings.ReplaceAll(tpl, key, value)
	}
	return tpl
}

func specificTopic(c models.Contact, topic string) string {
	if topic != "" {
		return topic
	}
	return firstTerm(c.Expertise) + " in " + c.Industry
}

func firstTerm(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
