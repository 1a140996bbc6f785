package persona

import "persona-engine/internal/domain"

// Static persona narratives. Strengths and growth edges are ordered;
// presentation layers render them as-is.
var personas = []domain.Persona{
	{
		ID: "inspector", Title: "The Inspector", MBTI: "ISTJ",
		Tagline:     "Reliable, grounded, precise.",
		Description: "You build trust through consistency. Facts, plans and follow-through matter more to you than grand visions, and people lean on you because you deliver exactly what you said you would.",
		Strengths:   []string{"Dependable under routine pressure", "Sharp eye for practical detail", "Keeps commitments others forget"},
		Growth:      []string{"Experiment before the plan feels complete", "Say what you feel, not only what you know"},
	},
	{
		ID: "protector", Title: "The Protector", MBTI: "ISFJ",
		Tagline:     "Quiet care, steady hands.",
		Description: "You notice what people need before they ask. Your loyalty is practical: remembered birthdays, covered shifts, small kindnesses that hold groups together.",
		Strengths:   []string{"Attentive to unspoken needs", "Patient and consistent", "Creates stability around them"},
		Growth:      []string{"Let others return the care you give", "Voice disagreement before it festers"},
	},
	{
		ID: "counselor", Title: "The Counselor", MBTI: "INFJ",
		Tagline:     "Insight in service of others.",
		Description: "You read rooms and people with unusual depth and quietly steer things toward what matters. You need a cause to be at your best.",
		Strengths:   []string{"Sees patterns in people early", "Principled and persistent", "Listens past the surface"},
		Growth:      []string{"Share conclusions while they are still forming", "Guard time for your own needs"},
	},
	{
		ID: "strategist", Title: "The Strategist", MBTI: "INTJ",
		Tagline:     "A plan for everything.",
		Description: "You think in systems and play the long game. Inefficiency genuinely bothers you, and you would rather rebuild a process than patch it twice.",
		Strengths:   []string{"Long-range structural thinking", "Independent judgment", "High internal standards"},
		Growth:      []string{"Bring people along before the plan is final", "Accept good-enough when stakes are low"},
	},
	{
		ID: "craftsman", Title: "The Craftsman", MBTI: "ISTP",
		Tagline:     "Hands-on, cool-headed.",
		Description: "You learn by taking things apart. Calm in a crisis and allergic to micromanagement, you trust what works over what is promised.",
		Strengths:   []string{"Practical troubleshooting", "Composure when things break", "Economy of effort"},
		Growth:      []string{"Explain your reasoning out loud", "Commit before every variable is known"},
	},
	{
		ID: "composer", Title: "The Composer", MBTI: "ISFP",
		Tagline:     "Gentle on the outside, vivid inside.",
		Description: "You express more through what you make and do than what you say. Aesthetics, loyalty and personal space are non-negotiable for you.",
		Strengths:   []string{"Strong personal taste", "Warm in small circles", "Adapts without drama"},
		Growth:      []string{"Claim credit for your own work", "Plan one step further ahead"},
	},
	{
		ID: "healer", Title: "The Healer", MBTI: "INFP",
		Tagline:     "Values first, always.",
		Description: "You measure everything against an inner compass. Your idealism is quiet but stubborn; you will walk away from success that feels wrong.",
		Strengths:   []string{"Deep empathy", "Integrity under pressure", "Original, reflective thinking"},
		Growth:      []string{"Ship imperfect drafts", "Treat conflict as information, not failure"},
	},
	{
		ID: "theorist", Title: "The Theorist", MBTI: "INTP",
		Tagline:     "Why is never the wrong question.",
		Description: "You pull ideas apart for sport and dislike unexamined rules. Precision of thought is your craft, even when it slows you down.",
		Strengths:   []string{"Rigorous analysis", "Comfort with ambiguity", "Inventive problem framing"},
		Growth:      []string{"Finish before the next question", "Translate ideas for non-specialists"},
	},
	{
		ID: "dynamo", Title: "The Dynamo", MBTI: "ESTP",
		Tagline:     "Act now, adjust fast.",
		Description: "You think on your feet and would rather try than theorize. Risk reads to you as information other people are ignoring.",
		Strengths:   []string{"Decisive in the moment", "Reads situations fast", "Energizes stalled groups"},
		Growth:      []string{"Pause before irreversible moves", "Stay with slow problems"},
	},
	{
		ID: "performer", Title: "The Performer", MBTI: "ESFP",
		Tagline:     "The room is better with you in it.",
		Description: "You bring warmth and momentum wherever you go. Experience beats analysis for you; you learn through people and motion.",
		Strengths:   []string{"Instant rapport", "Generous spontaneity", "Lifts group morale"},
		Growth:      []string{"Protect long-term goals from the fun of now", "Sit with discomfort instead of diverting it"},
	},
	{
		ID: "champion", Title: "The Champion", MBTI: "ENFP",
		Tagline:     "Possibility is a calling.",
		Description: "You see potential in people and projects everywhere and recruit others with real warmth. Starting comes easy; choosing is the hard part.",
		Strengths:   []string{"Contagious enthusiasm", "Connects unlike people and ideas", "Fast creative association"},
		Growth:      []string{"Pick fewer things and finish them", "Let routine carry some of the load"},
	},
	{
		ID: "visionary", Title: "The Visionary", MBTI: "ENTP",
		Tagline:     "Rules are drafts.",
		Description: "Debate is how you think. You flip assumptions to see what falls out and get restless the moment a problem becomes maintenance.",
		Strengths:   []string{"Quick, flexible argument", "Sees angles others miss", "Thrives on change"},
		Growth:      []string{"Spare energy for execution", "Check whether the debate is wanted"},
	},
	{
		ID: "supervisor", Title: "The Supervisor", MBTI: "ESTJ",
		Tagline:     "Someone has to run things.",
		Description: "You organize people and resources without being asked. Clear standards, visible results and fair process are how you show care.",
		Strengths:   []string{"Natural operational command", "Transparent expectations", "Gets groups to done"},
		Growth:      []string{"Leave room for unproven approaches", "Hear the feeling under the objection"},
	},
	{
		ID: "provider", Title: "The Provider", MBTI: "ESFJ",
		Tagline:     "Harmony is built, not found.",
		Description: "You hold communities together through attention and effort. You remember what matters to people and make belonging feel easy.",
		Strengths:   []string{"Builds and tends community", "Reliable practical support", "Reads social weather accurately"},
		Growth:      []string{"Tolerate necessary conflict", "Value your needs as much as the group's"},
	},
	{
		ID: "mentor", Title: "The Mentor", MBTI: "ENFJ",
		Tagline:     "Growth, for everyone in reach.",
		Description: "You develop people almost reflexively, spotting what they could become and saying it out loud. Groups organize themselves around your warmth.",
		Strengths:   []string{"Inspires real change in others", "Articulate about feelings and goals", "Builds consensus without force"},
		Growth:      []string{"Let people grow at their own pace", "Accept help as readily as you offer it"},
	},
	{
		ID: "commander", Title: "The Commander", MBTI: "ENTJ",
		Tagline:     "Decide, align, move.",
		Description: "You see the structure a goal needs and build it fast. Competence earns your respect; hesitation spends it.",
		Strengths:   []string{"Strategic drive", "Comfortable with hard calls", "Raises the bar for everyone"},
		Growth:      []string{"Slow down for buy-in", "Treat feelings as data, not friction"},
	},
}

// Override personas returned when the validity diagnostics bypass the
// normal MBTI lookup.
var overridePersonas = map[domain.PersonaKey]domain.Persona{
	domain.PersonaKeyUniform: {
		ID: "echo", Title: "The Echo",
		Tagline:     "Every answer, the same note.",
		Description: "Your responses were close to identical across the whole assessment, which usually means rushing, fatigue or testing the test. The profile behind them cannot be read yet.",
		Strengths:   []string{"Consistent, at least"},
		Growth:      []string{"Retake the assessment at an unhurried moment", "Answer from specific memories, not a general mood"},
	},
	domain.PersonaKeyExtremeLow: {
		ID: "understater", Title: "The Understater",
		Tagline:     "Everything dialed to minimum.",
		Description: "Every trait landed at the very bottom of the scale at once, which is rare in honest profiles. Treat these results as a prompt to re-answer with more range.",
		Strengths:   []string{"Unafraid of strong disagreement"},
		Growth:      []string{"Use the middle of the scale when it fits", "Consider a retake for a readable profile"},
	},
	domain.PersonaKeyExtremeHigh: {
		ID: "overstater", Title: "The Overstater",
		Tagline:     "Everything dialed to maximum.",
		Description: "Every trait landed at the very top of the scale at once, which is rare in honest profiles. Treat these results as a prompt to re-answer with more range.",
		Strengths:   []string{"Unafraid of strong agreement"},
		Growth:      []string{"Use the middle of the scale when it fits", "Consider a retake for a readable profile"},
	},
}
