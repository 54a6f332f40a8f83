package classifier

import "regexp"

// rule is one entry in the intent cascade: an intent tag plus its trigger
// patterns. An anchored or free regex matches structurally; phrases match
// by substring and double as the similarity corpus for the fallback pass.
type rule struct {
	intent  Intent
	exprs   []*regexp.Regexp
	phrases []string
}

// rules is evaluated in order; the first match wins. Order matters:
// social intents come first so "who created you" is resolved before the
// generic interrogative rules get a chance.
var rules = []rule{
	{
		intent: IntentGreeting,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`^(hi|hello|hey|howdy|greetings|good (morning|afternoon|evening))\b`),
		},
		phrases: []string{
			"hi", "hello", "hey", "howdy", "greetings", "good morning",
			"good afternoon", "good evening", "what's up", "yo",
		},
	},
	{
		intent: IntentFarewell,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`^(bye|goodbye|see you|farewell|take care)\b`),
		},
		phrases: []string{
			"bye", "goodbye", "see you later", "farewell", "take care",
			"cya", "catch you later", "until next time", "talk to you later",
		},
	},
	{
		intent: IntentGratitude,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(thank|thanks|thx|appreciate|grateful)\b`),
		},
		phrases: []string{
			"thank you", "thanks", "appreciate it", "thank you so much",
			"thx", "much appreciated", "grateful", "thanks a lot",
		},
	},
	{
		intent: IntentDeveloperInfo,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`who (made|created|developed|built)`),
			regexp.MustCompile(`\b(developer|creator|author)\b`),
		},
		phrases: []string{
			"who is aluko", "tell me about oluwatobi", "who is tobi",
			"developer information", "who made you", "who created you",
			"who developed you", "your developer",
		},
	},
	{
		intent: IntentCapabilities,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`what can you\b`),
			regexp.MustCompile(`your (abilities|capabilities|skills|functions)`),
		},
		phrases: []string{
			"what can you do", "help me with", "your abilities",
			"what are you capable of", "how can you help", "your skills",
			"what do you know", "your functions",
		},
	},
	{
		intent: IntentExplanation,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(explain|describe)\b`),
			regexp.MustCompile(`tell me about`),
			regexp.MustCompile(`what is\b`),
			regexp.MustCompile(`how does\b`),
		},
		phrases: []string{
			"explain", "describe", "tell me about", "what is", "how does",
		},
	},
	{
		intent: IntentHelp,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(help|assist|support|guide)\b`),
			regexp.MustCompile(`show me\b`),
		},
		phrases: []string{
			"help", "assist", "support", "guide", "show me",
		},
	},
	{
		intent: IntentComparison,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(compare|difference|versus|vs)\b`),
			regexp.MustCompile(`which is (better|best)`),
		},
		phrases: []string{
			"compare", "difference", "better", "versus", "vs", "which is",
		},
	},
	{
		intent: IntentLearning,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(learn|teach|understand|study)\b`),
		},
		phrases: []string{
			"learn", "teach", "understand", "study", "tutorial",
		},
	},
	{
		intent: IntentProblemSolving,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(problem|issue|error|bug|fix|solve|debug)\b`),
		},
		phrases: []string{
			"problem", "issue", "error", "bug", "fix", "solve", "debug",
		},
	},
	{
		intent: IntentTechnical,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`\b(ai|artificial intelligence|machine learning|programming|code|development|algorithm|data|software)\b`),
		},
		phrases: []string{
			"artificial intelligence", "machine learning", "programming",
			"algorithm", "software", "code",
		},
	},
	{
		intent: IntentInformation,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`^(what|how|why|when|where|who)\b`),
			regexp.MustCompile(`^(can you|could you|would you)\b`),
		},
		phrases: []string{
			"what", "how", "why", "when", "where", "who", "can you",
		},
	},
	{
		intent: IntentQuestion,
		exprs: []*regexp.Regexp{
			regexp.MustCompile(`^(is|are|do|does|can|will|would|could|should)\b`),
			regexp.MustCompile(`\?`),
		},
		phrases: nil,
	},
}
