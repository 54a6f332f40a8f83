package responder

import "github.com/alukotobi/tobichat/internal/conversation"

// DeveloperName is the assistant's creator, interpolated into the
// developer-info and greeting templates.
const DeveloperName = "Aluko Oluwatobi"

var greetingTemplates = []string{
	"Hello! I'm Tobi AI, your intelligent assistant. How can I help you today?",
	"Hi there! I'm here to assist you with any questions about technology, programming, or AI. What would you like to explore?",
	"Greetings! I'm Tobi, an AI assistant created by " + DeveloperName + ". What can I help you discover today?",
	"Welcome! I'm ready to help you with technical questions, explanations, or just have an engaging conversation. What's on your mind?",
}

var farewellTemplates = []string{
	"Goodbye! Feel free to return anytime you have questions. I'm always here to help!",
	"Take care! I enjoyed our conversation. Come back whenever you need assistance.",
	"See you later! Remember, I'm here 24/7 for any technical questions or discussions.",
	"Farewell! It was great helping you today. Don't hesitate to reach out again!",
}

var gratitudeTemplates = []string{
	"You're very welcome! I'm glad I could help. Is there anything else you'd like to explore?",
	"My pleasure! That's exactly what I'm here for. Feel free to ask me anything else.",
	"Happy to help! I love sharing knowledge and helping people learn. What else can I assist with?",
	"You're welcome! I enjoy our conversations. Is there another topic you'd like to discuss?",
}

const developerInfoTemplate = "I was created by **" + DeveloperName + "**, a talented software engineer with expertise in AI, machine learning, and natural language processing. He designed me to be an intelligent conversational assistant that can help with technical topics, answer questions, and engage in meaningful discussions. Oluwatobi is passionate about creating AI solutions that genuinely help people learn and solve problems. Would you like to know more about my capabilities or discuss any technical topics?"

// capabilityBullets lists what the assistant offers, phrased for each
// inferred expertise level.
var capabilityBullets = map[conversation.Level][]string{
	conversation.LevelBeginner: {
		"**AI & Technology Explanations**: I can explain complex concepts in simple terms",
		"**Programming Help**: Guidance on learning to code and best practices",
		"**Research Assistance**: Help finding and understanding information",
		"**Interactive Learning**: Engaging conversations to help you learn",
	},
	conversation.LevelIntermediate: {
		"**Advanced AI Discussions**: Deep dives into machine learning, NLP, and AI architectures",
		"**Technical Problem Solving**: Help with coding challenges and system design",
		"**Data Science Guidance**: Statistics, data analysis, and visualization techniques",
		"**Software Architecture**: Best practices for building scalable applications",
	},
	conversation.LevelAdvanced: {
		"**Research-Level Discussions**: Latest developments in AI, algorithms, and computer science",
		"**Enterprise Solutions**: Scalability, performance optimization, and system architecture",
		"**AI Model Development**: Training strategies, model selection, and deployment",
		"**Technical Leadership**: Code reviews, team practices, and technology decisions",
	},
}

// levelClosers are appended to explanatory content, keyed by the user's
// inferred expertise level.
var levelClosers = map[conversation.Level]string{
	conversation.LevelBeginner:     "\n\n**In simple terms**: This is like having a smart tool that learns from examples to make decisions or predictions, similar to how you learn to recognize patterns.",
	conversation.LevelIntermediate: "\n\n**Technical note**: Consider exploring the practical implementations and frameworks available for this concept.",
	conversation.LevelAdvanced:     "\n\n**Advanced insight**: You might want to consider the algorithmic complexity, scalability implications, and latest research developments in this area.",
}

// learningPaths are per-topic, per-level study plans.
var learningPaths = map[string]map[conversation.Level]string{
	"programming": {
		conversation.LevelBeginner:     "**Beginner Path:**\n1. Choose a beginner-friendly language (Python or JavaScript)\n2. Learn basic concepts: variables, functions, loops\n3. Practice with simple projects\n4. Understand problem-solving approaches",
		conversation.LevelIntermediate: "**Intermediate Path:**\n1. Master data structures and algorithms\n2. Learn object-oriented programming\n3. Understand databases and APIs\n4. Build full-stack projects",
		conversation.LevelAdvanced:     "**Advanced Path:**\n1. Study system design and architecture\n2. Learn advanced algorithms and optimization\n3. Contribute to open-source projects\n4. Explore specialized domains (AI, security, etc.)",
	},
	"ai": {
		conversation.LevelBeginner:     "**AI Learning Path:**\n1. Understand basic concepts and terminology\n2. Learn Python programming\n3. Study statistics and linear algebra basics\n4. Try beginner ML tutorials",
		conversation.LevelIntermediate: "**Intermediate AI Path:**\n1. Deep dive into machine learning algorithms\n2. Learn popular frameworks (TensorFlow, PyTorch)\n3. Work on real datasets\n4. Understand neural networks",
		conversation.LevelAdvanced:     "**Advanced AI Path:**\n1. Study cutting-edge research papers\n2. Implement algorithms from scratch\n3. Work on novel applications\n4. Contribute to AI research",
	},
}

const learningTips = "\n\n**Learning Tips:**\n• Start with hands-on projects\n• Practice regularly, even if just 15-30 minutes daily\n• Join communities and ask questions\n• Build real projects to apply what you learn\n\nWould you like me to suggest specific resources, projects, or explain any particular concept to get you started?"

const problemSolvingTemplate = "I'm here to help you solve that problem! To provide the most effective assistance, let me understand:\n\n" +
	"**The Problem:**\n• What exactly is happening?\n• What were you trying to achieve?\n• Any error messages or unexpected behavior?\n\n" +
	"**Context:**\n• What technology/language are you using?\n• What have you already tried?\n• When did this issue start occurring?\n\n" +
	"**My Approach:**\nI'll help you debug systematically, explain what's happening, and guide you to a solution while ensuring you understand the underlying concepts.\n\n" +
	"Share the details, and let's solve this together!"

const knowledgeAreasTemplate = "I'd be happy to provide information! I have extensive knowledge about:\n\n" +
	"• **AI & Machine Learning**: Concepts, algorithms, applications\n" +
	"• **Programming**: Languages, frameworks, best practices\n" +
	"• **Web Development**: Frontend, backend, full-stack\n" +
	"• **Data Science**: Analysis, visualization, statistics\n" +
	"• **Software Engineering**: Architecture, design patterns, methodologies\n\n" +
	"What specific information are you looking for?"

const genericFallbackTemplate = "I want to give you the most helpful and accurate response possible. Could you provide a bit more detail about what you're looking for? " +
	"I'm particularly knowledgeable about:\n\n" +
	"• AI and Machine Learning\n" +
	"• Software Development\n" +
	"• Programming Languages\n" +
	"• Data Science\n" +
	"• Web Development\n" +
	"• Computer Science Concepts\n\n" +
	"What would you like to explore?"

const explanationClarifyTemplate = "I'd be happy to explain that concept! Could you specify which particular aspect you'd like me to focus on? " +
	"I can provide explanations ranging from basic overviews to detailed technical discussions."

const genericHelpTemplate = "I'm here to help! I can assist with:\n\n" +
	"• **Technical Problems**: Debugging code, explaining errors, optimization\n" +
	"• **Learning**: Explaining concepts, providing examples, study guidance\n" +
	"• **Project Ideas**: Suggestions, best practices, architecture advice\n" +
	"• **Career Guidance**: Technology choices, skill development paths\n\n" +
	"What specific area would you like help with?"

const comparisonClarifyTemplate = "I'd be happy to help you compare different options! To provide a meaningful comparison, could you specify:\n\n" +
	"• What exactly you'd like to compare\n" +
	"• What criteria are important to you (performance, ease of use, cost, etc.)\n" +
	"• Your specific use case or context\n\n" +
	"For example, I can compare programming languages, frameworks, tools, or concepts."
