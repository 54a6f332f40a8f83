package knowledge

// entries is the built-in catalog.
var entries = []Entry{
	{
		Topic:      "artificial_intelligence",
		Keywords:   []string{"ai", "artificial intelligence", "machine intelligence", "cognitive computing"},
		Content:    "Artificial Intelligence (AI) is a branch of computer science that aims to create intelligent machines capable of performing tasks that typically require human intelligence. These tasks include learning, reasoning, problem-solving, perception, language understanding, and decision-making. AI systems can be categorized into narrow AI (designed for specific tasks) and general AI (hypothetical systems with human-level intelligence across all domains).",
		Category:   "ai",
		Difficulty: DifficultyBeginner,
	},
	{
		Topic:      "machine_learning",
		Keywords:   []string{"machine learning", "ml", "supervised learning", "unsupervised learning", "reinforcement learning"},
		Content:    "Machine Learning is a subset of AI that enables computers to learn and improve from experience without being explicitly programmed. It uses algorithms to analyze data, identify patterns, and make predictions or decisions. The main types include: Supervised Learning (learning from labeled data), Unsupervised Learning (finding patterns in unlabeled data), and Reinforcement Learning (learning through interaction and feedback).",
		Category:   "ai",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "deep_learning",
		Keywords:   []string{"deep learning", "neural networks", "deep neural networks", "artificial neural networks"},
		Content:    "Deep Learning is a subset of machine learning that uses artificial neural networks with multiple layers (hence 'deep') to model and understand complex patterns in data. It's inspired by the structure and function of the human brain. Deep learning has revolutionized fields like computer vision, natural language processing, and speech recognition, powering technologies like image recognition, language translation, and autonomous vehicles.",
		Category:   "ai",
		Difficulty: DifficultyAdvanced,
	},
	{
		Topic:      "natural_language_processing",
		Keywords:   []string{"nlp", "natural language processing", "text analysis", "language understanding", "computational linguistics"},
		Content:    "Natural Language Processing (NLP) is a field of AI that focuses on the interaction between computers and human language. It combines computational linguistics, machine learning, and deep learning to help computers process, understand, and generate human language. NLP applications include chatbots, language translation, sentiment analysis, text summarization, and voice assistants.",
		Category:   "ai",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "computer_vision",
		Keywords:   []string{"computer vision", "image recognition", "object detection", "image processing", "visual perception"},
		Content:    "Computer Vision is a field of AI that enables computers to interpret and understand visual information from the world. It involves developing algorithms and techniques to extract meaningful information from digital images and videos. Applications include facial recognition, medical image analysis, autonomous vehicles, augmented reality, and quality control in manufacturing.",
		Category:   "ai",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "python",
		Keywords:   []string{"python", "python programming", "django", "flask", "pandas", "numpy"},
		Content:    "Python is a high-level, interpreted programming language known for its simplicity and readability. It's widely used in web development, data science, artificial intelligence, automation, and scientific computing. Python's extensive library ecosystem includes frameworks like Django and Flask for web development, and libraries like NumPy, Pandas, and Scikit-learn for data science and machine learning.",
		Category:   "programming",
		Difficulty: DifficultyBeginner,
	},
	{
		Topic:      "javascript",
		Keywords:   []string{"javascript", "js", "node.js", "react", "vue", "angular", "typescript"},
		Content:    "JavaScript is a versatile, high-level programming language primarily used for web development. It enables interactive web pages and is essential for front-end development. With Node.js, JavaScript can also be used for server-side development. Popular frameworks and libraries include React, Vue.js, Angular for front-end, and Express.js for back-end development. TypeScript extends JavaScript by adding static type definitions.",
		Category:   "programming",
		Difficulty: DifficultyBeginner,
	},
	{
		Topic:      "java",
		Keywords:   []string{"java", "spring", "spring boot", "jvm", "object oriented"},
		Content:    "Java is a class-based, object-oriented programming language designed to have as few implementation dependencies as possible. It's known for its 'write once, run anywhere' philosophy, meaning compiled Java code can run on all platforms that support Java. It's widely used in enterprise applications, Android development, and large-scale systems. The Spring framework is popular for building enterprise Java applications.",
		Category:   "programming",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "react",
		Keywords:   []string{"react", "reactjs", "jsx", "hooks", "components", "virtual dom"},
		Content:    "React is a JavaScript library for building user interfaces, particularly web applications. Developed by Facebook, it uses a component-based architecture and introduces concepts like JSX (JavaScript XML), virtual DOM for efficient rendering, and hooks for state management. React's declarative approach makes it easier to build interactive UIs by describing what the UI should look like for any given state.",
		Category:   "web_development",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "html_css",
		Keywords:   []string{"html", "css", "html5", "css3", "responsive design", "flexbox", "grid"},
		Content:    "HTML (HyperText Markup Language) is the standard markup language for creating web pages, providing the structure and content. CSS (Cascading Style Sheets) is used for styling and layout. Modern CSS includes powerful features like Flexbox and Grid for responsive layouts, animations, and advanced styling capabilities. Together, they form the foundation of web development.",
		Category:   "web_development",
		Difficulty: DifficultyBeginner,
	},
	{
		Topic:      "data_science",
		Keywords:   []string{"data science", "data analysis", "statistics", "data mining", "big data"},
		Content:    "Data Science is an interdisciplinary field that uses scientific methods, processes, algorithms, and systems to extract knowledge and insights from structured and unstructured data. It combines statistics, mathematics, programming, and domain expertise to analyze and interpret complex data. Data scientists use tools like Python, R, SQL, and various machine learning algorithms to solve real-world problems.",
		Category:   "data_science",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "sql",
		Keywords:   []string{"sql", "database", "mysql", "postgresql", "queries", "relational database"},
		Content:    "SQL (Structured Query Language) is a programming language designed for managing and manipulating relational databases. It allows you to create, read, update, and delete data in databases. SQL is essential for data analysis, backend development, and database administration. Popular database systems include MySQL, PostgreSQL, SQLite, and Microsoft SQL Server.",
		Category:   "data_science",
		Difficulty: DifficultyBeginner,
	},
	{
		Topic:      "git",
		Keywords:   []string{"git", "version control", "github", "gitlab", "repository", "commit"},
		Content:    "Git is a distributed version control system that tracks changes in source code during software development. It allows multiple developers to work on the same project simultaneously, maintains a complete history of changes, and enables branching and merging. GitHub and GitLab are popular platforms that host Git repositories and provide additional collaboration features.",
		Category:   "software_development",
		Difficulty: DifficultyBeginner,
	},
	{
		Topic:      "apis",
		Keywords:   []string{"api", "rest", "restful", "graphql", "microservices", "web services"},
		Content:    "APIs (Application Programming Interfaces) are sets of protocols and tools for building software applications. They define how different software components should interact. REST (Representational State Transfer) is a popular architectural style for designing networked applications. GraphQL is a query language and runtime for APIs that provides a more efficient alternative to REST in many cases.",
		Category:   "software_development",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "cloud_computing",
		Keywords:   []string{"cloud", "aws", "azure", "google cloud", "saas", "paas", "iaas"},
		Content:    "Cloud Computing is the delivery of computing services including servers, storage, databases, networking, software, analytics, and intelligence over the Internet. Major cloud providers include Amazon Web Services (AWS), Microsoft Azure, and Google Cloud Platform. Cloud services are typically categorized as Infrastructure as a Service (IaaS), Platform as a Service (PaaS), and Software as a Service (SaaS).",
		Category:   "cloud",
		Difficulty: DifficultyIntermediate,
	},
	{
		Topic:      "cybersecurity",
		Keywords:   []string{"cybersecurity", "security", "encryption", "authentication", "firewall", "malware"},
		Content:    "Cybersecurity involves protecting digital systems, networks, and data from digital attacks, unauthorized access, and damage. It includes practices like encryption, authentication, access control, network security, and incident response. Common threats include malware, phishing, ransomware, and data breaches. Security measures include firewalls, antivirus software, secure coding practices, and regular security audits.",
		Category:   "security",
		Difficulty: DifficultyIntermediate,
	},
}

// relatedConcepts links a topic label to concepts worth suggesting
// alongside it.
var relatedConcepts = map[string][]string{
	"artificial intelligence": {"machine learning", "deep learning", "neural networks", "natural language processing", "computer vision"},
	"machine learning":        {"supervised learning", "unsupervised learning", "reinforcement learning", "algorithms", "data science"},
	"programming":             {"javascript", "python", "react", "nodejs", "algorithms", "data structures"},
	"web development":         {"html", "css", "javascript", "react", "nodejs", "api", "database"},
	"data science":            {"statistics", "machine learning", "python", "visualization", "analytics"},
	"javascript":              {"react", "nodejs", "typescript", "web development", "frontend"},
	"python":                  {"machine learning", "data science", "django", "flask", "automation"},
	"react":                   {"javascript", "frontend", "components", "hooks", "jsx"},
	"neural networks":         {"deep learning", "artificial intelligence", "backpropagation", "layers"},
	"algorithms":              {"data structures", "complexity", "sorting", "searching", "optimization"},
}
