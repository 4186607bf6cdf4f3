package skillgraph

// relation maps one top-level skill to the skills it implies. The table is
// ordered so that reverse lookups (Category) resolve ties by first entry.
type relation struct {
	skill   string
	implies []string
}

// relations is the one-hop inference table. Listing a top-level skill on a
// resume implies working familiarity with its direct neighbors only; the
// expansion is intentionally not transitive.
var relations = []relation{
	// Programming languages
	{"python", []string{
		"pytorch", "tensorflow", "numpy", "pandas", "scikit-learn",
		"fastapi", "django", "flask", "keras", "opencv", "matplotlib",
		"seaborn", "sqlalchemy", "pydantic", "celery", "asyncio",
	}},
	{"javascript", []string{
		"react", "node.js", "typescript", "vue.js", "angular",
		"express", "next.js", "npm", "webpack", "babel", "jest",
		"redux", "graphql", "jquery", "html", "css",
	}},
	{"typescript", []string{
		"javascript", "react", "node.js", "angular", "next.js",
		"express", "npm", "webpack", "jest", "redux",
	}},
	{"java", []string{
		"spring", "spring boot", "maven", "gradle", "hibernate",
		"junit", "jpa", "tomcat", "kafka", "jdbc",
	}},
	{"go", []string{
		"golang", "gin", "gorilla", "grpc", "protobuf",
	}},
	{"rust", []string{
		"cargo", "tokio", "actix", "serde",
	}},
	{"c#", []string{
		".net", "asp.net", "entity framework", "unity", "linq",
	}},
	{"c++", []string{
		"stl", "boost", "cmake", "embedded systems", "qt",
	}},
	{"ruby", []string{
		"rails", "ruby on rails", "rspec", "sidekiq",
	}},
	{"php", []string{
		"laravel", "symfony", "composer", "wordpress",
	}},
	{"scala", []string{
		"sbt", "akka", "play framework", "spark", "jvm",
	}},
	{"elixir", []string{
		"phoenix", "erlang", "otp", "liveview",
	}},

	// Cloud platforms
	{"aws", []string{
		"ec2", "s3", "lambda", "rds", "cloudformation", "eks",
		"ecs", "dynamodb", "sqs", "sns", "cloudwatch", "iam",
		"api gateway", "route53", "cloudfront",
	}},
	{"gcp", []string{
		"google cloud", "cloud functions", "bigquery", "cloud run",
		"gke", "cloud storage", "pub/sub", "cloud sql", "vertex ai",
	}},
	{"azure", []string{
		"azure functions", "cosmos db", "aks", "azure devops",
		"azure storage", "azure sql", "app service",
	}},

	// AI/ML
	{"machine learning", []string{
		"pytorch", "tensorflow", "scikit-learn", "keras", "numpy",
		"pandas", "data science", "neural networks", "deep learning",
	}},
	{"deep learning", []string{
		"pytorch", "tensorflow", "keras", "neural networks",
		"cnn", "rnn", "transformer", "gpu",
	}},
	{"ai", []string{
		"llm", "langchain", "openai", "machine learning", "nlp",
		"chatgpt", "gpt", "artificial intelligence",
	}},
	{"llm", []string{
		"langchain", "openai", "prompt engineering", "rag",
		"chatgpt", "gpt", "embeddings", "vector database",
	}},
	{"nlp", []string{
		"natural language processing", "spacy", "nltk", "transformers",
		"bert", "gpt", "text mining", "sentiment analysis",
	}},
	{"data science", []string{
		"python", "pandas", "numpy", "machine learning", "statistics",
		"data analysis", "jupyter", "visualization",
	}},

	// DevOps / infrastructure
	{"docker", []string{
		"kubernetes", "containerization", "docker-compose", "dockerfile",
		"container", "devops",
	}},
	{"kubernetes", []string{
		"k8s", "helm", "docker", "container orchestration",
		"pods", "kubectl", "devops",
	}},
	{"devops", []string{
		"ci/cd", "docker", "kubernetes", "jenkins", "github actions",
		"terraform", "ansible", "monitoring",
	}},
	{"terraform", []string{
		"infrastructure as code", "iac", "aws", "devops",
	}},
	{"ansible", []string{
		"configuration management", "automation", "yaml", "devops",
	}},
	{"jenkins", []string{
		"ci/cd", "pipelines", "groovy", "automation",
	}},
	{"ci/cd", []string{
		"jenkins", "github actions", "gitlab ci", "devops",
		"continuous integration", "continuous deployment",
	}},
	{"prometheus", []string{
		"monitoring", "alerting", "metrics", "grafana",
	}},
	{"grafana", []string{
		"dashboards", "monitoring", "observability", "prometheus",
	}},

	// Databases
	{"sql", []string{
		"postgresql", "mysql", "database", "data modeling",
		"queries", "relational database",
	}},
	{"postgresql", []string{
		"sql", "postgres", "database", "relational database",
	}},
	{"mysql", []string{
		"sql", "database", "relational database",
	}},
	{"mongodb", []string{
		"nosql", "database", "document database",
	}},
	{"redis", []string{
		"caching", "in-memory database", "nosql",
	}},
	{"elasticsearch", []string{
		"kibana", "logstash", "elk stack", "full-text search", "search",
	}},

	// Data engineering
	{"data engineering", []string{
		"sql", "etl", "spark", "airflow", "data pipeline",
		"data warehouse", "python", "big data",
	}},
	{"spark", []string{
		"apache spark", "pyspark", "big data", "data processing",
	}},
	{"kafka", []string{
		"apache kafka", "streaming", "message queue", "event driven",
	}},

	// Frontend
	{"react", []string{
		"javascript", "redux", "jsx", "hooks", "react native",
		"next.js", "typescript", "frontend",
	}},
	{"vue.js", []string{
		"javascript", "vuex", "nuxt.js", "frontend",
	}},
	{"angular", []string{
		"typescript", "rxjs", "frontend", "javascript",
	}},
	{"svelte", []string{
		"javascript", "sveltekit", "frontend",
	}},
	{"frontend", []string{
		"html", "css", "javascript", "responsive design", "ui/ux",
	}},

	// Backend
	{"backend", []string{
		"api", "rest", "database", "server", "microservices",
	}},
	{"rest", []string{
		"api", "restful", "http", "json",
	}},
	{"graphql", []string{
		"api", "apollo", "query language",
	}},
	{"microservices", []string{
		"api", "docker", "kubernetes", "distributed systems",
	}},

	// Version control
	{"git", []string{
		"github", "gitlab", "bitbucket", "version control",
	}},

	// Methodology
	{"agile", []string{
		"scrum", "kanban", "jira", "sprint",
	}},
	{"scrum", []string{
		"agile", "sprint", "jira", "product management",
	}},

	// Design
	{"ux design", []string{
		"ui design", "user research", "wireframing", "prototyping",
		"usability testing", "information architecture", "user flows",
		"persona creation", "journey mapping", "accessibility",
	}},
	{"ui design", []string{
		"ux design", "visual design", "design systems", "responsive design",
		"mobile design", "web design", "interaction design",
	}},
	{"figma", []string{
		"prototyping", "design systems", "ui design", "wireframing",
		"auto layout", "components", "variants", "ux design",
	}},
	{"sketch", []string{
		"ui design", "prototyping", "symbols", "design systems", "ux design",
	}},
	{"adobe xd", []string{
		"prototyping", "ui design", "wireframing", "design systems", "ux design",
	}},
	{"graphic design", []string{
		"photoshop", "illustrator", "indesign", "typography",
		"branding", "visual design", "print design", "logo design",
	}},
	{"photoshop", []string{
		"image editing", "photo retouching", "adobe creative suite",
		"graphic design", "digital art",
	}},
	{"illustrator", []string{
		"vector graphics", "logo design", "illustration",
		"adobe creative suite", "graphic design",
	}},
	{"indesign", []string{
		"print design", "layout design", "adobe creative suite",
		"graphic design", "typography",
	}},
	{"product design", []string{
		"ux design", "ui design", "design thinking", "prototyping",
		"user research", "figma", "design systems",
	}},
	{"design thinking", []string{
		"user research", "ideation", "prototyping", "empathy mapping",
		"brainstorming", "problem solving",
	}},
	{"motion design", []string{
		"after effects", "animation", "video editing", "motion graphics",
	}},
	{"after effects", []string{
		"motion design", "animation", "video editing", "adobe creative suite",
	}},

	// Product / management
	{"product owner", []string{
		"product management", "backlog management", "user stories",
		"agile", "scrum", "stakeholder management", "roadmap",
		"prioritization", "jira", "requirements gathering",
	}},
	{"product management", []string{
		"product strategy", "roadmap", "user stories", "agile",
		"stakeholder management", "market research", "okrs", "kpis",
	}},
	{"scrum master", []string{
		"agile", "scrum", "facilitation", "sprint planning",
		"retrospectives", "jira", "kanban", "coaching",
	}},
	{"tech lead", []string{
		"technical leadership", "architecture", "code review",
		"mentoring", "agile", "system design", "team management",
	}},
	{"project management", []string{
		"jira", "confluence", "agile", "scrum", "kanban",
		"stakeholder management", "risk management", "budgeting",
	}},
	{"engineering manager", []string{
		"people management", "technical leadership", "hiring",
		"performance reviews", "agile", "team building",
	}},
	{"jira", []string{
		"agile", "project management", "bug tracking", "sprint planning",
		"backlog management", "confluence",
	}},
	{"confluence", []string{
		"documentation", "jira", "wiki", "collaboration",
	}},

	// QA / testing
	{"qa", []string{
		"testing", "test cases", "bug tracking", "manual testing",
		"regression testing", "test planning", "quality assurance",
	}},
	{"qa engineer", []string{
		"test automation", "selenium", "cypress", "api testing",
		"manual testing", "test cases", "bug tracking", "jira",
	}},
	{"test automation", []string{
		"selenium", "cypress", "playwright", "pytest", "jest",
		"ci/cd", "api testing", "e2e testing",
	}},
	{"selenium", []string{
		"test automation", "webdriver", "python", "java",
		"xpath", "css selectors", "page object model",
	}},
	{"cypress", []string{
		"test automation", "javascript", "e2e testing",
		"api testing", "component testing",
	}},
	{"playwright", []string{
		"test automation", "e2e testing", "api testing",
		"cross-browser testing", "typescript",
	}},
	{"api testing", []string{
		"postman", "rest api", "json", "test automation",
		"integration testing",
	}},
	{"postman", []string{
		"api testing", "rest api", "json", "api documentation",
	}},
	{"performance testing", []string{
		"jmeter", "load testing", "stress testing",
		"gatling", "k6", "benchmarking",
	}},
	{"jmeter", []string{
		"performance testing", "load testing", "stress testing",
	}},
	{"sdet", []string{
		"test automation", "software development", "ci/cd",
		"api testing", "selenium", "programming",
	}},
	{"manual testing", []string{
		"test cases", "bug tracking", "qa", "regression testing",
		"exploratory testing",
	}},

	// Data / analytics
	{"database analyst", []string{
		"sql", "database design", "data modeling", "etl",
		"stored procedures", "query optimization", "reporting",
	}},
	{"dba", []string{
		"database administration", "sql", "postgresql", "mysql",
		"oracle", "backup", "recovery", "performance tuning",
	}},
	{"data analyst", []string{
		"sql", "excel", "tableau", "power bi", "python",
		"data visualization", "statistics", "reporting",
	}},
	{"business analyst", []string{
		"requirements gathering", "sql", "data analysis",
		"stakeholder management", "documentation", "jira",
	}},
	{"bi analyst", []string{
		"tableau", "power bi", "looker", "sql", "data visualization",
		"dashboards", "reporting", "etl",
	}},
	{"tableau", []string{
		"data visualization", "dashboards", "sql", "bi",
		"reporting", "analytics",
	}},
	{"power bi", []string{
		"data visualization", "dax", "dashboards", "sql",
		"reporting", "microsoft", "analytics",
	}},
	{"looker", []string{
		"data visualization", "dashboards", "sql", "bi",
		"lookml", "analytics",
	}},
	{"excel", []string{
		"spreadsheets", "data analysis", "pivot tables", "vlookup",
		"macros", "vba",
	}},

	// Other tech roles
	{"solutions architect", []string{
		"system design", "cloud architecture", "aws", "azure", "gcp",
		"microservices", "integration", "technical leadership",
	}},
	{"technical writer", []string{
		"documentation", "api documentation", "markdown",
		"confluence", "readme", "technical communication",
	}},
	{"devrel", []string{
		"developer relations", "technical writing", "public speaking",
		"community management", "documentation", "demos",
	}},
	{"security engineer", []string{
		"cybersecurity", "penetration testing", "owasp",
		"vulnerability assessment", "security audits", "encryption",
	}},
	{"cybersecurity", []string{
		"security", "penetration testing", "owasp", "encryption",
		"firewall", "network security",
	}},
	{"sre", []string{
		"site reliability", "monitoring", "incident management",
		"kubernetes", "terraform", "observability", "on-call",
	}},
	{"support engineer", []string{
		"troubleshooting", "customer support", "debugging",
		"ticketing systems", "technical support",
	}},

	// Low-code and automation tools
	{"n8n", []string{
		"webhooks", "apis", "json", "automation workflows", "http requests",
		"integrations", "triggers", "data transformation", "low-code",
	}},
	{"make", []string{
		"integromat", "scenarios", "modules", "data transformation",
		"filters", "automation", "webhooks", "api",
	}},
	{"zapier", []string{
		"zaps", "triggers", "actions", "multi-step workflows", "paths",
		"automation", "integrations",
	}},
	{"power automate", []string{
		"microsoft 365", "azure", "sharepoint", "power platform",
		"flows", "automation", "microsoft",
	}},
	{"airtable", []string{
		"spreadsheets", "databases", "apis", "views", "automations",
		"no-code", "formulas",
	}},
	{"notion", []string{
		"databases", "templates", "formulas", "api", "integrations",
		"documentation", "wiki",
	}},
	{"retool", []string{
		"sql", "react basics", "internal tools", "database queries",
		"apis", "admin panels",
	}},
	{"bubble", []string{
		"no-code apps", "workflows", "database design", "visual programming",
	}},
	{"webflow", []string{
		"html", "css", "responsive design", "cms", "visual design",
		"no-code", "web design",
	}},
	{"appsmith", []string{
		"sql", "javascript", "internal tools", "apis", "admin dashboards",
	}},

	// AI and LLM tools
	{"langchain", []string{
		"python", "llms", "chains", "agents", "rag", "memory",
		"prompts", "retrievers", "vector stores", "openai",
	}},
	{"crewai", []string{
		"multi-agent systems", "langchain", "python", "task orchestration",
		"agents", "llm", "ai agents",
	}},
	{"openai api", []string{
		"rest apis", "prompt engineering", "tokens", "function calling",
		"embeddings", "gpt", "chat completions", "llm",
	}},
	{"rag", []string{
		"vector databases", "embeddings", "semantic search", "chunking",
		"retrieval", "langchain", "llamaindex", "llm",
	}},
	{"prompt engineering", []string{
		"llms", "chatgpt", "claude", "chain-of-thought", "few-shot learning",
		"prompts", "gpt", "ai",
	}},
	{"hugging face", []string{
		"transformers", "pytorch", "model fine-tuning", "datasets",
		"models", "nlp", "machine learning",
	}},
	{"pinecone", []string{
		"vector database", "embeddings", "similarity search", "rag",
		"semantic search", "llm",
	}},
	{"weaviate", []string{
		"vector database", "embeddings", "semantic search", "rag",
		"graphql", "llm",
	}},
	{"chroma", []string{
		"vector database", "embeddings", "local", "rag", "langchain",
		"llm", "python",
	}},
	{"faiss", []string{
		"vector search", "embeddings", "similarity search", "meta",
		"rag", "machine learning",
	}},
	{"ollama", []string{
		"local llms", "model deployment", "apis", "quantization",
		"llama", "mistral", "self-hosted", "llm",
	}},
	{"llamaindex", []string{
		"rag", "data connectors", "indexing", "query engines",
		"llm", "embeddings", "python",
	}},
	{"semantic kernel", []string{
		".net", "ai orchestration", "plugins", "memory", "microsoft",
		"llm", "c#",
	}},
	{"anthropic api", []string{
		"claude", "llm", "prompt engineering", "tokens",
		"chat completions", "ai",
	}},
	{"embeddings", []string{
		"vector databases", "semantic search", "rag", "similarity",
		"nlp", "machine learning",
	}},
	{"fine-tuning", []string{
		"model training", "machine learning", "llm", "hugging face",
		"pytorch", "transfer learning",
	}},
	{"autogen", []string{
		"multi-agent systems", "microsoft", "llm", "agents",
		"conversational ai", "python", "ai orchestration",
	}},
	{"dspy", []string{
		"llm programming", "prompt optimization", "python",
		"machine learning", "llm", "stanford",
	}},
	{"guidance", []string{
		"llm control", "constrained generation", "microsoft",
		"python", "llm", "structured output",
	}},
	{"instructor", []string{
		"structured output", "pydantic", "llm", "python",
		"function calling", "json schema",
	}},
	{"litellm", []string{
		"llm gateway", "api proxy", "openai", "anthropic",
		"unified api", "python", "llm",
	}},
	{"vllm", []string{
		"llm inference", "high throughput", "serving", "gpu",
		"llm", "deployment", "python",
	}},
	{"text-generation-inference", []string{
		"llm serving", "hugging face", "deployment", "gpu",
		"llm", "inference", "tgi",
	}},
	{"mlflow", []string{
		"experiment tracking", "model registry", "mlops",
		"machine learning", "model deployment",
	}},
	{"weights & biases", []string{
		"experiment tracking", "mlops", "visualization",
		"machine learning", "model monitoring", "wandb",
	}},
	{"modal", []string{
		"serverless gpu", "python", "deployment", "inference",
		"machine learning", "cloud",
	}},

	// Product analytics
	{"amplitude", []string{
		"product analytics", "user behavior", "cohort analysis",
		"funnels", "retention", "analytics",
	}},
	{"mixpanel", []string{
		"product analytics", "event tracking", "user flows",
		"retention analysis", "analytics",
	}},
	{"segment", []string{
		"customer data platform", "data collection", "integrations",
		"analytics", "cdp",
	}},
	{"heap", []string{
		"auto-capture analytics", "product analytics", "user behavior",
		"retroactive analysis", "analytics",
	}},
	{"hotjar", []string{
		"heatmaps", "session recordings", "user research",
		"feedback", "ux research",
	}},
	{"fullstory", []string{
		"session replay", "digital experience", "user behavior",
		"analytics", "ux research",
	}},
	{"google analytics", []string{
		"web analytics", "ga4", "user behavior", "reporting",
		"marketing analytics", "analytics",
	}},
	{"snowflake", []string{
		"data warehouse", "cloud data", "sql", "data engineering",
		"analytics", "data lake",
	}},
	{"databricks", []string{
		"data engineering", "spark", "delta lake", "machine learning",
		"analytics", "mlops",
	}},
	{"dbt", []string{
		"data transformation", "sql", "analytics engineering",
		"data modeling", "elt", "data engineering",
	}},
	{"fivetran", []string{
		"data integration", "etl", "connectors", "data engineering",
		"data pipeline",
	}},
	{"airbyte", []string{
		"data integration", "open source", "etl", "connectors",
		"data engineering", "elt",
	}},

	// Mobile development
	{"swift", []string{
		"ios", "swiftui", "uikit", "xcode", "apple",
		"mobile development", "macos",
	}},
	{"kotlin", []string{
		"android", "jetpack compose", "android studio",
		"mobile development", "jvm",
	}},
	{"react native", []string{
		"javascript", "mobile development", "ios", "android",
		"cross-platform", "expo", "react",
	}},
	{"flutter", []string{
		"dart", "mobile development", "ios", "android",
		"cross-platform", "google",
	}},
	{"expo", []string{
		"react native", "mobile development", "cross-platform",
		"javascript", "eas",
	}},
}

// aliases maps alternative spellings to canonical skill names.
var aliases = map[string]string{
	// Developer aliases
	"k8s":            "kubernetes",
	"k8":             "kubernetes",
	"js":             "javascript",
	"ts":             "typescript",
	"py":             "python",
	"postgres":       "postgresql",
	"mongo":          "mongodb",
	"react.js":       "react",
	"reactjs":        "react",
	"vue":            "vue.js",
	"vuejs":          "vue.js",
	"node":           "node.js",
	"nodejs":         "node.js",
	"golang":         "go",
	"c sharp":        "c#",
	"csharp":         "c#",
	"cpp":            "c++",
	"dot net":        ".net",
	"dotnet":         ".net",
	"ml":             "machine learning",
	"dl":             "deep learning",
	"ai/ml":          "machine learning",
	"restful":        "rest",
	"ci cd":          "ci/cd",
	"github-actions": "github actions",
	"elastic":        "elasticsearch",

	// Design aliases
	"ux":             "ux design",
	"ui":             "ui design",
	"ux/ui":          "ux design",
	"ui/ux":          "ux design",
	"user experience": "ux design",
	"user interface": "ui design",
	"xd":             "adobe xd",
	"ps":             "photoshop",
	"id":             "indesign",
	"ae":             "after effects",

	// Product and management aliases
	"po":              "product owner",
	"pm":              "product management",
	"product manager": "product management",
	"sm":              "scrum master",
	"em":              "engineering manager",
	"tl":              "tech lead",
	"technical lead":  "tech lead",
	"lead developer":  "tech lead",

	// QA aliases
	"qa tester":           "qa engineer",
	"quality assurance":   "qa",
	"qe":                  "qa engineer",
	"automation tester":   "test automation",
	"automation engineer": "test automation",
	"test engineer":       "qa engineer",

	// Data and analytics aliases
	"db admin":               "dba",
	"database administrator": "dba",
	"ba":                     "business analyst",
	"bi":                     "bi analyst",
	"business intelligence":  "bi analyst",
	"data viz":               "data visualization",
	"powerbi":                "power bi",

	// Other tech role aliases
	"sa":                        "solutions architect",
	"solution architect":        "solutions architect",
	"tech writer":               "technical writer",
	"doc writer":                "technical writer",
	"infosec":                   "cybersecurity",
	"security":                  "cybersecurity",
	"site reliability engineer": "sre",

	// Low-code and automation aliases
	"integromat":                "make",
	"make.com":                  "make",
	"power platform":            "power automate",
	"ms power automate":         "power automate",
	"microsoft power automate":  "power automate",
	"zap":                       "zapier",

	// AI and LLM aliases
	"gpt":                            "openai api",
	"chatgpt":                        "openai api",
	"openai":                         "openai api",
	"gpt-4":                          "openai api",
	"gpt-3.5":                        "openai api",
	"lc":                             "langchain",
	"hf":                             "hugging face",
	"huggingface":                    "hugging face",
	"transformers":                   "hugging face",
	"claude":                         "anthropic api",
	"claude api":                     "anthropic api",
	"vector db":                      "vector databases",
	"vectordb":                       "vector databases",
	"retrieval augmented generation": "rag",
	"ag2":                            "autogen",
	"autogen studio":                 "autogen",
	"w&b":                            "weights & biases",
	"wandb":                          "weights & biases",
	"tgi":                            "text-generation-inference",
	"llama.cpp":                      "local llms",
	"llamacpp":                       "local llms",

	// Analytics aliases
	"ga":              "google analytics",
	"ga4":             "google analytics",
	"data build tool": "dbt",

	// Mobile aliases
	"rn":              "react native",
	"swiftui":         "swift",
	"jetpack":         "kotlin",
	"jetpack compose": "kotlin",
}

// transferable maps skills to the career areas they carry over to.
var transferable = map[string][]string{
	"python":     {"data science", "machine learning", "automation", "scripting"},
	"java":       {"android", "enterprise", "microservices"},
	"javascript": {"frontend", "full stack", "react native"},

	"sql":    {"data analysis", "business intelligence", "data engineering"},
	"pandas": {"data analysis", "data science", "automation"},
	"excel":  {"data analysis", "business intelligence", "reporting"},

	"docker":    {"kubernetes", "devops", "cloud", "sre"},
	"terraform": {"cloud", "infrastructure", "devops"},
	"aws":       {"cloud architecture", "solutions architecture", "devops"},

	"machine learning": {"data science", "ai engineering", "mlops"},
	"pytorch":          {"deep learning", "research", "computer vision", "nlp"},
	"langchain":        {"ai engineering", "rag", "llm applications"},

	"project management": {"product management", "scrum master", "team lead"},
	"agile":              {"scrum master", "product owner", "project management"},
	"leadership":         {"management", "tech lead", "director"},

	"test automation": {"sdet", "devops", "software engineering"},
	"selenium":        {"test automation", "web scraping", "automation"},

	"figma":     {"product design", "ux design", "ui design"},
	"ux design": {"product design", "user research", "product management"},
}
