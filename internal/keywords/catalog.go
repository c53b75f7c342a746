// Package keywords holds the ATS keyword catalog and the trigger rules that
// pick keywords relevant to a piece of resume text.
package keywords

// Category names a group of keywords in the catalog.
type Category string

const (
	ProgrammingLanguages Category = "programmingLanguages"
	WebTechnologies      Category = "webTechnologies"
	Databases            Category = "databases"
	CloudPlatforms       Category = "cloudPlatforms"
	DevOpsTools          Category = "devopsTools"
	VersionControl       Category = "versionControl"
	SoftSkills           Category = "softSkills"
	Methodologies        Category = "methodologies"
	AIML                 Category = "aiMl"
	Cybersecurity        Category = "cybersecurity"
	Testing              Category = "testing"
	MobileDev            Category = "mobileDev"
	SystemDesign         Category = "systemDesign"
)

var catalog = map[Category][]string{
	ProgrammingLanguages: {
		"Python", "Java", "C++", "C#", "JavaScript", "TypeScript", "PHP", "Ruby", "Go", "Rust",
		"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Shell Scripting", "PowerShell",
	},
	WebTechnologies: {
		"HTML5", "CSS3", "Sass/SCSS", "React.js", "Vue.js", "Angular", "Node.js", "Express.js",
		"Next.js", "Nuxt.js", "jQuery", "Bootstrap", "Tailwind CSS", "Material-UI", "Ant Design",
		"GraphQL", "REST APIs", "WebSockets", "Progressive Web Apps (PWA)", "Single Page Applications (SPA)",
	},
	Databases: {
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "SQL Server", "DynamoDB",
		"Cassandra", "Elasticsearch", "Neo4j", "Firebase", "Supabase", "Database Design", "Data Modeling",
		"SQL Optimization", "NoSQL", "Database Administration", "Data Migration",
	},
	CloudPlatforms: {
		"AWS (Amazon Web Services)", "Azure", "Google Cloud Platform (GCP)", "DigitalOcean", "Heroku",
		"Vercel", "Netlify", "Cloudflare", "IBM Cloud", "Oracle Cloud", "Serverless Computing",
		"Lambda Functions", "Cloud Storage", "Load Balancing", "Auto-scaling", "Cloud Security",
	},
	DevOpsTools: {
		"Docker", "Kubernetes", "Jenkins", "GitLab CI/CD", "GitHub Actions", "Travis CI", "CircleCI",
		"Ansible", "Terraform", "Chef", "Puppet", "Prometheus", "Grafana", "ELK Stack", "Splunk",
		"Infrastructure as Code (IaC)", "Continuous Integration/Continuous Deployment (CI/CD)",
	},
	VersionControl: {
		"Git", "GitHub", "GitLab", "Bitbucket", "SVN", "Version Control", "Branch Management",
		"Code Review", "Pull Requests", "Merge Conflicts", "Git Flow", "Feature Branches",
	},
	SoftSkills: {
		"Problem Solving", "Critical Thinking", "Analytical Skills", "Team Collaboration", "Leadership",
		"Communication", "Time Management", "Project Management", "Adaptability", "Fast Learning",
		"Attention to Detail", "Creativity", "Innovation", "Strategic Planning", "Decision Making",
		"Conflict Resolution", "Mentoring", "Cross-functional Collaboration", "Client Communication",
	},
	Methodologies: {
		"Agile Development", "Scrum", "Kanban", "Waterfall", "DevOps", "Lean Development",
		"Test-Driven Development (TDD)", "Behavior-Driven Development (BDD)", "Extreme Programming (XP)",
		"Software Development Lifecycle (SDLC)", "Rapid Application Development (RAD)",
	},
	AIML: {
		"Machine Learning", "Deep Learning", "Artificial Intelligence", "Neural Networks", "TensorFlow",
		"PyTorch", "Scikit-learn", "Keras", "Natural Language Processing (NLP)", "Computer Vision",
		"Data Mining", "Predictive Analytics", "Statistical Analysis", "Data Visualization",
		"Big Data", "Hadoop", "Spark", "Pandas", "NumPy", "Matplotlib", "Seaborn", "Tableau",
	},
	Cybersecurity: {
		"Cybersecurity", "Information Security", "Penetration Testing", "Vulnerability Assessment",
		"Security Auditing", "Firewall Management", "Intrusion Detection Systems (IDS)", "SIEM",
		"Ethical Hacking", "Security Compliance", "GDPR", "HIPAA", "SOC 2", "ISO 27001",
		"Network Security", "Application Security", "Data Encryption", "Access Control", "Identity Management",
	},
	Testing: {
		"Unit Testing", "Integration Testing", "End-to-End Testing", "Automated Testing", "Manual Testing",
		"Test Automation", "Selenium", "Jest", "Mocha", "Cypress", "Playwright", "JUnit", "PyTest",
		"Quality Assurance (QA)", "Test Planning", "Bug Tracking", "Performance Testing", "Load Testing",
		"Security Testing", "User Acceptance Testing (UAT)",
	},
	MobileDev: {
		"React Native", "Flutter", "iOS Development", "Android Development", "Swift", "Kotlin",
		"Mobile App Development", "Cross-platform Development", "App Store Optimization (ASO)",
		"Mobile UI/UX", "Push Notifications", "Mobile Security", "Mobile Testing",
	},
	SystemDesign: {
		"System Design", "Software Architecture", "Microservices", "Monolithic Architecture",
		"Distributed Systems", "Scalability", "High Availability", "Fault Tolerance", "Load Balancing",
		"Caching Strategies", "Message Queues", "Event-Driven Architecture", "API Design",
		"Performance Optimization", "Code Optimization", "Memory Management", "Garbage Collection",
	},
}

// membership indexes every keyword by the categories that contain it.
var membership = func() map[string]map[Category]bool {
	m := make(map[string]map[Category]bool)
	for cat, words := range catalog {
		for _, w := range words {
			if m[w] == nil {
				m[w] = make(map[Category]bool)
			}
			m[w][cat] = true
		}
	}
	return m
}()

// List returns a copy of the keywords in a category, or nil for an unknown one.
func List(c Category) []string {
	words, ok := catalog[c]
	if !ok {
		return nil
	}
	return append([]string(nil), words...)
}

// Categories returns every category name in a stable order.
func Categories() []Category {
	return []Category{
		ProgrammingLanguages, WebTechnologies, Databases, CloudPlatforms, DevOpsTools,
		VersionControl, SoftSkills, Methodologies, AIML, Cybersecurity, Testing,
		MobileDev, SystemDesign,
	}
}

// In reports whether keyword belongs to any of the given categories.
func In(keyword string, cats ...Category) bool {
	for _, c := range cats {
		if membership[keyword][c] {
			return true
		}
	}
	return false
}

func head(c Category, n int) []string {
	words := catalog[c]
	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}

func span(c Category, from, to int) []string {
	words := catalog[c]
	if to > len(words) {
		to = len(words)
	}
	if from > to {
		return nil
	}
	return words[from:to]
}
