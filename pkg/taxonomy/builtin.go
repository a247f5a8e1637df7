package taxonomy

import "github.com/helmcode/skillready/pkg/model"

// builtinProfiles is declaration-ordered: earlier keys win when a role text
// contains more than one of them.
var builtinProfiles = []RoleProfile{
	{
		Key: "frontend developer",
		Requirements: []Requirement{
			{Name: "HTML/CSS fundamentals", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "JavaScript ES6+", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "React.js or Vue.js", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "TypeScript", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Responsive design", Importance: model.ImportanceCritical, Category: model.CategoryApplication},
			{Name: "CSS frameworks (Tailwind/Bootstrap)", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Git version control", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "REST APIs integration", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Browser DevTools", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Testing (Jest/Cypress)", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Build tools (Webpack/Vite)", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "Performance optimization", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Advanced backend architecture (focus on APIs integration first)",
			"DevOps/Infrastructure (not required for entry-level)",
			"Mobile app development (unless specifically required)",
			"Machine learning or AI (stay focused on web)",
		},
		Alternative: &model.AlternativeRole{Role: "UI Developer / Web Designer", Reason: "If you're stronger in CSS/design and visual work than JavaScript logic"},
	},
	{
		Key: "backend developer",
		Requirements: []Requirement{
			{Name: "Server-side language (Node.js/Python/Java)", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Database design (SQL)", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "REST API design", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Authentication/Authorization", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Git version control", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "NoSQL databases", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Caching strategies (Redis)", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Docker basics", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Testing frameworks", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "CI/CD pipelines", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "Cloud services (AWS/GCP)", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Security best practices", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Frontend frameworks (basic HTML/CSS is enough)",
			"UI/UX design principles (not your domain)",
			"Advanced data science/ML (unless in job description)",
			"Native mobile development",
		},
		Alternative: &model.AlternativeRole{Role: "Database Administrator", Reason: "If you excel at SQL and data management but struggle with API design"},
	},
	{
		Key: "data scientist",
		Requirements: []Requirement{
			{Name: "Python programming", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Statistics and probability", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Machine learning algorithms", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Pandas/NumPy", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "SQL for data analysis", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Data visualization (Matplotlib/Seaborn)", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Scikit-learn", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "Feature engineering", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Deep learning basics", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Git version control", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "A/B testing", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Business problem framing", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Web development frameworks",
			"DevOps and infrastructure",
			"Advanced software engineering patterns",
			"Big data tools like Spark (until you master basics)",
		},
		Alternative: &model.AlternativeRole{Role: "Data Analyst", Reason: "If you're comfortable with SQL and visualization but need more time for ML algorithms"},
	},
	{
		Key: "product manager",
		Requirements: []Requirement{
			{Name: "User research methods", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Product roadmap creation", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Agile/Scrum methodology", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "Data-driven decision making", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Stakeholder communication", Importance: model.ImportanceCritical, Category: model.CategoryApplication},
			{Name: "Competitive analysis", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Wireframing/Prototyping", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "SQL basics for analytics", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "A/B testing concepts", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Go-to-market strategy", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Technical understanding", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Prioritization frameworks", Importance: model.ImportanceCritical, Category: model.CategoryCore},
		},
		NotToLearn: []string{
			"Advanced coding (basic SQL/scripting is enough)",
			"UI design tools in depth (Figma basics only)",
			"Deep technical architecture",
			"Data science algorithms (understand concepts only)",
		},
		Alternative: &model.AlternativeRole{Role: "Business Analyst", Reason: "If you're stronger in requirements and documentation than user research"},
	},
	{
		Key: "ux designer",
		Requirements: []Requirement{
			{Name: "User research", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Wireframing", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Prototyping (Figma)", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "Usability testing", Importance: model.ImportanceCritical, Category: model.CategoryApplication},
			{Name: "Information architecture", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Interaction design", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Visual design basics", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Design systems", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Accessibility standards", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "User journey mapping", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "HTML/CSS basics", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "Analytics interpretation", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Backend development",
			"Data science or analytics tools beyond basics",
			"Advanced frontend frameworks (basic HTML/CSS only)",
			"DevOps or cloud infrastructure",
		},
		Alternative: &model.AlternativeRole{Role: "UI Designer / Visual Designer", Reason: "If you prefer visual design over user research and testing"},
	},
	{
		Key: "devops engineer",
		Requirements: []Requirement{
			{Name: "Linux administration", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Docker containerization", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "Kubernetes orchestration", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "CI/CD pipelines", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Infrastructure as Code (Terraform)", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Cloud platforms (AWS/GCP/Azure)", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "Scripting (Bash/Python)", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Monitoring (Prometheus/Grafana)", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Git version control", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "Networking fundamentals", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Security practices", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Database administration", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Frontend development",
			"UI/UX design",
			"Data science and machine learning",
			"Advanced application development",
		},
		Alternative: &model.AlternativeRole{Role: "System Administrator", Reason: "If you're comfortable with Linux but need more time for containerization"},
	},
	{
		Key: "full stack developer",
		Requirements: []Requirement{
			{Name: "HTML/CSS/JavaScript", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "React.js or Vue.js", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Node.js or Python backend", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Database design (SQL + NoSQL)", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "REST API design", Importance: model.ImportanceCritical, Category: model.CategoryApplication},
			{Name: "Git version control", Importance: model.ImportanceCritical, Category: model.CategoryTools},
			{Name: "TypeScript", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Authentication systems", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Testing frameworks", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Cloud deployment", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Docker basics", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "Performance optimization", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Machine learning/AI (unless role-specific)",
			"Advanced DevOps beyond basic deployment",
			"Mobile native development",
			"Deep specialization in niche frameworks",
		},
		Alternative: &model.AlternativeRole{Role: "Frontend Developer", Reason: "If your frontend skills are significantly stronger than backend"},
	},
	{
		Key: "default",
		Requirements: []Requirement{
			{Name: "Core technical skills for role", Importance: model.ImportanceCritical, Category: model.CategoryCore},
			{Name: "Problem-solving ability", Importance: model.ImportanceCritical, Category: model.CategoryApplication},
			{Name: "Communication skills", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Version control (Git)", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Industry-standard tools", Importance: model.ImportanceHigh, Category: model.CategoryTools},
			{Name: "Documentation skills", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "Team collaboration", Importance: model.ImportanceHigh, Category: model.CategoryApplication},
			{Name: "Time management", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Continuous learning mindset", Importance: model.ImportanceMedium, Category: model.CategoryApplication},
			{Name: "Basic project management", Importance: model.ImportanceMedium, Category: model.CategoryTools},
			{Name: "Domain knowledge", Importance: model.ImportanceHigh, Category: model.CategoryCore},
			{Name: "Portfolio/Work samples", Importance: model.ImportanceCritical, Category: model.CategoryApplication},
		},
		NotToLearn: []string{
			"Skills outside your target role's core requirements",
			"Advanced topics before mastering fundamentals",
			"Multiple programming languages at once",
			"Trendy technologies without job market demand",
		},
		Alternative: &model.AlternativeRole{Role: "Related Entry-Level Position", Reason: "Consider a more focused role to build specific expertise first"},
	},
}
