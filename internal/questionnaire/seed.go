package questionnaire

// Title is the assessment's display name.
const Title = "Risk & Audit Analyst Readiness Assessment"

var seedSections = []Section{
	{
		Key:         "psychometric",
		Title:       "Psychometric Evaluation",
		Description: "Understanding your personality and motivational fit",
		Questions: []Question{
			rating(KeyInterestFinance,
				"How interested are you in financial systems and compliance?",
				"Not interested", "Very interested"),
			choice(KeyDetailOrientation,
				"When reviewing documents, I prefer to:",
				"Scan quickly for main points",
				"Read thoroughly and check details",
				"Focus on specific sections only",
				"Review multiple times for accuracy"),
			choice(KeyWorkStyle,
				"In a work environment, I thrive when:",
				"Working independently on structured tasks",
				"Collaborating closely with team members",
				"Leading projects and making decisions",
				"Supporting others and following procedures"),
			choice(KeyProblemSolving,
				"When facing a complex problem, I typically:",
				"Break it down into smaller components",
				"Look for similar past examples",
				"Brainstorm creative solutions",
				"Consult with experts or colleagues"),
			rating(KeyMotivationLevel,
				"Rate your motivation to pursue a career in risk management:",
				"Low motivation", "Very motivated"),
		},
	},
	{
		Key:         "technical",
		Title:       "Technical & Aptitude Assessment",
		Description: "Testing your analytical and domain knowledge",
		Questions: []Question{
			graded(KeyNumericalReasoning,
				"A company's risk exposure increased from $2M to $2.8M. What is the percentage increase?",
				1,
				"30%", "40%", "28%", "80%"),
			graded(KeyLogicalReasoning,
				"If all audits require documentation AND proper authorization, and this process lacks proper authorization, then:",
				1,
				"The audit is complete",
				"The audit is invalid",
				"Additional documentation is needed",
				"The authorization can be obtained later"),
			graded(KeyComplianceKnowledge,
				"Which framework is primarily used for internal control over financial reporting?",
				0,
				"COSO", "ISO 27001", "ITIL", "BASEL III"),
			graded(KeyRiskIdentification,
				"A company stores sensitive customer data without encryption. This represents:",
				1,
				"Operational risk only",
				"Compliance and cybersecurity risk",
				"Financial risk only",
				"Strategic risk only"),
			rating(KeyDataInterpretation,
				"Rate your comfort level with interpreting financial data and reports:",
				"Very uncomfortable", "Very comfortable"),
		},
	},
	{
		Key:         "wiscar",
		Title:       "WISCAR Framework Analysis",
		Description: "Comprehensive readiness assessment",
		Questions: []Question{
			rating(KeyWillPersistence,
				"How likely are you to complete a challenging 6-month certification program?",
				"Very unlikely", "Very likely"),
			choice(KeyInterestCareer,
				"Which aspect of risk and audit work interests you most?",
				"Identifying and preventing fraud",
				"Ensuring regulatory compliance",
				"Analyzing financial controls",
				"Improving business processes"),
			rating(KeySkillExcel,
				"Rate your current Excel skills:",
				"Beginner", "Expert"),
			choice(KeyCognitiveReadiness,
				"When learning new concepts, I:",
				"Need multiple examples to understand",
				"Grasp concepts quickly with one explanation",
				"Prefer hands-on practice to learn",
				"Learn best through discussion and questions"),
			rating(KeyLearningAbility,
				"How comfortable are you with receiving and acting on feedback?",
				"Very uncomfortable", "Very comfortable"),
			choice(KeyRealWorldFit,
				"You discover a significant control weakness during an audit. Your first action would be:",
				"Document it and continue the audit",
				"Immediately report to management",
				"Investigate the root cause thoroughly",
				"Discuss with the auditee first"),
		},
	},
}

// TargetCareers are the roles the assessment measures readiness for.
var TargetCareers = []string{
	"Risk Analyst",
	"Internal Auditor",
	"Compliance Analyst",
	"Cyber Risk Analyst",
	"Operational Risk Associate",
}
