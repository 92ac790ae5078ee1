package catalog

import "cert-roadmap/internal/model"

// certifications is the full reference catalog. Entries are immutable; the
// Catalog type hands out copies of the grouped views, never this slice.
var certifications = []model.Certification{
	// AWS
	{
		ID: "aws-cloud-practitioner", Name: "AWS Certified Cloud Practitioner",
		ExamCode: "CLF-C02", Level: model.LevelFoundational,
		PriceUSD: 100, DurationMinutes: 90, QuestionCount: 65, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "cloud-concepts", Weight: 0.24},
			{Name: "security", Weight: 0.30},
			{Name: "compute", Weight: 0.34},
			{Name: "billing", Weight: 0.12},
		},
		Prerequisites: []string{},
		Related:       []string{"aws-solutions-architect-associate", "aws-developer-associate"},
		PreparationHours: model.PrepHours{Beginner: 40, Intermediate: 25, Advanced: 15},
	},
	{
		ID: "aws-solutions-architect-associate", Name: "AWS Certified Solutions Architect - Associate",
		ExamCode: "SAA-C03", Level: model.LevelAssociate,
		PriceUSD: 150, DurationMinutes: 130, QuestionCount: 65, PassingScore: 720,
		Domains: []model.ExamDomain{
			{Name: "security", Weight: 0.30},
			{Name: "networking", Weight: 0.26},
			{Name: "compute", Weight: 0.24},
			{Name: "storage", Weight: 0.20},
		},
		Prerequisites: []string{"aws-cloud-practitioner"},
		Related:       []string{"aws-developer-associate", "aws-sysops-administrator-associate"},
		PreparationHours: model.PrepHours{Beginner: 120, Intermediate: 80, Advanced: 50},
	},
	{
		ID: "aws-developer-associate", Name: "AWS Certified Developer - Associate",
		ExamCode: "DVA-C02", Level: model.LevelAssociate,
		PriceUSD: 150, DurationMinutes: 130, QuestionCount: 65, PassingScore: 720,
		Domains: []model.ExamDomain{
			{Name: "compute", Weight: 0.32},
			{Name: "security", Weight: 0.26},
			{Name: "devops", Weight: 0.24},
			{Name: "databases", Weight: 0.18},
		},
		Prerequisites: []string{"aws-cloud-practitioner"},
		Related:       []string{"aws-solutions-architect-associate"},
		PreparationHours: model.PrepHours{Beginner: 110, Intermediate: 70, Advanced: 45},
	},
	{
		ID: "aws-sysops-administrator-associate", Name: "AWS Certified SysOps Administrator - Associate",
		ExamCode: "SOA-C02", Level: model.LevelAssociate,
		PriceUSD: 150, DurationMinutes: 130, QuestionCount: 65, PassingScore: 720,
		Domains: []model.ExamDomain{
			{Name: "devops", Weight: 0.34},
			{Name: "networking", Weight: 0.26},
			{Name: "security", Weight: 0.22},
			{Name: "compute", Weight: 0.18},
		},
		Prerequisites: []string{"aws-cloud-practitioner"},
		Related:       []string{"aws-solutions-architect-associate"},
		PreparationHours: model.PrepHours{Beginner: 110, Intermediate: 75, Advanced: 45},
	},
	{
		ID: "aws-solutions-architect-professional", Name: "AWS Certified Solutions Architect - Professional",
		ExamCode: "SAP-C02", Level: model.LevelProfessional,
		PriceUSD: 300, DurationMinutes: 180, QuestionCount: 75, PassingScore: 750,
		Domains: []model.ExamDomain{
			{Name: "networking", Weight: 0.26},
			{Name: "compute", Weight: 0.25},
			{Name: "security", Weight: 0.26},
			{Name: "storage", Weight: 0.23},
		},
		Prerequisites: []string{"aws-solutions-architect-associate"},
		Related:       []string{"aws-devops-engineer-professional"},
		PreparationHours: model.PrepHours{Beginner: 200, Intermediate: 140, Advanced: 90},
	},
	{
		ID: "aws-devops-engineer-professional", Name: "AWS Certified DevOps Engineer - Professional",
		ExamCode: "DOP-C02", Level: model.LevelProfessional,
		PriceUSD: 300, DurationMinutes: 180, QuestionCount: 75, PassingScore: 750,
		Domains: []model.ExamDomain{
			{Name: "devops", Weight: 0.42},
			{Name: "security", Weight: 0.24},
			{Name: "compute", Weight: 0.20},
			{Name: "networking", Weight: 0.14},
		},
		Prerequisites: []string{"aws-developer-associate"},
		Related:       []string{"aws-solutions-architect-professional"},
		PreparationHours: model.PrepHours{Beginner: 190, Intermediate: 130, Advanced: 85},
	},
	{
		ID: "aws-security-specialty", Name: "AWS Certified Security - Specialty",
		ExamCode: "SCS-C02", Level: model.LevelSpecialty,
		PriceUSD: 300, DurationMinutes: 170, QuestionCount: 65, PassingScore: 750,
		Domains: []model.ExamDomain{
			{Name: "security", Weight: 0.60},
			{Name: "networking", Weight: 0.22},
			{Name: "compute", Weight: 0.18},
		},
		Prerequisites: []string{"aws-solutions-architect-associate"},
		Related:       []string{"aws-solutions-architect-professional"},
		PreparationHours: model.PrepHours{Beginner: 160, Intermediate: 110, Advanced: 70},
	},
	{
		ID: "aws-machine-learning-specialty", Name: "AWS Certified Machine Learning - Specialty",
		ExamCode: "MLS-C01", Level: model.LevelSpecialty,
		PriceUSD: 300, DurationMinutes: 180, QuestionCount: 65, PassingScore: 750,
		Domains: []model.ExamDomain{
			{Name: "machine-learning", Weight: 0.56},
			{Name: "data", Weight: 0.24},
			{Name: "compute", Weight: 0.20},
		},
		Prerequisites: []string{"aws-solutions-architect-associate"},
		Related:       []string{"aws-data-analytics-specialty"},
		PreparationHours: model.PrepHours{Beginner: 180, Intermediate: 120, Advanced: 80},
	},
	{
		ID: "aws-data-analytics-specialty", Name: "AWS Certified Data Analytics - Specialty",
		ExamCode: "DAS-C01", Level: model.LevelSpecialty,
		PriceUSD: 300, DurationMinutes: 180, QuestionCount: 65, PassingScore: 750,
		Domains: []model.ExamDomain{
			{Name: "data", Weight: 0.58},
			{Name: "databases", Weight: 0.24},
			{Name: "security", Weight: 0.18},
		},
		Prerequisites: []string{"aws-solutions-architect-associate"},
		Related:       []string{"aws-machine-learning-specialty"},
		PreparationHours: model.PrepHours{Beginner: 170, Intermediate: 115, Advanced: 75},
	},

	// Azure
	{
		ID: "azure-fundamentals", Name: "Microsoft Certified: Azure Fundamentals",
		ExamCode: "AZ-900", Level: model.LevelFoundational,
		PriceUSD: 99, DurationMinutes: 85, QuestionCount: 50, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "cloud-concepts", Weight: 0.30},
			{Name: "compute", Weight: 0.38},
			{Name: "billing", Weight: 0.32},
		},
		Prerequisites: []string{},
		Related:       []string{"azure-administrator-associate"},
		PreparationHours: model.PrepHours{Beginner: 35, Intermediate: 20, Advanced: 12},
	},
	{
		ID: "azure-administrator-associate", Name: "Microsoft Certified: Azure Administrator Associate",
		ExamCode: "AZ-104", Level: model.LevelAssociate,
		PriceUSD: 165, DurationMinutes: 120, QuestionCount: 55, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "compute", Weight: 0.28},
			{Name: "networking", Weight: 0.27},
			{Name: "storage", Weight: 0.23},
			{Name: "security", Weight: 0.22},
		},
		Prerequisites: []string{"azure-fundamentals"},
		Related:       []string{"azure-developer-associate", "azure-solutions-architect-expert"},
		PreparationHours: model.PrepHours{Beginner: 110, Intermediate: 75, Advanced: 45},
	},
	{
		ID: "azure-developer-associate", Name: "Microsoft Certified: Azure Developer Associate",
		ExamCode: "AZ-204", Level: model.LevelAssociate,
		PriceUSD: 165, DurationMinutes: 120, QuestionCount: 55, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "compute", Weight: 0.34},
			{Name: "devops", Weight: 0.26},
			{Name: "databases", Weight: 0.22},
			{Name: "security", Weight: 0.18},
		},
		Prerequisites: []string{"azure-fundamentals"},
		Related:       []string{"azure-administrator-associate"},
		PreparationHours: model.PrepHours{Beginner: 105, Intermediate: 70, Advanced: 45},
	},
	{
		ID: "azure-solutions-architect-expert", Name: "Microsoft Certified: Azure Solutions Architect Expert",
		ExamCode: "AZ-305", Level: model.LevelProfessional,
		PriceUSD: 165, DurationMinutes: 120, QuestionCount: 55, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "compute", Weight: 0.28},
			{Name: "networking", Weight: 0.25},
			{Name: "storage", Weight: 0.23},
			{Name: "security", Weight: 0.24},
		},
		Prerequisites: []string{"azure-administrator-associate"},
		Related:       []string{"azure-devops-engineer-expert"},
		PreparationHours: model.PrepHours{Beginner: 180, Intermediate: 125, Advanced: 80},
	},
	{
		ID: "azure-devops-engineer-expert", Name: "Microsoft Certified: DevOps Engineer Expert",
		ExamCode: "AZ-400", Level: model.LevelProfessional,
		PriceUSD: 165, DurationMinutes: 120, QuestionCount: 55, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "devops", Weight: 0.46},
			{Name: "compute", Weight: 0.28},
			{Name: "security", Weight: 0.26},
		},
		Prerequisites: []string{"azure-administrator-associate"},
		Related:       []string{"azure-solutions-architect-expert"},
		PreparationHours: model.PrepHours{Beginner: 170, Intermediate: 115, Advanced: 75},
	},
	{
		ID: "azure-security-engineer-associate", Name: "Microsoft Certified: Azure Security Engineer Associate",
		ExamCode: "AZ-500", Level: model.LevelAssociate,
		PriceUSD: 165, DurationMinutes: 120, QuestionCount: 55, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "security", Weight: 0.54},
			{Name: "networking", Weight: 0.24},
			{Name: "compute", Weight: 0.22},
		},
		Prerequisites: []string{"azure-fundamentals"},
		Related:       []string{"azure-administrator-associate"},
		PreparationHours: model.PrepHours{Beginner: 120, Intermediate: 80, Advanced: 50},
	},

	// GCP
	{
		ID: "gcp-cloud-digital-leader", Name: "Google Cloud Digital Leader",
		ExamCode: "CDL", Level: model.LevelFoundational,
		PriceUSD: 99, DurationMinutes: 90, QuestionCount: 50, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "cloud-concepts", Weight: 0.40},
			{Name: "compute", Weight: 0.35},
			{Name: "billing", Weight: 0.25},
		},
		Prerequisites: []string{},
		Related:       []string{"gcp-associate-cloud-engineer"},
		PreparationHours: model.PrepHours{Beginner: 35, Intermediate: 20, Advanced: 12},
	},
	{
		ID: "gcp-associate-cloud-engineer", Name: "Google Cloud Associate Cloud Engineer",
		ExamCode: "ACE", Level: model.LevelAssociate,
		PriceUSD: 125, DurationMinutes: 120, QuestionCount: 50, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "compute", Weight: 0.30},
			{Name: "networking", Weight: 0.26},
			{Name: "devops", Weight: 0.24},
			{Name: "security", Weight: 0.20},
		},
		Prerequisites: []string{"gcp-cloud-digital-leader"},
		Related:       []string{"gcp-professional-cloud-architect"},
		PreparationHours: model.PrepHours{Beginner: 100, Intermediate: 70, Advanced: 45},
	},
	{
		ID: "gcp-professional-cloud-architect", Name: "Google Cloud Professional Cloud Architect",
		ExamCode: "PCA", Level: model.LevelProfessional,
		PriceUSD: 200, DurationMinutes: 120, QuestionCount: 50, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "compute", Weight: 0.26},
			{Name: "networking", Weight: 0.26},
			{Name: "security", Weight: 0.25},
			{Name: "storage", Weight: 0.23},
		},
		Prerequisites: []string{"gcp-associate-cloud-engineer"},
		Related:       []string{"gcp-professional-data-engineer"},
		PreparationHours: model.PrepHours{Beginner: 180, Intermediate: 125, Advanced: 80},
	},
	{
		ID: "gcp-professional-data-engineer", Name: "Google Cloud Professional Data Engineer",
		ExamCode: "PDE", Level: model.LevelProfessional,
		PriceUSD: 200, DurationMinutes: 120, QuestionCount: 50, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "data", Weight: 0.50},
			{Name: "machine-learning", Weight: 0.28},
			{Name: "databases", Weight: 0.22},
		},
		Prerequisites: []string{"gcp-associate-cloud-engineer"},
		Related:       []string{"gcp-professional-cloud-architect"},
		PreparationHours: model.PrepHours{Beginner: 170, Intermediate: 115, Advanced: 75},
	},
	{
		ID: "gcp-professional-devops-engineer", Name: "Google Cloud Professional Cloud DevOps Engineer",
		ExamCode: "PCDE", Level: model.LevelProfessional,
		PriceUSD: 200, DurationMinutes: 120, QuestionCount: 50, PassingScore: 700,
		Domains: []model.ExamDomain{
			{Name: "devops", Weight: 0.48},
			{Name: "compute", Weight: 0.28},
			{Name: "security", Weight: 0.24},
		},
		Prerequisites: []string{"gcp-associate-cloud-engineer"},
		Related:       []string{"gcp-professional-cloud-architect"},
		PreparationHours: model.PrepHours{Beginner: 165, Intermediate: 110, Advanced: 70},
	},
}

// careerPathMap links certification ids to the career paths they serve. Certs
// missing here score the "no direct mapping known" tier.
var careerPathMap = map[string][]model.CareerPath{
	"aws-cloud-practitioner":               {model.PathCloudArchitect, model.PathCloudDeveloper, model.PathDevOpsEngineer},
	"aws-solutions-architect-associate":    {model.PathCloudArchitect},
	"aws-developer-associate":              {model.PathCloudDeveloper},
	"aws-sysops-administrator-associate":   {model.PathDevOpsEngineer},
	"aws-solutions-architect-professional": {model.PathCloudArchitect},
	"aws-devops-engineer-professional":     {model.PathDevOpsEngineer},
	"aws-security-specialty":               {model.PathSecurityEngineer},
	"aws-machine-learning-specialty":       {model.PathMLEngineer},
	"aws-data-analytics-specialty":         {model.PathDataEngineer},
	"azure-fundamentals":                   {model.PathCloudArchitect, model.PathCloudDeveloper, model.PathDevOpsEngineer},
	"azure-administrator-associate":        {model.PathCloudArchitect, model.PathDevOpsEngineer},
	"azure-developer-associate":            {model.PathCloudDeveloper},
	"azure-solutions-architect-expert":     {model.PathCloudArchitect},
	"azure-devops-engineer-expert":         {model.PathDevOpsEngineer},
	"azure-security-engineer-associate":    {model.PathSecurityEngineer},
	"gcp-cloud-digital-leader":             {model.PathCloudArchitect, model.PathCloudDeveloper},
	"gcp-associate-cloud-engineer":         {model.PathCloudArchitect, model.PathDevOpsEngineer},
	"gcp-professional-cloud-architect":     {model.PathCloudArchitect},
	"gcp-professional-data-engineer":       {model.PathDataEngineer},
	"gcp-professional-devops-engineer":     {model.PathDevOpsEngineer},
}

// topicWeightMap gives the per-domain weighting used for skill-gap scoring.
// Certs without an entry fall back to a neutral gap. Kept separate from the
// exam domains above: exam weighting and study-relevance weighting differ.
var topicWeightMap = map[string]map[string]float64{
	"aws-solutions-architect-associate": {
		"compute": 0.30, "networking": 0.25, "storage": 0.25, "security": 0.20,
	},
	"aws-developer-associate": {
		"compute": 0.35, "devops": 0.30, "databases": 0.20, "security": 0.15,
	},
	"aws-sysops-administrator-associate": {
		"devops": 0.35, "networking": 0.30, "compute": 0.20, "security": 0.15,
	},
	"aws-solutions-architect-professional": {
		"networking": 0.30, "compute": 0.25, "security": 0.25, "storage": 0.20,
	},
	"aws-devops-engineer-professional": {
		"devops": 0.45, "security": 0.25, "compute": 0.30,
	},
	"aws-security-specialty": {
		"security": 0.60, "networking": 0.25, "compute": 0.15,
	},
	"aws-machine-learning-specialty": {
		"machine-learning": 0.55, "data": 0.30, "compute": 0.15,
	},
	"azure-administrator-associate": {
		"compute": 0.30, "networking": 0.30, "storage": 0.20, "security": 0.20,
	},
	"azure-developer-associate": {
		"compute": 0.35, "devops": 0.30, "databases": 0.20, "security": 0.15,
	},
	"azure-solutions-architect-expert": {
		"compute": 0.30, "networking": 0.25, "storage": 0.20, "security": 0.25,
	},
	"gcp-associate-cloud-engineer": {
		"compute": 0.30, "networking": 0.25, "devops": 0.25, "security": 0.20,
	},
	"gcp-professional-cloud-architect": {
		"compute": 0.25, "networking": 0.25, "security": 0.25, "storage": 0.25,
	},
	"gcp-professional-data-engineer": {
		"data": 0.50, "machine-learning": 0.30, "databases": 0.20,
	},
}
