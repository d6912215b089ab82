package seed

import "portfolio_backend/internal/models"

const pexels = "https://images.pexels.com/photos/"

// Builtin returns a fresh copy of the demo portfolio.
func Builtin() Data {
	profile := builtinProfile()
	return Data{
		Profile: &profile,
		Projects: []models.Project{
			{
				ID:           "1",
				Title:        "Portfolio E-commerce",
				Description:  "Site e-commerce moderne avec React et Node.js",
				Category:     models.ProjectCategoryDevWeb,
				GithubURL:    "https://github.com/user/ecommerce",
				LiveURL:      "https://ecommerce-demo.com",
				Technologies: []string{"React", "Node.js", "MongoDB"},
				Image:        pexels + "196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "Security Audit Tool",
				Description:  "Outil d'audit de sécurité automatisé pour applications web",
				Category:     models.ProjectCategoryCybersec,
				GithubURL:    "https://github.com/johndoe/security-audit",
				Technologies: []string{"Python", "Flask", "SQLite", "Nmap"},
				Image:        pexels + "60504/security-protection-anti-virus-software-60504.jpeg?auto=compress&cs=tinysrgb&w=800",
				Featured:     true,
			},
		},
		Links: []models.PortfolioLink{
			{
				ID:          "1",
				Title:       "Développement Web",
				Slug:        "dev-web",
				Description: "Applications web modernes et responsive",
				Color:       "from-blue-400 to-blue-600",
				Icon:        "Code",
				IsActive:    true,
				Order:       1,
			},
			{
				ID:          "2",
				Title:       "Game Development",
				Slug:        "game-dev",
				Description: "Création de jeux vidéo et expériences interactives",
				Color:       "from-purple-400 to-purple-600",
				Icon:        "Gamepad2",
				IsActive:    true,
				Order:       2,
			},
			{
				ID:          "3",
				Title:       "Cybersecurity Analyst",
				Slug:        "cybersec",
				Description: "Sécurité informatique et analyse des menaces",
				Color:       "from-red-400 to-red-600",
				Icon:        "Shield",
				IsActive:    true,
				Order:       3,
			},
		},
		Photos: []models.Photo{
			{
				ID:             "1",
				URL:            pexels + "220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=400",
				Name:           "profile-1.jpg",
				IsProfilePhoto: true,
			},
			{
				ID:   "2",
				URL:  pexels + "771742/pexels-photo-771742.jpeg?auto=compress&cs=tinysrgb&w=400",
				Name: "profile-2.jpg",
			},
		},
	}
}

func builtinProfile() models.Profile {
	return models.Profile{
		Name:         "John Doe",
		Title:        "Développeur Full Stack & Analyste Cybersécurité",
		Bio:          "Passionné par la technologie et l'innovation, je développe des solutions web modernes tout en assurant leur sécurité.",
		Location:     "Paris, France",
		Email:        "john.doe@example.com",
		Phone:        "+33 1 23 45 67 89",
		Website:      "https://johndoe.dev",
		Github:       "https://github.com/johndoe",
		Linkedin:     "https://linkedin.com/in/johndoe",
		Twitter:      "https://twitter.com/johndoe",
		Instagram:    "https://instagram.com/johndoe",
		ProfileImage: pexels + "220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=400",
		Skills: []models.Skill{
			{ID: "1", Name: "React", Level: models.SkillLevelExpert, Category: "Frontend"},
			{ID: "2", Name: "Node.js", Level: models.SkillLevelAdvanced, Category: "Backend"},
			{ID: "3", Name: "TypeScript", Level: models.SkillLevelAdvanced, Category: "Langage"},
			{ID: "4", Name: "Python", Level: models.SkillLevelAdvanced, Category: "Langage"},
			{ID: "5", Name: "Cybersécurité", Level: models.SkillLevelExpert, Category: "Sécurité"},
			{ID: "6", Name: "Unity", Level: models.SkillLevelIntermediate, Category: "Game Dev"},
		},
		Experience: []models.Experience{
			{
				ID:           "1",
				Title:        "Développeur Full Stack Senior",
				Company:      "TechCorp",
				Location:     "Paris, France",
				StartDate:    "2022-01",
				Current:      true,
				Description:  "Développement d'applications web complexes avec React et Node.js.",
				Technologies: []string{"React", "Node.js", "TypeScript", "MongoDB"},
			},
			{
				ID:           "2",
				Title:        "Analyste Cybersécurité",
				Company:      "SecureIT",
				Location:     "Lyon, France",
				StartDate:    "2020-06",
				EndDate:      "2021-12",
				Description:  "Analyse des vulnérabilités, tests de pénétration et mise en place de politiques de sécurité.",
				Technologies: []string{"Kali Linux", "Metasploit", "Wireshark", "Python"},
			},
		},
		Education: []models.Education{
			{
				ID:          "1",
				Degree:      "Master en Cybersécurité",
				School:      "École Supérieure d'Informatique",
				Location:    "Paris, France",
				StartDate:   "2018-09",
				EndDate:     "2020-06",
				Description: "Spécialisation en sécurité des systèmes d'information et cryptographie.",
				Grade:       "Mention Très Bien",
			},
			{
				ID:          "2",
				Degree:      "Licence Informatique",
				School:      "Université de Technologie",
				Location:    "Lyon, France",
				StartDate:   "2015-09",
				EndDate:     "2018-06",
				Description: "Formation générale en informatique avec spécialisation développement.",
				Grade:       "Mention Bien",
			},
		},
		Languages: []models.Language{
			{ID: "1", Name: "Français", Level: models.LanguageLevelNative, Flag: "🇫🇷"},
			{ID: "2", Name: "Anglais", Level: models.LanguageLevelC1, Flag: "🇬🇧"},
			{ID: "3", Name: "Espagnol", Level: models.LanguageLevelB2, Flag: "🇪🇸"},
			{ID: "4", Name: "Allemand", Level: models.LanguageLevelA2, Flag: "🇩🇪"},
		},
	}
}
