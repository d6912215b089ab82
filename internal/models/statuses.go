package models

type ProjectCategory string
type SkillLevel string
type LanguageLevel string
type DashboardSection string

const (
	ProjectCategoryDevWeb   ProjectCategory = "dev_web"
	ProjectCategoryGameDev  ProjectCategory = "game_dev"
	ProjectCategoryCybersec ProjectCategory = "cybersec"

	SkillLevelBeginner     SkillLevel = "Débutant"
	SkillLevelIntermediate SkillLevel = "Intermédiaire"
	SkillLevelAdvanced     SkillLevel = "Avancé"
	SkillLevelExpert       SkillLevel = "Expert"

	LanguageLevelA1     LanguageLevel = "A1"
	LanguageLevelA2     LanguageLevel = "A2"
	LanguageLevelB1     LanguageLevel = "B1"
	LanguageLevelB2     LanguageLevel = "B2"
	LanguageLevelC1     LanguageLevel = "C1"
	LanguageLevelC2     LanguageLevel = "C2"
	LanguageLevelNative LanguageLevel = "Natif"

	SectionOverview       DashboardSection = "overview"
	SectionProfile        DashboardSection = "profile"
	SectionProjects       DashboardSection = "projects"
	SectionGallery        DashboardSection = "gallery"
	SectionPortfolioLinks DashboardSection = "portfolio-links"
)

// ProjectCategories lists categories in the order the dashboard offers them.
var ProjectCategories = []struct {
	Value ProjectCategory
	Label string
}{
	{ProjectCategoryDevWeb, "Développement Web"},
	{ProjectCategoryGameDev, "Game Development"},
	{ProjectCategoryCybersec, "Cybersecurity"},
}

func (c ProjectCategory) IsValid() bool {
	switch c {
	case ProjectCategoryDevWeb, ProjectCategoryGameDev, ProjectCategoryCybersec:
		return true
	}
	return false
}

// Label returns the human-readable category name, or the raw value when unknown.
func (c ProjectCategory) Label() string {
	for _, pc := range ProjectCategories {
		if pc.Value == c {
			return pc.Label
		}
	}
	return string(c)
}

func (l SkillLevel) IsValid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

func (l LanguageLevel) IsValid() bool {
	switch l {
	case LanguageLevelA1, LanguageLevelA2, LanguageLevelB1, LanguageLevelB2,
		LanguageLevelC1, LanguageLevelC2, LanguageLevelNative:
		return true
	}
	return false
}

// DashboardSections is the fixed navigation order of the dashboard.
var DashboardSections = []DashboardSection{
	SectionOverview,
	SectionProfile,
	SectionProjects,
	SectionGallery,
	SectionPortfolioLinks,
}

func (s DashboardSection) IsValid() bool {
	for _, known := range DashboardSections {
		if s == known {
			return true
		}
	}
	return false
}

func (s DashboardSection) Label() string {
	switch s {
	case SectionOverview:
		return "Vue d'ensemble"
	case SectionProfile:
		return "Profil"
	case SectionProjects:
		return "Projets"
	case SectionGallery:
		return "Galerie"
	case SectionPortfolioLinks:
		return "Liens Portfolio"
	}
	return string(s)
}

// ParseSection falls back to the overview for empty or unknown input.
func ParseSection(raw string) DashboardSection {
	s := DashboardSection(raw)
	if !s.IsValid() {
		return SectionOverview
	}
	return s
}
