package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"portfolio_backend/internal/models"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-project-category", validateProjectCategory)
	mustRegister("is-skill-level", validateSkillLevel)
	mustRegister("is-language-level", validateLanguageLevel)
	mustRegister("is-section", validateSection)
}

// Empty values pass every rule below; 'required' covers them.

func validateProjectCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ProjectCategory(value).IsValid()
}

func validateSkillLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.SkillLevel(value).IsValid()
}

func validateLanguageLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.LanguageLevel(value).IsValid()
}

func validateSection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.DashboardSection(value).IsValid()
}
