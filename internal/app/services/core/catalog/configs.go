package catalog

import (
	"calculator-service/internal/app/models"
	"calculator-service/internal/app/services/core/scoring"
	"time"
)

const (
	stepQuestions = "questions"
	versionOne    = "1.0.0"
)

func singleStep(title string) []models.CalculatorStep {
	return []models.CalculatorStep{
		{ID: stepQuestions, Title: title, Order: 1, Validation: true},
	}
}

func auditConfig() *models.CalculatorConfig {
	fields := questionFields(stepQuestions, "min=0,max=4", scoring.AUDITFields[:8], []string{
		"How often do you have a drink containing alcohol?",
		"How many drinks containing alcohol do you have on a typical day when you are drinking?",
		"How often do you have six or more drinks on one occasion?",
		"How often during the last year have you found that you were not able to stop drinking once you had started?",
		"How often during the last year have you failed to do what was normally expected of you because of drinking?",
		"How often during the last year have you needed a first drink in the morning to get yourself going?",
		"How often during the last year have you had a feeling of guilt or remorse after drinking?",
		"How often during the last year have you been unable to remember what happened the night before because of your drinking?",
	})
	fields = append(fields, questionFields(stepQuestions, "choice=0 2 4", scoring.AUDITFields[8:], []string{
		"Have you or someone else been injured because of your drinking?",
		"Has a relative, friend, doctor or other health worker been concerned about your drinking or suggested you cut down?",
	})...)

	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeAUDIT,
		Name:              "AUDIT",
		Version:           versionOne,
		Category:          "addiction",
		Theme:             "alcohol",
		MinAge:            intPtr(16),
		EstimatedDuration: 3 * time.Minute,
		Steps:             singleStep("Alcohol use"),
		Fields:            fields,
	}
}

func epdsConfig() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeEPDS,
		Name:              "Edinburgh Postnatal Depression Scale",
		Version:           versionOne,
		Category:          "mental_health",
		Theme:             "pregnancy",
		DefaultGender:     models.GenderPtr(models.GenderFemale),
		MinAge:            intPtr(14),
		AllowedGenders:    []models.Gender{models.GenderFemale},
		EstimatedDuration: 5 * time.Minute,
		Steps:             singleStep("In the past 7 days"),
		Fields: questionFields(stepQuestions, "min=0,max=3", scoring.EPDSFields, []string{
			"I have been able to laugh and see the funny side of things",
			"I have looked forward with enjoyment to things",
			"I have blamed myself unnecessarily when things went wrong",
			"I have been anxious or worried for no good reason",
			"I have felt scared or panicky for no very good reason",
			"Things have been getting on top of me",
			"I have been so unhappy that I have had difficulty sleeping",
			"I have felt sad or miserable",
			"I have been so unhappy that I have been crying",
			"The thought of harming myself has occurred to me",
		}),
	}
}

func gcsConfig() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeGCS,
		Name:              "Glasgow Coma Scale",
		Version:           versionOne,
		Category:          "emergency",
		Theme:             "neurology",
		EstimatedDuration: time.Minute,
		ResetPatient:      true,
		Steps:             singleStep("Best response"),
		Fields: []models.FieldDefinition{
			{ID: scoring.GCSEyeField, StepID: stepQuestions, Label: "Eye opening", Constraint: "min=1,max=4"},
			{ID: scoring.GCSVerbalField, StepID: stepQuestions, Label: "Verbal response", Constraint: "min=1,max=5"},
			{ID: scoring.GCSMotorField, StepID: stepQuestions, Label: "Motor response", Constraint: "min=1,max=6"},
		},
	}
}

func ipssConfig() *models.CalculatorConfig {
	fields := questionFields("symptoms", "min=0,max=5", scoring.IPSSFields, []string{
		"Incomplete emptying",
		"Frequency",
		"Intermittency",
		"Urgency",
		"Weak stream",
		"Straining",
		"Nocturia",
	})
	fields = append(fields, models.FieldDefinition{
		ID:         scoring.IPSSQualityOfLifeField,
		StepID:     "quality_of_life",
		Label:      "If you were to spend the rest of your life with your urinary condition the way it is now, how would you feel about that?",
		Constraint: "min=0,max=6",
	})

	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeIPSS,
		Name:              "International Prostate Symptom Score",
		Version:           versionOne,
		Category:          "urology",
		Theme:             "prostate",
		DefaultGender:     models.GenderPtr(models.GenderMale),
		MinAge:            intPtr(18),
		AllowedGenders:    []models.Gender{models.GenderMale},
		EstimatedDuration: 4 * time.Minute,
		Steps: []models.CalculatorStep{
			{ID: "symptoms", Title: "Urinary symptoms", Order: 1, Validation: true},
			{ID: "quality_of_life", Title: "Quality of life", Order: 2, Validation: true},
		},
		Fields: fields,
	}
}

func puqeConfig() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypePUQE,
		Name:              "PUQE-24",
		Version:           versionOne,
		Category:          "obstetrics",
		Theme:             "pregnancy",
		DefaultGender:     models.GenderPtr(models.GenderFemale),
		AllowedGenders:    []models.Gender{models.GenderFemale},
		EstimatedDuration: time.Minute,
		Steps:             singleStep("In the last 24 hours"),
		Fields: questionFields(stepQuestions, "min=1,max=5", scoring.PUQEFields, []string{
			"For how long have you felt nauseated or sick to your stomach?",
			"Have you vomited or thrown up?",
			"How many times have you had retching or dry heaves without bringing anything up?",
		}),
	}
}

func who5Config() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeWHO5,
		Name:              "WHO-5 Well-Being Index",
		Version:           versionOne,
		Category:          "mental_health",
		Theme:             "well_being",
		MinAge:            intPtr(9),
		EstimatedDuration: 2 * time.Minute,
		Steps:             singleStep("Over the last two weeks"),
		Fields: questionFields(stepQuestions, "min=0,max=5", scoring.WHO5Fields, []string{
			"I have felt cheerful and in good spirits",
			"I have felt calm and relaxed",
			"I have felt active and vigorous",
			"I woke up feeling fresh and rested",
			"My daily life has been filled with things that interest me",
		}),
	}
}

func westleyCroupConfig() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeWestleyCroup,
		Name:              "Westley Croup Score",
		Version:           versionOne,
		Category:          "pediatrics",
		Theme:             "respiratory",
		DefaultAge:        intPtr(2),
		MaxAge:            intPtr(17),
		EstimatedDuration: time.Minute,
		ResetPatient:      true,
		Steps:             singleStep("Clinical findings"),
		Fields: []models.FieldDefinition{
			{ID: scoring.WestleyConsciousnessField, StepID: stepQuestions, Label: "Level of consciousness", Constraint: "choice=0 5", Default: floatPtr(0)},
			{ID: scoring.WestleyCyanosisField, StepID: stepQuestions, Label: "Cyanosis", Constraint: "choice=0 4 5", Default: floatPtr(0)},
			{ID: scoring.WestleyStridorField, StepID: stepQuestions, Label: "Stridor", Constraint: "min=0,max=2"},
			{ID: scoring.WestleyAirEntryField, StepID: stepQuestions, Label: "Air entry", Constraint: "min=0,max=2"},
			{ID: scoring.WestleyRetractionsField, StepID: stepQuestions, Label: "Retractions", Constraint: "min=0,max=3"},
		},
	}
}

func danpssConfig() *models.CalculatorConfig {
	const constraint = "min=0,max=3"

	var fields []models.FieldDefinition
	steps := []struct {
		id        string
		questions []int
	}{
		{id: "voiding", questions: []int{1, 2, 3, 4}},
		{id: "storage", questions: []int{5, 6, 7, 8, 9, 10}},
		{id: "sexual", questions: []int{11, 12}},
	}
	for _, step := range steps {
		for _, n := range step.questions {
			fields = append(fields,
				models.FieldDefinition{ID: scoring.DANPSSSymptomField(n), StepID: step.id, Label: danpssLabels[n-1] + " (symptom)", Constraint: constraint},
				models.FieldDefinition{ID: scoring.DANPSSBotherField(n), StepID: step.id, Label: danpssLabels[n-1] + " (bother)", Constraint: constraint},
			)
		}
	}

	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeDANPSS,
		Name:              "Danish Prostate Symptom Score",
		Version:           versionOne,
		Category:          "urology",
		Theme:             "prostate",
		DefaultGender:     models.GenderPtr(models.GenderMale),
		MinAge:            intPtr(18),
		AllowedGenders:    []models.Gender{models.GenderMale},
		EstimatedDuration: 6 * time.Minute,
		Steps: []models.CalculatorStep{
			{ID: "voiding", Title: "Voiding", Order: 1, Validation: true},
			{ID: "storage", Title: "Storage", Order: 2, Validation: true},
			{ID: "sexual", Title: "Sexual function", Order: 3, Validation: false},
		},
		Fields: fields,
	}
}

var danpssLabels = []string{
	"Weak stream",
	"Straining",
	"Intermittency",
	"Incomplete emptying",
	"Urgency",
	"Urge incontinence",
	"Stress incontinence",
	"Frequency",
	"Nocturia",
	"Post-void dribbling",
	"Erectile function",
	"Ejaculation",
}

func cardiovascularConfig() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypeCardiovascular,
		Name:              "Cardiovascular Risk (SCORE)",
		Version:           versionOne,
		Category:          "cardiology",
		Theme:             "risk",
		DefaultAge:        intPtr(50),
		MinAge:            intPtr(18),
		MaxAge:            intPtr(110),
		AllowedGenders:    []models.Gender{models.GenderMale, models.GenderFemale},
		EstimatedDuration: 2 * time.Minute,
		Steps: []models.CalculatorStep{
			{ID: "current", Title: "Current risk factors", Order: 1, Validation: true},
			{ID: "target", Title: "Treatment targets", Order: 2, Validation: true},
		},
		Fields: []models.FieldDefinition{
			{ID: scoring.CardiovascularSmokingField, StepID: "current", Label: "Smoker", Constraint: "choice=0 1", Default: floatPtr(0)},
			{ID: scoring.CardiovascularSystolicBPField, StepID: "current", Label: "Systolic blood pressure (mmHg)", Constraint: "min=60,max=260"},
			{ID: scoring.CardiovascularLDLField, StepID: "current", Label: "LDL cholesterol (mmol/L)", Constraint: "min=0.5,max=15"},
			{ID: scoring.CardiovascularTargetBPField, StepID: "target", Label: "Target systolic blood pressure (mmHg)", Constraint: "min=60,max=260", Default: floatPtr(120)},
			{ID: scoring.CardiovascularTargetLDLField, StepID: "target", Label: "Target LDL cholesterol (mmol/L)", Constraint: "min=0.5,max=15", Default: floatPtr(2.6)},
			{ID: scoring.CardiovascularTargetSmokingField, StepID: "target", Label: "Smoker after intervention", Constraint: "choice=0 1", Default: floatPtr(0)},
		},
	}
}

func pediatricDosingConfig() *models.CalculatorConfig {
	return &models.CalculatorConfig{
		Type:              models.CalculatorTypePediatricDosing,
		Name:              "Pediatric Dosing",
		Version:           versionOne,
		Category:          "pediatrics",
		Theme:             "medication",
		MaxAge:            intPtr(17),
		EstimatedDuration: time.Minute,
		ResetPatient:      true,
		Steps:             singleStep("Child and drug"),
		Fields: []models.FieldDefinition{
			{ID: scoring.PediatricWeightField, StepID: stepQuestions, Label: "Weight (kg)", Constraint: "gt=0,max=150"},
			{ID: scoring.PediatricDrugField, StepID: stepQuestions, Label: "Drug (0 paracetamol, 1 ibuprofen)", Constraint: "choice=0 1", Default: floatPtr(0)},
		},
	}
}
