package aggregator

import "mavita-score/internal/models"

// 指标 ID
const (
	IndicatorGeneralHealth    = "general-health"
	IndicatorSleepHealth      = "sleep-health"
	IndicatorDiabetesRisk     = "diabetes-risk"
	IndicatorMentalHealth     = "mental-health"
	IndicatorHypertensionRisk = "hypertension-risk"
	IndicatorObesityRisk      = "obesity-risk"
	IndicatorLifestyleRisk    = "lifestyle-risk"
)

// Definition 指标定义：对哪些因子求和、上限、分档
type Definition struct {
	ID       string
	Title    string
	Primary  bool
	Order    int
	Factors  []models.Factor
	MaxScore int
	Ranges   []models.Range
}

// catalog 指标注册表（顺序即返回顺序，综合健康为主指标）
// 分值为风险分：0 最好，越高越差。
var catalog = []Definition{
	{
		ID:      IndicatorGeneralHealth,
		Title:   "Saúde Geral",
		Primary: true,
		Order:   1,
		Factors: []models.Factor{
			models.FactorAge,
			models.FactorBMI,
			models.FactorHealthFeeling,
			models.FactorChronicConditions,
			models.FactorParentalConditions,
		},
		MaxScore: 62,
		Ranges:   threeBands(62, 12, 37, "Ótimo", "Atenção", "Crítico"),
	},
	{
		ID:    IndicatorSleepHealth,
		Title: "Saúde do Sono",
		Order: 2,
		Factors: []models.Factor{
			models.FactorSleepHours,
			models.FactorSleepDifficulty,
			models.FactorNightAwakening,
			models.FactorWakeUpMood,
		},
		MaxScore: 16,
		Ranges:   threeBands(16, 5, 10, "Bom", "Regular", "Ruim"),
	},
	{
		ID:    IndicatorDiabetesRisk,
		Title: "Risco de Diabetes",
		Order: 3,
		Factors: []models.Factor{
			models.FactorBMI,
			models.FactorDiabetesSymptoms,
			models.FactorSleepDifficulty,
			models.FactorChronicConditions,
			models.FactorParentalConditions,
		},
		MaxScore: 22,
		Ranges:   threeBands(22, 6, 14, "Baixo", "Moderado", "Alto"),
	},
	{
		ID:    IndicatorMentalHealth,
		Title: "Saúde Mental",
		Order: 4,
		Factors: []models.Factor{
			models.FactorAnxietyShortnessBreath,
			models.FactorStressLevel,
			models.FactorSadnessLevel,
		},
		MaxScore: 12,
		Ranges:   threeBands(12, 3, 7, "Boa", "Atenção", "Alto risco"),
	},
	{
		ID:    IndicatorHypertensionRisk,
		Title: "Ris. Hipertensão",
		Order: 5,
		Factors: []models.Factor{
			models.FactorAlcoholConsumption,
			models.FactorHeadacheDizziness,
			models.FactorChronicConditions,
			models.FactorParentalConditions,
		},
		MaxScore: 18,
		Ranges:   threeBands(18, 4, 11, "Baixo", "Moderado", "Alto"),
	},
	{
		ID:    IndicatorObesityRisk,
		Title: "Risco de Obesidade",
		Order: 6,
		Factors: []models.Factor{
			models.FactorBMI,
			models.FactorPhysicalActivity,
			models.FactorDiet,
			models.FactorSleepDifficulty,
			models.FactorChronicConditions,
			models.FactorParentalConditions,
		},
		MaxScore: 26,
		Ranges:   threeBands(26, 8, 17, "Baixo", "Moderado", "Alto"),
	},
	{
		ID:    IndicatorLifestyleRisk,
		Title: "Estilo de Vida",
		Order: 7,
		Factors: []models.Factor{
			models.FactorSmoking,
			models.FactorAlcoholConsumption,
			models.FactorPhysicalActivity,
			models.FactorDiet,
			models.FactorSleepDifficulty,
		},
		MaxScore: 20,
		Ranges:   threeBands(20, 6, 13, "Saudável", "Moderado", "Alto"),
	},
}

// Catalog 返回指标定义的副本（按返回顺序）
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	for i, def := range catalog {
		def.Factors = append([]models.Factor(nil), def.Factors...)
		def.Ranges = append([]models.Range(nil), def.Ranges...)
		out[i] = def
	}
	return out
}

// Lookup 按 ID 查找指标定义
func Lookup(id string) (Definition, bool) {
	for _, def := range Catalog() {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
