package services

import "github.com/junipershade/petal/internal/models"

// ConditionAdvice groups lifestyle recommendations for one health condition.
type ConditionAdvice struct {
	Diet     []string `json:"diet"`
	Exercise []string `json:"exercise"`
	SelfCare []string `json:"self_care"`
}

var conditionAdvice = map[string]ConditionAdvice{
	"pcos": {
		Diet: []string{
			"Include low-glycemic index foods like quinoa, sweet potatoes",
			"Add omega-3 rich foods like salmon, walnuts, flaxseeds",
			"Avoid refined carbs and sugary foods",
			"Include protein with every meal",
		},
		Exercise: []string{
			"30 minutes of moderate exercise daily",
			"Strength training 2-3 times per week",
			"Yoga for stress management",
			"Walking or swimming for cardio",
		},
		SelfCare: []string{
			"Practice stress management techniques",
			"Get 7-8 hours of quality sleep",
			"Monitor blood sugar levels",
			"Regular check-ups with your doctor",
		},
	},
	"thyroid": {
		Diet: []string{
			"Include iodine-rich foods like seaweed, fish",
			"Add selenium-rich foods like Brazil nuts",
			"Avoid goitrogenic foods in excess",
			"Include zinc-rich foods like pumpkin seeds",
		},
		Exercise: []string{
			"Gentle exercises like walking, yoga",
			"Avoid over-exertion",
			"Regular but moderate activity",
			"Listen to your body's energy levels",
		},
		SelfCare: []string{
			"Take medications as prescribed",
			"Regular thyroid function tests",
			"Manage stress levels",
			"Adequate rest and sleep",
		},
	},
	"anemia": {
		Diet: []string{
			"Iron-rich foods: spinach, lentils, red meat",
			"Vitamin C with iron for better absorption",
			"Avoid tea/coffee with meals",
			"Include B12 rich foods like eggs, dairy",
		},
		Exercise: []string{
			"Start with gentle exercises",
			"Gradually increase intensity",
			"Listen to your body",
			"Rest when needed",
		},
		SelfCare: []string{
			"Regular iron supplements if prescribed",
			"Monitor energy levels",
			"Adequate sleep and rest",
			"Regular blood tests",
		},
	},
	"diabetes": {
		Diet: []string{
			"Monitor carbohydrate intake",
			"Include fiber-rich foods",
			"Regular meal timing",
			"Portion control",
		},
		Exercise: []string{
			"Regular physical activity",
			"Blood sugar monitoring",
			"Consult doctor before new exercises",
			"Stay hydrated during exercise",
		},
		SelfCare: []string{
			"Regular blood sugar monitoring",
			"Foot care and inspection",
			"Regular medical check-ups",
			"Stress management",
		},
	},
}

// LifestyleAdvice returns the advice blocks matching the user's flagged
// conditions, keyed by condition name. Empty map for users with no flags.
func LifestyleAdvice(user *models.User) map[string]ConditionAdvice {
	advice := make(map[string]ConditionAdvice)
	if user == nil {
		return advice
	}
	if user.HasPCOS {
		advice["pcos"] = conditionAdvice["pcos"]
	}
	if user.HasThyroid {
		advice["thyroid"] = conditionAdvice["thyroid"]
	}
	if user.HasAnemia {
		advice["anemia"] = conditionAdvice["anemia"]
	}
	if user.HasDiabetes {
		advice["diabetes"] = conditionAdvice["diabetes"]
	}
	return advice
}
