package services

import (
	"math/rand"
	"sync"
	"time"
)

var healthTips = []string{
	"Stay hydrated! Drinking water can help reduce bloating during your period.",
	"Gentle exercise like yoga can help with cramps and mood swings.",
	"Practice self-care with a warm bath or heating pad for comfort.",
	"Remember, it's okay to take it easy and listen to your body.",
	"Herbal teas like chamomile can help soothe period symptoms.",
	"Getting enough sleep is crucial for hormonal balance.",
	"Eating iron-rich foods can help with energy levels during your period.",
	"Deep breathing exercises can help manage stress and anxiety.",
}

var moodQuotes = map[string][]string{
	"happy": {
		"Your joy is contagious! Keep shining!",
		"You're radiating positive energy today!",
		"Your happiness makes the world brighter!",
	},
	"sad": {
		"It's okay to not be okay. Tomorrow is a new day.",
		"You're stronger than you know. This too shall pass.",
		"Sending you virtual hugs and warm thoughts.",
	},
	"tired": {
		"Rest is not a sign of weakness, it's self-care.",
		"Take it easy today, you deserve it.",
		"Your body is asking for rest - listen to it.",
	},
	"irritated": {
		"Breathe deeply. You've got this under control.",
		"It's okay to feel frustrated. Take a moment for yourself.",
		"Remember, this feeling is temporary. You're doing great!",
	},
	"default": {
		"You are stronger than you think!",
		"Every cycle is a fresh start.",
		"Your body is amazing and doing exactly what it should.",
		"You've got this! Take care of yourself today.",
		"Remember to be kind to yourself - you're doing great!",
		"Your strength inspires others.",
		"Today is a new day full of possibilities.",
		"You are capable of amazing things!",
	},
}

var moodTips = map[string][]string{
	"sad": {
		"Try gentle yoga or meditation to lift your spirits",
		"Call a friend or family member for support",
		"Listen to your favorite uplifting music",
		"Take a walk in nature to clear your mind",
		"Sip on chamomile tea for natural calming effects",
	},
	"tired": {
		"Prioritize sleep - aim for 7-9 hours tonight",
		"Eat iron-rich foods like spinach and lentils",
		"Take short walks to boost energy naturally",
		"Stay hydrated - dehydration can cause fatigue",
		"Try gentle stretching to improve circulation",
	},
	"irritated": {
		"Practice deep breathing exercises",
		"Use lavender essential oil for calming effects",
		"Take a break from social media",
		"Try a creative activity to channel emotions",
		"Light exercise can help release tension",
	},
	"happy": {
		"Channel this positive energy into self-care",
		"This is a great time for light exercise",
		"Maintain healthy eating habits",
		"Keep up with hydration",
		"Practice gratitude journaling",
	},
}

var symptomTips = map[string][]string{
	"cramps": {
		"Use a heating pad or warm compress",
		"Try gentle yoga poses like child's pose",
		"Consider over-the-counter pain relief",
		"Drink ginger tea for natural relief",
		"Gentle abdominal massage can help",
	},
	"bloating": {
		"Stay hydrated but avoid carbonated drinks",
		"Eat smaller, more frequent meals",
		"Reduce salt intake temporarily",
		"Try peppermint tea for relief",
		"Light walking can help with digestion",
	},
	"fatigue": {
		"Listen to your body and rest when needed",
		"Eat iron-rich foods like spinach",
		"Stay well hydrated",
		"Get some natural sunlight",
		"Try gentle stretching exercises",
	},
	"mood_swings": {
		"Practice mindfulness and meditation",
		"Journal your feelings",
		"Try calming herbal teas",
		"Take warm baths with Epsom salts",
		"Listen to calming music",
	},
}

var supportiveMessages = []string{
	"It's okay, sometimes periods can be delayed due to stress, diet, or lifestyle changes.",
	"Don't worry! Period delays are completely normal and can happen for various reasons.",
	"Your body is unique and may not always follow a perfect schedule. That's normal!",
}

// SupportiveMessage picks the reassurance tier for a delayed period.
func SupportiveMessage(delayDays int) string {
	switch {
	case delayDays <= 3:
		return supportiveMessages[0]
	case delayDays <= 7:
		return supportiveMessages[1]
	default:
		return supportiveMessages[2]
	}
}

// ContentPicker selects tips and quotes from the fixed content tables. The
// random source is injected so tests can pin a seed.
type ContentPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewContentPicker() *ContentPicker {
	return NewSeededContentPicker(time.Now().UnixNano())
}

func NewSeededContentPicker(seed int64) *ContentPicker {
	return &ContentPicker{rng: rand.New(rand.NewSource(seed))}
}

func (picker *ContentPicker) HealthTip() string {
	return healthTips[picker.intn(len(healthTips))]
}

// MotivationalQuote returns a quote for the given mood bucket, falling back
// to the general pool for unknown or empty moods.
func (picker *ContentPicker) MotivationalQuote(mood string) string {
	pool, ok := moodQuotes[mood]
	if !ok {
		pool = moodQuotes["default"]
	}
	return pool[picker.intn(len(pool))]
}

// TipsForMood returns the full tip list for a mood; happy is the fallback.
func TipsForMood(mood string) []string {
	if tips, ok := moodTips[mood]; ok {
		return tips
	}
	return moodTips["happy"]
}

// TipsForSymptom returns the full tip list for a symptom; cramps is the
// fallback.
func TipsForSymptom(symptom string) []string {
	if tips, ok := symptomTips[symptom]; ok {
		return tips
	}
	return symptomTips["cramps"]
}

func (picker *ContentPicker) intn(n int) int {
	picker.mu.Lock()
	defer picker.mu.Unlock()
	return picker.rng.Intn(n)
}
