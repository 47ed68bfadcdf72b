package service

import (
	"encoding/json"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// capitalizeWord upper-cases the first rune of a single word, the way
// language names are stored ("english" -> "English").
func capitalizeWord(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func criteriaJSON(threshold float64, minTasks int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"accuracy_threshold": %.2f, "min_tasks_completed": %d}`, threshold, minTasks))
}

// fallbackRoadmaps are the hand-written curricula used whenever generation is
// disabled or fails, keyed by language then CEFR level.
var fallbackRoadmaps = map[string]map[string]*RoadmapPlan{
	"english": {
		"A0": {Modules: []RoadmapModulePlan{
			{
				Title:       "Introduction to English Basics",
				Description: "Learn the English alphabet, basic pronunciation, and simple greetings.",
				Objectives: []string{
					"Master the English alphabet and basic sounds",
					"Learn common greetings and introductions",
					"Understand basic pronouns (I, you, he, she)",
					"Form simple present tense sentences",
				},
				CheckpointCriteria: criteriaJSON(0.80, 8),
			},
			{
				Title:       "Numbers and Everyday Vocabulary",
				Description: "Learn numbers, colors, and common objects in daily life.",
				Objectives: []string{
					"Count from 1 to 100",
					"Name common colors and objects",
					"Tell the time (basic)",
					"Use basic adjectives to describe things",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
			{
				Title:       "Simple Conversations",
				Description: "Practice basic conversational phrases and questions.",
				Objectives: []string{
					`Ask and answer "What is this?"`,
					"Express likes and dislikes",
					"Form basic yes/no questions",
					"Use common courtesy phrases",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
		}},
		"A1": {Modules: []RoadmapModulePlan{
			{
				Title:       "Present Tense Mastery",
				Description: "Master present simple and present continuous tenses.",
				Objectives: []string{
					"Use present simple for habits and facts",
					"Form present continuous for ongoing actions",
					"Understand the difference between the two tenses",
					"Use time expressions correctly",
				},
				CheckpointCriteria: criteriaJSON(0.85, 12),
			},
			{
				Title:       "Daily Routines and Activities",
				Description: "Learn vocabulary and grammar for describing daily activities.",
				Objectives: []string{
					"Describe your daily routine",
					"Use frequency adverbs (always, sometimes, never)",
					"Talk about hobbies and interests",
					"Ask about others' routines",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
			{
				Title:       "Places and Directions",
				Description: "Learn to describe locations and give simple directions.",
				Objectives: []string{
					"Use prepositions of place (in, on, at, near)",
					"Name common places (shop, bank, school)",
					"Give and follow simple directions",
					`Use "there is/there are" structures`,
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
		}},
		"B1": {Modules: []RoadmapModulePlan{
			{
				Title:       "Past Tenses and Storytelling",
				Description: "Master past simple and past continuous for narrating events.",
				Objectives: []string{
					"Use past simple for completed actions",
					"Form past continuous for background actions",
					"Tell stories about past experiences",
					"Use past time expressions correctly",
				},
				CheckpointCriteria: criteriaJSON(0.85, 12),
			},
			{
				Title:       "Making Plans and Future Forms",
				Description: "Learn different ways to talk about the future.",
				Objectives: []string{
					`Use "will" for predictions and decisions`,
					`Use "going to" for plans and intentions`,
					"Form present continuous for arrangements",
					"Express probability and possibility",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
			{
				Title:       "Expressing Opinions and Preferences",
				Description: "Learn to express and justify opinions clearly.",
				Objectives: []string{
					"State opinions using appropriate phrases",
					"Give reasons and examples",
					"Agree and disagree politely",
					"Compare and contrast ideas",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
		}},
	},
	"kazakh": {
		"A0": {Modules: []RoadmapModulePlan{
			{
				Title:       "Kazakh Alphabet and Pronunciation",
				Description: "Learn the Kazakh alphabet, special characters, and basic pronunciation.",
				Objectives: []string{
					"Master the 42-letter Kazakh alphabet",
					"Pronounce special letters (ә, ғ, қ, ң, ө, ұ, ү, h, і)",
					"Learn basic greetings (Сәлеметсіз бе, Сәлем)",
					"Understand vowel harmony basics",
				},
				CheckpointCriteria: criteriaJSON(0.80, 8),
			},
			{
				Title:       "Basic Grammar and Simple Sentences",
				Description: "Learn basic sentence structure and common words.",
				Objectives: []string{
					"Form simple sentences with Subject-Object-Verb order",
					"Use personal pronouns (мен, сен, ол)",
					"Learn numbers 1-100",
					"Use basic question words (кім, не, қайда)",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
			{
				Title:       "Introduction and Daily Phrases",
				Description: "Master essential phrases for daily interactions.",
				Objectives: []string{
					"Introduce yourself (Менің атым...)",
					"Ask basic questions (Сіздің атыңыз кім?)",
					"Express gratitude (Рахмет, Үлкен рахмет)",
					"Use polite forms and courtesy phrases",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
		}},
		"A1": {Modules: []RoadmapModulePlan{
			{
				Title:       "Kazakh Case System Basics",
				Description: "Introduction to the Kazakh case system.",
				Objectives: []string{
					"Understand nominative case (basic form)",
					"Use accusative case for direct objects",
					"Learn dative-locative case (барамын мектепке)",
					"Practice ablative case (from)",
				},
				CheckpointCriteria: criteriaJSON(0.85, 12),
			},
			{
				Title:       "Possessive Forms and Family",
				Description: "Learn possessive suffixes and family vocabulary.",
				Objectives: []string{
					"Use possessive endings (менің кітабым)",
					"Name family members",
					"Form possessive questions",
					"Describe family relationships",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
			{
				Title:       "Present Tense Verbs",
				Description: "Master present tense verb conjugations.",
				Objectives: []string{
					"Conjugate verbs in present continuous (оқып жатырмын)",
					"Use simple present tense (оқимын)",
					"Form negative sentences",
					"Ask yes/no questions with verbs",
				},
				CheckpointCriteria: criteriaJSON(0.85, 10),
			},
		}},
	},
}

// FallbackRoadmap returns the static curriculum for a language+level pair,
// or a generic three-module plan when no hand-written one exists.
func FallbackRoadmap(language, cefrLevel string) *RoadmapPlan {
	if byLevel, ok := fallbackRoadmaps[language]; ok {
		if plan, ok := byLevel[cefrLevel]; ok {
			return plan
		}
	}

	title := capitalizeWord(language)
	return &RoadmapPlan{Modules: []RoadmapModulePlan{
		{
			Title:              fmt.Sprintf("%s Module 1", title),
			Description:        fmt.Sprintf("Introduction to %s at %s level", title, cefrLevel),
			Objectives:         []string{"Learn basic vocabulary", "Practice grammar", "Improve comprehension"},
			CheckpointCriteria: criteriaJSON(0.85, 10),
		},
		{
			Title:              fmt.Sprintf("%s Module 2", title),
			Description:        fmt.Sprintf("Intermediate %s at %s level", title, cefrLevel),
			Objectives:         []string{"Expand vocabulary", "Master key grammar", "Develop fluency"},
			CheckpointCriteria: criteriaJSON(0.85, 10),
		},
		{
			Title:              fmt.Sprintf("%s Module 3", title),
			Description:        fmt.Sprintf("Advanced %s at %s level", title, cefrLevel),
			Objectives:         []string{"Apply knowledge", "Practice conversation", "Achieve proficiency"},
			CheckpointCriteria: criteriaJSON(0.85, 10),
		},
	}}
}

// FallbackDialogueReply is the neutral tutor turn used when generation fails;
// the conversation continues without corrections rather than erroring out.
func FallbackDialogueReply() *DialogueReply {
	return &DialogueReply{
		Response:      "I understand. Please continue.",
		Corrections:   json.RawMessage("[]"),
		Reformulation: "",
	}
}
