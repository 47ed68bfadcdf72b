// Seeds starter learning content: placement tests for English and Kazakh,
// dialogue scenarios, and sample task templates for existing modules.
//
// Safe to run repeatedly. Existing active placement tests and scenarios are
// kept; only missing content is created. Task templates are added to modules
// that have none.
//
// Usage: go run scripts/seed_content.go
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"
	"lingua_backend/pkg/database"
	"lingua_backend/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedPlacementTests(db); err != nil {
		log.Fatalf("Seeding placement tests failed: %v", err)
	}
	if err := seedDialogueScenarios(db); err != nil {
		log.Fatalf("Seeding dialogue scenarios failed: %v", err)
	}
	if err := seedTaskTemplates(db); err != nil {
		log.Fatalf("Seeding task templates failed: %v", err)
	}

	log.Println("Seeding complete")
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("marshal seed data: %v", err)
	}
	return data
}

type seedItem struct {
	ItemType      model.PlacementItemType
	QuestionText  map[string]string
	CorrectAnswer string
	Options       []string
	Weight        float64
}

func seedPlacementTests(db *gorm.DB) error {
	for language, items := range placementItems() {
		var count int64
		db.Model(&model.PlacementTest{}).
			Where("language = ? AND is_active = ?", language, true).
			Count(&count)
		if count > 0 {
			log.Printf("Active %s placement test exists, skipping", language)
			continue
		}

		lang := language
		rows := items
		err := db.Transaction(func(tx *gorm.DB) error {
			test := &model.PlacementTest{
				Language:   lang,
				TotalItems: len(rows),
				IsActive:   true,
			}
			if err := tx.Create(test).Error; err != nil {
				return err
			}
			for i, item := range rows {
				row := model.PlacementTestItem{
					TestID:           test.ID,
					ItemType:         item.ItemType,
					QuestionText:     mustJSON(item.QuestionText),
					CorrectAnswer:    item.CorrectAnswer,
					DifficultyWeight: item.Weight,
					Order:            i + 1,
				}
				if item.Options != nil {
					row.Options = mustJSON(item.Options)
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("Created %s placement test with %d items", lang, len(rows))
	}
	return nil
}

func placementItems() map[string][]seedItem {
	return map[string][]seedItem{
		model.LanguageEnglish: {
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"en": "What is your name?", "question": "Choose the correct response:"},
				CorrectAnswer: "my name is john",
				Options:       []string{"my name is john", "i am name john", "name my is john", "john is name my"},
				Weight:        0.5,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"en": "She ___ to school every day.", "question": "Fill in the blank:"},
				CorrectAnswer: "goes",
				Options:       []string{"go", "goes", "going", "gone"},
				Weight:        0.8,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"en": "I ___ studying English for two years.", "hint": "present perfect continuous"},
				CorrectAnswer: "have been",
				Weight:        1.0,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"en": "If I ___ rich, I would travel the world.", "question": "Choose the correct form:"},
				CorrectAnswer: "were",
				Options:       []string{"am", "was", "were", "be"},
				Weight:        1.2,
			},
			{
				ItemType:      model.ItemTranslation,
				QuestionText:  map[string]string{"en": "Translate to English: \"Привет, как дела?\""},
				CorrectAnswer: "hello, how are you",
				Weight:        1.0,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"en": "The book ___ by millions of people.", "question": "Choose passive voice:"},
				CorrectAnswer: "was read",
				Options:       []string{"read", "was read", "is reading", "reads"},
				Weight:        1.3,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"en": "She is good ___ playing piano.", "hint": "preposition"},
				CorrectAnswer: "at",
				Weight:        0.8,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"en": "Which sentence is grammatically correct?"},
				CorrectAnswer: "i have never been to paris",
				Options:       []string{"i have never been to paris", "i never have been to paris", "i have been never to paris", "never i have been to paris"},
				Weight:        1.1,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"en": "Despite ___ tired, she continued working.", "hint": "gerund form"},
				CorrectAnswer: "being",
				Weight:        1.4,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"en": "I wish I ___ speak Spanish fluently.", "question": "Choose the correct form:"},
				CorrectAnswer: "could",
				Options:       []string{"can", "could", "will", "would"},
				Weight:        1.3,
			},
			{
				ItemType:      model.ItemTranslation,
				QuestionText:  map[string]string{"en": "Translate: \"Where is the library?\""},
				CorrectAnswer: "where is the library",
				Weight:        0.6,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"en": "The project ___ completed by next week.", "hint": "future passive"},
				CorrectAnswer: "will be",
				Weight:        1.5,
			},
		},
		model.LanguageKazakh: {
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"kk": "Сәлеметсіз бе?", "question": "Choose the correct response:"},
				CorrectAnswer: "сәлеметсіз бе",
				Options:       []string{"сәлеметсіз бе", "сәлем", "қош келдіңіз", "рахмет"},
				Weight:        0.5,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"kk": "Мен ___ барамын.", "question": "Fill in the blank (to school):"},
				CorrectAnswer: "мектепке",
				Options:       []string{"мектеп", "мектепке", "мектепте", "мектептен"},
				Weight:        0.8,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"kk": "Бұл менің ___", "hint": "my book"},
				CorrectAnswer: "кітабым",
				Weight:        0.7,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"kk": "Choose the correct plural form of \"бала\" (child):"},
				CorrectAnswer: "балалар",
				Options:       []string{"балалар", "балалер", "балақар", "балатар"},
				Weight:        0.9,
			},
			{
				ItemType:      model.ItemTranslation,
				QuestionText:  map[string]string{"en": "Translate to Kazakh: \"Hello, how are you?\""},
				CorrectAnswer: "сәлеметсіз бе, қалыңыз қалай",
				Weight:        1.0,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"kk": "Мен кітап ___", "question": "Choose correct form (I am reading):"},
				CorrectAnswer: "оқып жатырмын",
				Options:       []string{"оқимын", "оқып жатырмын", "оқыдым", "оқығым келеді"},
				Weight:        1.1,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"kk": "Ол үйде ___", "hint": "at home"},
				CorrectAnswer: "отыр",
				Weight:        1.0,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"kk": "Which is the correct possessive form? (his book)"},
				CorrectAnswer: "оның кітабы",
				Options:       []string{"оның кітабы", "оның кітабым", "оның кітабың", "оның кітаптар"},
				Weight:        1.2,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"kk": "Біз ертең Астанаға ___", "hint": "we will go"},
				CorrectAnswer: "барамыз",
				Weight:        1.3,
			},
			{
				ItemType:      model.ItemMultipleChoice,
				QuestionText:  map[string]string{"kk": "Choose the correct past tense form: (I went)"},
				CorrectAnswer: "мен бардым",
				Options:       []string{"мен барамын", "мен бардым", "мен барғам келеді", "мен бара жатырмын"},
				Weight:        1.2,
			},
			{
				ItemType:      model.ItemTranslation,
				QuestionText:  map[string]string{"en": "Translate: \"Thank you very much\""},
				CorrectAnswer: "рахмет сізге",
				Weight:        0.8,
			},
			{
				ItemType:      model.ItemCloze,
				QuestionText:  map[string]string{"kk": "Сен қайда ___?", "hint": "where are you going?"},
				CorrectAnswer: "барасың",
				Weight:        1.4,
			},
		},
	}
}

func seedDialogueScenarios(db *gorm.DB) error {
	scenarios := []model.DialogueScenario{
		{
			Title:              "At a Café",
			Language:           model.LanguageEnglish,
			CEFRLevel:          model.LevelA1,
			ContextDescription: "You are at a café and want to order a coffee and a sandwich. Practice ordering food and drinks politely.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Meeting a Friend",
			Language:           model.LanguageEnglish,
			CEFRLevel:          model.LevelA1,
			ContextDescription: "You are meeting a friend you haven't seen in a while. Practice greeting, asking how they are, and making small talk.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Shopping for Clothes",
			Language:           model.LanguageEnglish,
			CEFRLevel:          model.LevelA2,
			ContextDescription: "You are in a clothing store looking for a new shirt. Practice asking for sizes, colors, and prices.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Job Interview",
			Language:           model.LanguageEnglish,
			CEFRLevel:          model.LevelB1,
			ContextDescription: "You are in a job interview. Practice answering questions about your experience, skills, and career goals.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Asking for Directions",
			Language:           model.LanguageEnglish,
			CEFRLevel:          model.LevelA1,
			ContextDescription: "You are lost and need to find the train station. Practice asking for and understanding directions.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Кафеде (At a Café)",
			Language:           model.LanguageKazakh,
			CEFRLevel:          model.LevelA1,
			ContextDescription: "Сіз кафеде отырсыз және тамақ тапсырғыңыз келеді. Practice ordering food and drinks in Kazakh.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Досымен кездесу (Meeting a Friend)",
			Language:           model.LanguageKazakh,
			CEFRLevel:          model.LevelA1,
			ContextDescription: "Сіз досыңызбен кездесіп жатырсыз. Practice greeting and simple conversation in Kazakh.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Дүкенде (Shopping)",
			Language:           model.LanguageKazakh,
			CEFRLevel:          model.LevelA2,
			ContextDescription: "Сіз дүкенде сатып алуға келдіңіз. Practice asking about products, prices, and making purchases.",
			MaxTurns:           10,
			IsActive:           true,
		},
		{
			Title:              "Жол сұрау (Asking for Directions)",
			Language:           model.LanguageKazakh,
			CEFRLevel:          model.LevelA1,
			ContextDescription: "Сіз жолды жоғалттыңыз және көмек керек. Practice asking for directions in Kazakh.",
			MaxTurns:           10,
			IsActive:           true,
		},
	}

	created := 0
	for _, scenario := range scenarios {
		var count int64
		db.Model(&model.DialogueScenario{}).
			Where("title = ? AND language = ?", scenario.Title, scenario.Language).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&scenario).Error; err != nil {
			return err
		}
		created++
	}
	log.Printf("Created %d dialogue scenarios", created)
	return nil
}

type seedTask struct {
	TaskType        model.TaskType
	Content         map[string]any
	CorrectAnswer   string
	RuleExplanation string
	ExampleContrast string
	Difficulty      int
}

// seedTaskTemplates fills modules that have no tasks yet, matched on title
// keywords the roadmap generators are known to produce.
func seedTaskTemplates(db *gorm.DB) error {
	var modules []model.Module
	if err := db.Find(&modules).Error; err != nil {
		return err
	}
	if len(modules) == 0 {
		log.Println("No modules found; generate a roadmap before seeding tasks")
		return nil
	}

	for _, module := range modules {
		var count int64
		db.Model(&model.TaskTemplate{}).Where("module_id = ?", module.ID).Count(&count)
		if count > 0 {
			continue
		}

		var language string
		db.Model(&model.Roadmap{}).
			Where("id = ?", module.RoadmapID).
			Pluck("language", &language)

		tasks := tasksForModule(module.Title, language)
		for i, task := range tasks {
			row := model.TaskTemplate{
				ModuleID:        module.ID,
				TaskType:        task.TaskType,
				Content:         mustJSON(task.Content),
				CorrectAnswer:   task.CorrectAnswer,
				RuleExplanation: task.RuleExplanation,
				ExampleContrast: task.ExampleContrast,
				DifficultyLevel: task.Difficulty,
				Order:           i + 1,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
		log.Printf("Created %d tasks for module %q", len(tasks), module.Title)
	}
	return nil
}

func tasksForModule(title, language string) []seedTask {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "present tense") || strings.Contains(lower, "tense mastery"):
		if language == model.LanguageEnglish {
			return presentTenseTasks()
		}
	case strings.Contains(lower, "alphabet") || strings.Contains(lower, "pronunciation"):
		if language == model.LanguageKazakh {
			return kazakhAlphabetTasks()
		}
	case strings.Contains(lower, "basic") || strings.Contains(lower, "introduction"):
		return basicTasks()
	case strings.Contains(lower, "daily") || strings.Contains(lower, "routine"):
		if language == model.LanguageEnglish {
			return dailyRoutineTasks()
		}
	case strings.Contains(lower, "case system"):
		if language == model.LanguageKazakh {
			return kazakhCaseTasks()
		}
	}
	return genericTasks(title, 3)
}

func presentTenseTasks() []seedTask {
	return []seedTask{
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "She ___ to school every day.",
				"options":  []string{"go", "goes", "going", "gone"},
			},
			CorrectAnswer:   "goes",
			RuleExplanation: "In present simple, third person singular (he/she/it) takes -s or -es",
			ExampleContrast: "Correct: She goes. Incorrect: She go.",
			Difficulty:      1,
		},
		{
			TaskType: model.TaskFillBlank,
			Content: map[string]any{
				"question": "I ___ (watch) TV right now.",
				"hint":     "Present continuous",
			},
			CorrectAnswer:   "am watching",
			RuleExplanation: "Present continuous: am/is/are + verb-ing for actions happening now",
			ExampleContrast: "Correct: I am watching TV now. Incorrect: I watch TV now.",
			Difficulty:      2,
		},
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "They ___ football every Saturday.",
				"options":  []string{"play", "plays", "playing", "are playing"},
			},
			CorrectAnswer:   "play",
			RuleExplanation: "Present simple for regular habits and routines",
			ExampleContrast: "Correct: They play (habit). Incorrect: They are playing (now).",
			Difficulty:      1,
		},
	}
}

func kazakhAlphabetTasks() []seedTask {
	return []seedTask{
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "How many letters are in the Kazakh alphabet?",
				"options":  []string{"33", "42", "26", "36"},
			},
			CorrectAnswer:   "42",
			RuleExplanation: "The Kazakh alphabet has 42 letters including special characters",
			ExampleContrast: "Kazakh: 42 letters. Russian: 33 letters. English: 26 letters.",
			Difficulty:      1,
		},
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "Which is a correct greeting in Kazakh?",
				"options":  []string{"Сәлеметсіз бе?", "Здравствуйте", "Hello", "Bonjour"},
			},
			CorrectAnswer:   "Сәлеметсіз бе?",
			RuleExplanation: "Сәлеметсіз бе? is the formal greeting in Kazakh",
			ExampleContrast: "Formal: Сәлеметсіз бе? Informal: Сәлем!",
			Difficulty:      1,
		},
	}
}

func basicTasks() []seedTask {
	return []seedTask{
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "What is your name? Choose the correct response:",
				"options":  []string{"My name is John", "I am name John", "Name my is John", "John is name my"},
			},
			CorrectAnswer:   "My name is John",
			RuleExplanation: "The correct structure is: My name is [name]",
			ExampleContrast: "Correct: My name is John. Incorrect: I am name John.",
			Difficulty:      1,
		},
		{
			TaskType: model.TaskFillBlank,
			Content: map[string]any{
				"question": "Nice to ___ you.",
				"hint":     "Common greeting phrase",
			},
			CorrectAnswer:   "meet",
			RuleExplanation: "\"Nice to meet you\" is a standard greeting when meeting someone",
			ExampleContrast: "Correct: Nice to meet you. Common error: Nice to see you (first meeting).",
			Difficulty:      1,
		},
	}
}

func dailyRoutineTasks() []seedTask {
	return []seedTask{
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "I ___ wake up at 7 AM on weekdays.",
				"options":  []string{"always", "yesterday", "tomorrow", "now"},
			},
			CorrectAnswer:   "always",
			RuleExplanation: "Frequency adverbs (always, usually, sometimes, never) go before main verbs",
			ExampleContrast: "Correct: I always wake up. Incorrect: I wake up always.",
			Difficulty:      1,
		},
		{
			TaskType: model.TaskFillBlank,
			Content: map[string]any{
				"question": "She ___ (have) breakfast at 8 o'clock.",
				"hint":     "Present simple",
			},
			CorrectAnswer:   "has",
			RuleExplanation: "Third person singular: have → has",
			ExampleContrast: "Correct: She has breakfast. Incorrect: She have breakfast.",
			Difficulty:      1,
		},
	}
}

func kazakhCaseTasks() []seedTask {
	return []seedTask{
		{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": "Мен ___ барамын. (I am going to school)",
				"options":  []string{"мектеп", "мектепке", "мектепте", "мектептен"},
			},
			CorrectAnswer:   "мектепке",
			RuleExplanation: "Dative-locative case (-ке/-ға) is used for \"to\" (direction)",
			ExampleContrast: "Correct: мектепке (to school). мектепте (at school). мектептен (from school).",
			Difficulty:      2,
		},
		{
			TaskType: model.TaskFillBlank,
			Content: map[string]any{
				"question": "Ол үйде ___. (He is at home)",
				"hint":     "verb: to sit/stay",
			},
			CorrectAnswer:   "отыр",
			RuleExplanation: "отыр is used for staying in a place",
			ExampleContrast: "Correct: үйде отыр (at home). үйге барады (going home).",
			Difficulty:      2,
		},
	}
}

func genericTasks(moduleTitle string, count int) []seedTask {
	tasks := make([]seedTask, 0, count)
	for i := 0; i < count; i++ {
		tasks = append(tasks, seedTask{
			TaskType: model.TaskMultipleChoice,
			Content: map[string]any{
				"question": fmt.Sprintf("Sample question %d for %s", i+1, moduleTitle),
				"options":  []string{"Option A", "Option B", "Option C", "Option D"},
			},
			CorrectAnswer:   "Option A",
			RuleExplanation: fmt.Sprintf("This is a sample task for %s", moduleTitle),
			ExampleContrast: "Correct: Option A. Incorrect: Option B.",
			Difficulty:      1,
		})
	}
	return tasks
}
