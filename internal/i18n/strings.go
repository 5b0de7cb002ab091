package i18n

var hebrew = map[string]string{
	"title":                  "חידון וידאו אינטראקטיבי",
	"subtitle":               "בדוק ידע וחשוף רגעי מקור מדויקים מיידית.",
	"chooseQuiz":             "בחר את החידון שלך",
	"chooseDescription":      "בחר חידון כדי לבדוק את הידע שלך. כל אחד כולל משוב מיידי עם הפניות לווידאו וחותמות זמן.",
	"chooseDifferent":        "← בחר חידון אחר",
	"question":               "שאלה",
	"correct":                "נכון!",
	"correctMessage":         "יפה מאוד.",
	"incorrect":              "לא ממש.",
	"incorrectMessage":       "התשובה הנכונה:",
	"sourceVideo":            "וידאו מקור:",
	"at":                     "ב-",
	"nextQuestion":           "שאלה הבאה ←",
	"finish":                 "סיום ←",
	"restart":                "התחל מחדש",
	"chooseQuizButton":       "← בחר חידון",
	"quit":                   "יציאה",
	"quizSummary":            "סיכום החידון",
	"summaryText":            "ענית נכון על {correct} מתוך {total} ({percentage}%). סקור למטה:",
	"retakeQuiz":             "בצע חידון שוב",
	"newShuffle":             "🔀 ערבוב חדש",
	"correctPill":            "נכון",
	"incorrectPill":          "שגוי",
	"yourAnswer":             "שלך:",
	"answer":                 "תשובה:",
	"video":                  "וידאו:",
	"sampleQuiz":             "חידון לדוגמה",
	"sampleDescription":      "שאלות דמו בסיסיות עם הנרי וארכיטקטורה",
	"bigDataQuiz":            "חידון ביג דאטה",
	"bigDataDescription":     "שאלות מתקדמות על מושגי ביג דאטה וטכניקות",
	"nlpQuiz":                "חידון NLP",
	"nlpDescription":         "יסודות עיבוד שפה טבעית ויישומים",
	"bigDataExamQuiz":        "מבחן ביג דאטה",
	"bigDataExamDescription": "שאלות משוחזרות ממבחן בביג דאטה",
	"language":               "שפה",
	"sourcePDF":              "מקור PDF:",
	"page":                   "עמוד:",
	"configureQuiz":          "הגדרות חידון",
	"questionRange":          "טווח שאלות",
	"numberOfQuestions":      "מספר שאלות נבחר",
	"from":                   "מתוך",
	"shuffleQuestions":       "ערבב שאלות",
	"shuffleDescription":     "השאלות והתשובות יוצגו בסדר אקראי.",
	"start":                  "התחל",
	"to":                     "עד",
	"loading":                "טוען חידון...",
	"error":                  "שגיאה:",
	"answered":               "נענו",
	"inProgress":             "בתהליך",
	"on":                     "פעיל",
	"off":                    "כבוי",
	"rangeHint":              "לשינוי מדויק: /range N M או /count K",
	"languageChanged":        "השפה עודכנה.",
	"downloadReport":         "📄 דוח PDF",
	"unknownCommand":         "פקודה לא מוכרת. /quiz להתחלה, /lang לשינוי שפה.",
	"invalidRange":           "טווח לא תקין. דוגמה: /range 1 10",
	"invalidCount":           "מספר לא תקין. דוגמה: /count 5",
	"notConfiguring":         "אפשר לשנות הגדרות רק לפני תחילת החידון.",
	"internalError":          "משהו השתבש. נסה שוב מאוחר יותר.",
	"preferencesReset":       "ההעדפות אופסו.",
	"help":                   "/quiz בחירת חידון או המשך החידון הנוכחי\n/range N M טווח שאלות\n/count K מספר שאלות\n/lang החלפת שפה\n/reset איפוס העדפות",
	"staleButton":            "הכפתור הזה כבר לא פעיל.",
}

var english = map[string]string{
	"title":                  "Interactive Video Quiz",
	"subtitle":               "Assess knowledge & surface exact source moments instantly.",
	"chooseQuiz":             "Choose Your Quiz",
	"chooseDescription":      "Select a quiz to test your knowledge. Each includes instant feedback with video references and timestamps.",
	"chooseDifferent":        "← Choose Different Quiz",
	"question":               "QUESTION",
	"correct":                "Correct!",
	"correctMessage":         "Nicely done.",
	"incorrect":              "Not quite.",
	"incorrectMessage":       "Correct answer:",
	"sourceVideo":            "Source Video:",
	"at":                     "at",
	"nextQuestion":           "Next Question →",
	"finish":                 "Finish →",
	"restart":                "Restart",
	"chooseQuizButton":       "← Choose Quiz",
	"quit":                   "Quit",
	"quizSummary":            "Quiz Summary",
	"summaryText":            "You answered {correct} of {total} correctly ({percentage}%). Review below:",
	"retakeQuiz":             "Retake Quiz",
	"newShuffle":             "🔀 New Shuffle",
	"correctPill":            "Correct",
	"incorrectPill":          "Incorrect",
	"yourAnswer":             "Your:",
	"answer":                 "Ans:",
	"video":                  "Video:",
	"sampleQuiz":             "Sample Quiz",
	"sampleDescription":      "Basic demo questions with Henry and architecture",
	"bigDataQuiz":            "Big Data Quiz",
	"bigDataDescription":     "Advanced questions on big data concepts and techniques",
	"nlpQuiz":                "NLP Quiz",
	"nlpDescription":         "Natural Language Processing fundamentals and applications",
	"bigDataExamQuiz":        "Big Data Exam",
	"bigDataExamDescription": "Reconstructed questions from a Big Data exam",
	"language":               "Language",
	"sourcePDF":              "Source PDF:",
	"page":                   "Page:",
	"configureQuiz":          "Configure Quiz",
	"questionRange":          "Question Range",
	"numberOfQuestions":      "Number of questions",
	"from":                   "from",
	"shuffleQuestions":       "Shuffle Questions",
	"shuffleDescription":     "Questions and their answers will be in a random order.",
	"start":                  "Start",
	"to":                     "to",
	"loading":                "Loading quiz…",
	"error":                  "Error:",
	"answered":               "answered",
	"inProgress":             "in progress",
	"on":                     "on",
	"off":                    "off",
	"rangeHint":              "For exact values use /range N M or /count K",
	"languageChanged":        "Language updated.",
	"downloadReport":         "📄 PDF report",
	"unknownCommand":         "Unknown command. Use /quiz to start, /lang to switch language.",
	"invalidRange":           "Invalid range. Example: /range 1 10",
	"invalidCount":           "Invalid count. Example: /count 5",
	"notConfiguring":         "Settings can only be changed before the quiz starts.",
	"internalError":          "Something went wrong. Please try again later.",
	"preferencesReset":       "Preferences reset.",
	"help":                   "/quiz choose a quiz or resume the current one\n/range N M question range\n/count K number of questions\n/lang switch language\n/reset forget preferences",
	"staleButton":            "This button is no longer active.",
}
