package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

var optionLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// languageNames are shown in their own language on the switch button.
var languageNames = map[string]string{
	entities.LanguageHebrew:  "עברית",
	entities.LanguageEnglish: "English",
}

const lettersPerRow = 4

// optionLetter returns the label of the i-th option, falling back to its number.
func optionLetter(i int) string {
	if i >= 0 && i < len(optionLetters) {
		return optionLetters[i]
	}
	return strconv.Itoa(i + 1)
}

// otherLanguage returns the language the switch button toggles to.
func otherLanguage(lang string) string {
	if lang == entities.LanguageHebrew {
		return entities.LanguageEnglish
	}
	return entities.LanguageHebrew
}

// buildCatalogKeyboard lists the quizzes and the language switch.
func (r renderer) buildCatalogKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(r.catalog)+1)
	for i, e := range r.catalog {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t(e.NameKey), buildPickCallback(i)),
		))
	}

	other := otherLanguage(r.lang)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🌐 "+languageNames[other], buildLanguageCallback(other)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildBackToCatalogKeyboard is shown while loading and after a failed load.
func (r renderer) buildBackToCatalogKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t("chooseDifferent"), actionCatalog),
		),
	)
}

// buildConfigKeyboard builds steppers for range and count plus the shuffle toggle.
func (r renderer) buildConfigKeyboard(cfg entities.QuizConfig) tgbotapi.InlineKeyboardMarkup {
	shuffle := r.t("off")
	if cfg.ShuffleQuestions {
		shuffle = r.t("on")
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		stepperRow(configRangeStart, "⏮ "+strconv.Itoa(cfg.RangeStart)),
		stepperRow(configRangeEnd, "⏭ "+strconv.Itoa(cfg.RangeEnd)),
		stepperRow(configCount, "# "+strconv.Itoa(cfg.Count)),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🔀 %s: %s", r.t("shuffleQuestions"), shuffle),
				buildConfigShuffleCallback(),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ "+r.t("start"), actionStart),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t("chooseDifferent"), actionCatalog),
		),
	)
}

func stepperRow(field, label string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("−10", buildConfigStepCallback(field, -10)),
		tgbotapi.NewInlineKeyboardButtonData("−1", buildConfigStepCallback(field, -1)),
		tgbotapi.NewInlineKeyboardButtonData(label, actionNoop),
		tgbotapi.NewInlineKeyboardButtonData("+1", buildConfigStepCallback(field, 1)),
		tgbotapi.NewInlineKeyboardButtonData("+10", buildConfigStepCallback(field, 10)),
	)
}

// buildAnswerKeyboard builds one letter button per option followed by quit and choose-quiz.
func (r renderer) buildAnswerKeyboard(sessionID string, index int, q entities.Question) tgbotapi.InlineKeyboardMarkup {
	var (
		rows [][]tgbotapi.InlineKeyboardButton
		row  []tgbotapi.InlineKeyboardButton
	)
	for i := range q.Options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(optionLetter(i), buildAnswerCallback(sessionID, index, i)))
		if len(row) == lettersPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(r.t("quit"), actionReconfig),
		tgbotapi.NewInlineKeyboardButtonData(r.t("chooseQuizButton"), actionCatalog),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFeedbackKeyboard is shown after an answer is revealed.
func (r renderer) buildFeedbackKeyboard(sessionID string, last bool) tgbotapi.InlineKeyboardMarkup {
	next := r.t("nextQuestion")
	if last {
		next = r.t("finish")
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(next, buildSessionCallback(actionNext, sessionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t("restart"), actionReconfig),
			tgbotapi.NewInlineKeyboardButtonData(r.t("chooseQuizButton"), actionCatalog),
		),
	)
}

// buildSummaryKeyboard builds keyboard for the quiz summary screen.
func (r renderer) buildSummaryKeyboard(sessionID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t("retakeQuiz"), buildSessionCallback(actionRetake, sessionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t("newShuffle"), actionReconfig),
			tgbotapi.NewInlineKeyboardButtonData(r.t("downloadReport"), buildSessionCallback(actionReport, sessionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.t("chooseDifferent"), actionCatalog),
		),
	)
}
