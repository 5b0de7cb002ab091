package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/i18n"
	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

// screen is a rendered view: one or more message pages, keyboard on the last one.
type screen struct {
	pages    []string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

// renderer turns flow views into Telegram messages for one language.
type renderer struct {
	tr      Translator
	lang    string
	catalog []entities.CatalogEntry
}

func (h *Handler) renderer(lang string) renderer {
	return renderer{tr: h.translator, lang: lang, catalog: h.catalog}
}

func (r renderer) t(key string) string {
	return r.tr.T(r.lang, key)
}

// quizName returns the display name of a source, or the id when it is not in the catalog.
func (r renderer) quizName(sourceID string) string {
	for _, e := range r.catalog {
		if e.SourceID == sourceID {
			return r.t(e.NameKey)
		}
	}
	return sourceID
}

// render is a pure function of the view.
func (r renderer) render(v service.QuizView) screen {
	var (
		blocks []string
		kb     tgbotapi.InlineKeyboardMarkup
	)

	switch v.Screen {
	case service.ScreenLoading:
		blocks = []string{"⏳ " + escape(r.t("loading")) + "\n" + code(r.quizName(v.SourceID))}
		kb = r.buildBackToCatalogKeyboard()

	case service.ScreenLoadError:
		blocks = []string{"❌ " + bold(r.t("error")) + " " + escape(v.LoadError)}
		kb = r.buildBackToCatalogKeyboard()

	case service.ScreenConfig:
		blocks = []string{r.configText(v)}
		kb = r.buildConfigKeyboard(v.Config)

	case service.ScreenQuestion:
		blocks = []string{r.questionText(v)}
		if v.Revealed {
			kb = r.buildFeedbackKeyboard(v.SessionID, v.Index == v.Total-1)
		} else {
			kb = r.buildAnswerKeyboard(v.SessionID, v.Index, v.Question)
		}

	case service.ScreenSummary:
		if v.Summary == nil {
			blocks = []string{escape(r.t("internalError"))}
			kb = r.buildBackToCatalogKeyboard()
			break
		}
		blocks = r.summaryBlocks(*v.Summary)
		kb = r.buildSummaryKeyboard(v.SessionID)

	default:
		blocks = []string{r.catalogText()}
		kb = r.buildCatalogKeyboard()
	}

	mark := direction(i18n.IsRTL(r.lang))
	pages := paginate(blocks, "\n\n", maxMessageLength-len([]rune(mark)))
	for i := range pages {
		pages[i] = mark + pages[i]
	}

	return screen{pages: pages, keyboard: &kb}
}

func (r renderer) catalogText() string {
	var sb strings.Builder
	sb.WriteString(bold(r.t("title")) + "\n")
	sb.WriteString(italic(r.t("subtitle")) + "\n\n")
	sb.WriteString(bold(r.t("chooseQuiz")) + "\n")
	sb.WriteString(escape(r.t("chooseDescription")))

	for _, e := range r.catalog {
		sb.WriteString("\n\n• " + bold(r.t(e.NameKey)) + "\n")
		sb.WriteString(escape(r.t(e.DescriptionKey)))
	}
	return sb.String()
}

func (r renderer) configText(v service.QuizView) string {
	cfg := v.Config
	shuffle := r.t("off")
	if cfg.ShuffleQuestions {
		shuffle = r.t("on")
	}

	var sb strings.Builder
	sb.WriteString(bold(r.t("configureQuiz")) + " · " + escape(r.quizName(v.SourceID)) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s: <b>%d</b> %s <b>%d</b> (%s %d)\n",
		escape(r.t("questionRange")), cfg.RangeStart, escape(r.t("to")), cfg.RangeEnd, escape(r.t("from")), cfg.SetSize))
	sb.WriteString(fmt.Sprintf("%s: <b>%d</b>\n", escape(r.t("numberOfQuestions")), cfg.Count))
	sb.WriteString(fmt.Sprintf("%s: <b>%s</b>\n", escape(r.t("shuffleQuestions")), escape(shuffle)))
	if cfg.ShuffleQuestions {
		sb.WriteString(italic(r.t("shuffleDescription")) + "\n")
	}
	sb.WriteString("\n" + italic(r.t("rangeHint")))
	return sb.String()
}

func (r renderer) questionText(v service.QuizView) string {
	q := v.Question

	var sb strings.Builder
	sb.WriteString(buildProgressBar(v.Progress, progressBarLength) + " " +
		escape(r.progressLabel(v.Answered, v.Total, v.Revealed)) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d\n", escape(r.t("question")), v.Index+1))
	sb.WriteString(bold(q.Question) + "\n")

	for i, opt := range q.Options {
		marker := ""
		if v.Revealed {
			switch {
			case opt.ID == q.CorrectOptionID:
				marker = "✅ "
			case opt.ID == v.SelectedOptionID:
				marker = "❌ "
			}
		}
		sb.WriteString(fmt.Sprintf("\n%s<b>%s.</b> %s", marker, optionLetter(i), escape(opt.Text)))
	}

	if !v.Revealed {
		return sb.String()
	}

	sb.WriteString("\n\n")
	if v.SelectedOptionID == q.CorrectOptionID {
		sb.WriteString("✅ " + bold(r.t("correct")) + " " + escape(r.t("correctMessage")))
	} else {
		sb.WriteString("❌ " + bold(r.t("incorrect")) + " " + escape(r.t("incorrectMessage")) + " " +
			escape(q.CorrectOption().Text))
	}

	sb.WriteString("\n\n" + r.referenceText(q.Reference, false))
	return sb.String()
}

// referenceText renders a video or document reference. The compact form is used in the summary.
func (r renderer) referenceText(ref entities.Reference, compact bool) string {
	switch {
	case ref.Video != nil:
		label, at := r.t("sourceVideo"), r.t("at")
		if compact {
			label, at = r.t("video"), "@"
		}
		return fmt.Sprintf("%s %s %s %s\n%s",
			bold(label), code(ref.Video.VideoName), escape(at), code(ref.Video.Time),
			italic("“"+ref.Video.Quote+"”"))

	case ref.Document != nil:
		lines := []string{bold(r.t("sourcePDF")) + " " + code(ref.Document.SourcePDF)}
		if ref.Document.PageHint != "" {
			lines = append(lines, bold(r.t("page"))+" "+escape(ref.Document.PageHint))
		}
		if ref.Document.Note != "" {
			lines = append(lines, italic(ref.Document.Note))
		}
		return strings.Join(lines, "\n")

	default:
		return ""
	}
}

func (r renderer) summaryBlocks(s service.Summary) []string {
	blocks := make([]string, 0, len(s.Items)+1)
	blocks = append(blocks, bold(r.t("quizSummary"))+"\n"+
		escape(i18n.FormatSummary(r.t("summaryText"), s.Correct, s.Total, s.Percentage)))

	for i, item := range s.Items {
		var sb strings.Builder
		sb.WriteString(bold(strconv.Itoa(i+1)+". "+item.Question.Question) + "\n")

		if item.IsCorrect {
			sb.WriteString("✅ " + escape(r.t("correctPill")))
		} else {
			sb.WriteString("❌ " + escape(r.t("incorrectPill")))
		}
		if item.Chosen != nil && !item.IsCorrect {
			sb.WriteString(" · " + escape(r.t("yourAnswer")+" "+item.Chosen.Text))
		}
		sb.WriteString(" · " + escape(r.t("answer")+" "+item.Correct.Text))

		if ref := r.referenceText(item.Question.Reference, true); ref != "" {
			sb.WriteString("\n" + ref)
		}
		blocks = append(blocks, sb.String())
	}

	return blocks
}
