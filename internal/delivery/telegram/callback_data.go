package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionPick     = "pick"    // choose a catalog entry by index
	actionCatalog  = "catalog" // back to quiz selection
	actionConfig   = "cfg"
	actionStart    = "start"
	actionAnswer   = "ans"
	actionNext     = "next"
	actionRetake   = "retake"
	actionReconfig = "reconfig" // back to configuration: quit, restart and new shuffle
	actionLanguage = "lang"
	actionReport   = "pdf"
	actionNoop     = "noop"
)

// Config sub-actions.
const (
	configRangeStart = "s"
	configRangeEnd   = "e"
	configCount      = "c"
	configShuffle    = "shuffle"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

func buildPickCallback(index int) string {
	return callbackData{
		Action: actionPick,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}

// buildConfigStepCallback builds callback data for moving a config field by delta.
func buildConfigStepCallback(field string, delta int) string {
	return callbackData{
		Action: actionConfig,
		Params: []string{field, strconv.Itoa(delta)},
	}.encode()
}

func buildConfigShuffleCallback() string {
	return callbackData{
		Action: actionConfig,
		Params: []string{configShuffle},
	}.encode()
}

// buildAnswerCallback builds callback data for answering a question.
// The option is referenced by position to stay within Telegram's 64-byte limit.
func buildAnswerCallback(sessionID string, questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{sessionID, strconv.Itoa(questionIndex), strconv.Itoa(optionIndex)},
	}.encode()
}

func buildSessionCallback(action, sessionID string) string {
	return callbackData{
		Action: action,
		Params: []string{sessionID},
	}.encode()
}

func buildLanguageCallback(lang string) string {
	return callbackData{
		Action: actionLanguage,
		Params: []string{lang},
	}.encode()
}
