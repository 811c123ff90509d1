package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/citizenprep/internal/service"
	"github.com/example/citizenprep/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	quizPrefix   = "quiz:"
	answerPrefix = "ans:"
	menuData     = "menu"
)

var optionLetters = []string{"A", "B", "C", "D"}

const welcomeText = `Welcome to the Canadian citizenship practice bot!

Pick a category below to get a question. Answer with the buttons and you will see the correct answer with an explanation.`

const helpText = `Available commands:
/start - show the category menu
/quiz [category] - get a random question
/help - show this help

Categories: general, history, government, geography, rights, full`

// HandleCommand processes bot commands
func (b *Bot) HandleCommand(ctx context.Context, message *tgbotapi.Message) error {
	switch message.Command() {
	case "start":
		return b.handleStart(message)
	case "help":
		return b.handleHelp(message)
	case "quiz":
		category := strings.ToLower(strings.TrimSpace(message.CommandArguments()))
		return b.sendQuestion(ctx, message.Chat.ID, category)
	default:
		return b.handleUnknownCommand(message)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = categoryKeyboard()
	return b.send(msg)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	msg.ReplyMarkup = categoryKeyboard()
	return b.send(msg)
}

func (b *Bot) handleUnknownCommand(message *tgbotapi.Message) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	return b.send(msg)
}

// categoryKeyboard lists every category, two per row
func categoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]MenuButton
	for i, c := range models.Categories {
		button := MenuButton{Text: c.Name, CallbackData: quizPrefix + c.Key}
		if i%2 == 0 {
			rows = append(rows, []MenuButton{button})
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], button)
	}
	return createKeyboard(rows)
}

// sendQuestion sends one random question from category with answer buttons
func (b *Bot) sendQuestion(ctx context.Context, chatID int64, category string) error {
	if category == "" {
		category = models.CategoryFull
	}

	questions, err := b.questions.Questions(ctx, service.QuestionQuery{
		Category: category,
		Province: b.config.Province,
		Limit:    1,
	})
	if errors.Is(err, service.ErrInvalidInput) {
		msg := tgbotapi.NewMessage(chatID, "Unknown category. Choose one below:")
		msg.ReplyMarkup = categoryKeyboard()
		return b.send(msg)
	}
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Failed to load a question. Please try again later."))
		return err
	}
	if len(questions) == 0 {
		msg := tgbotapi.NewMessage(chatID, "No questions available in this category yet.")
		msg.ReplyMarkup = categoryKeyboard()
		return b.send(msg)
	}

	q := questions[0]
	msg := tgbotapi.NewMessage(chatID, questionText(q))
	msg.ReplyMarkup = answerKeyboard(q)
	return b.send(msg)
}

func questionText(q models.Question) string {
	var sb strings.Builder
	sb.WriteString(models.CategoryName(q.Category))
	sb.WriteString("\n\n")
	sb.WriteString(q.Question)
	for i, opt := range q.Options {
		if i >= len(optionLetters) {
			break
		}
		fmt.Fprintf(&sb, "\n%s. %s", optionLetters[i], opt)
	}
	return sb.String()
}

func answerKeyboard(q models.Question) tgbotapi.InlineKeyboardMarkup {
	row := make([]MenuButton, 0, len(q.Options))
	for i := range q.Options {
		if i >= len(optionLetters) {
			break
		}
		row = append(row, MenuButton{
			Text:         optionLetters[i],
			CallbackData: fmt.Sprintf("%s%d:%d", answerPrefix, q.ID, i),
		})
	}
	return createKeyboard([][]MenuButton{row})
}

// HandleCallback processes inline keyboard presses
func (b *Bot) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	// Stop the client's loading spinner; failure here is not fatal
	if _, err := b.sender.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.log.Debug("failed to answer callback", zap.Error(err))
	}

	if callback.Message == nil {
		return fmt.Errorf("callback %s without message", callback.ID)
	}
	chatID := callback.Message.Chat.ID

	switch data := callback.Data; {
	case data == menuData:
		msg := tgbotapi.NewMessage(chatID, "Choose a category:")
		msg.ReplyMarkup = categoryKeyboard()
		return b.send(msg)
	case strings.HasPrefix(data, quizPrefix):
		return b.sendQuestion(ctx, chatID, strings.TrimPrefix(data, quizPrefix))
	case strings.HasPrefix(data, answerPrefix):
		return b.handleAnswer(ctx, callback)
	default:
		return b.send(tgbotapi.NewMessage(chatID, "Unknown action. Use /help to see available commands."))
	}
}

// parseAnswer decodes "ans:<questionID>:<choice>"
func parseAnswer(data string) (int64, int, error) {
	parts := strings.Split(strings.TrimPrefix(data, answerPrefix), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed answer data %q", data)
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed question id in %q: %w", data, err)
	}
	choice, err := strconv.Atoi(parts[1])
	if err != nil || choice < 0 || choice >= len(optionLetters) {
		return 0, 0, fmt.Errorf("malformed choice in %q", data)
	}
	return id, choice, nil
}

func (b *Bot) handleAnswer(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID

	id, choice, err := parseAnswer(callback.Data)
	if err != nil {
		return err
	}

	q, err := b.questions.Question(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		return b.send(tgbotapi.NewMessage(chatID, "This question is no longer available. Try /quiz for a new one."))
	}
	if err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID,
		callback.Message.Text+"\n\n"+answerFeedback(*q, choice))
	next := createKeyboard([][]MenuButton{{
		{Text: "Next question", CallbackData: quizPrefix + q.Category},
		{Text: "Categories", CallbackData: menuData},
	}})
	edit.ReplyMarkup = &next
	return b.send(edit)
}

func answerFeedback(q models.Question, choice int) string {
	var sb strings.Builder
	if q.IsCorrect(choice) {
		sb.WriteString("✅ Correct!")
	} else {
		sb.WriteString("❌ Incorrect. The correct answer is: ")
		sb.WriteString(q.CorrectOption())
	}
	if explanation := q.ExplanationText(); explanation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(explanation)
	}
	return sb.String()
}
