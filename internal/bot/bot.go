package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/service"
	"github.com/example/citizenprep/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/question_service_mock.go -package=mock_bot . QuestionService

// QuestionService is the part of the question service the bot needs
type QuestionService interface {
	Questions(ctx context.Context, query service.QuestionQuery) ([]models.Question, error)
	Question(ctx context.Context, id int64) (*models.Question, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// BotSender is the Telegram transport used by the handlers
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// MenuButton represents a button in an inline keyboard
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot is the Telegram practice bot
type Bot struct {
	api       *tgbotapi.BotAPI
	sender    BotSender
	questions QuestionService
	config    *BotConfig
	log       *zap.Logger

	mu sync.Mutex
	// Closed when the polling loop exits; nil until Start runs
	loopDone chan struct{}
	wg       sync.WaitGroup
}

// New connects to Telegram with the configured token
func New(cfg config.TelegramConfig, questions QuestionService, log *zap.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %w", err)
	}
	api.Debug = cfg.Debug

	b := NewWithSender(api, questions, log)
	b.api = api
	log.Info("authorized on telegram", zap.String("account", api.Self.UserName))
	return b, nil
}

// NewWithSender builds a bot on top of an arbitrary transport
func NewWithSender(sender BotSender, questions QuestionService, log *zap.Logger) *Bot {
	return &Bot{
		sender:    sender,
		questions: questions,
		config:    DefaultConfig(),
		log:       log,
	}
}

// Start polls Telegram for updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	if b.api == nil {
		return fmt.Errorf("bot has no telegram connection")
	}

	done := make(chan struct{})
	b.mu.Lock()
	b.loopDone = done
	b.mu.Unlock()
	defer close(done)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.handleUpdate(ctx, update)
			}()
		}
	}
}

// Stop stops polling and waits for in-flight updates.
// The wait ends at ctx expiry or after DrainTimeout, whichever comes first.
func (b *Bot) Stop(ctx context.Context) error {
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}

	ctx, cancel := context.WithTimeout(ctx, b.config.DrainTimeout)
	defer cancel()

	b.mu.Lock()
	loopDone := b.loopDone
	b.mu.Unlock()

	// No new handlers are added once the loop has returned
	if loopDone != nil {
		select {
		case <-loopDone:
		case <-ctx.Done():
			return fmt.Errorf("polling loop did not exit: %w", ctx.Err())
		}
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.log.Info("bot stopped")
		return nil
	case <-ctx.Done():
		b.log.Warn("in-flight updates still running", zap.Duration("drain_timeout", b.config.DrainTimeout))
		return ctx.Err()
	}
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, b.config.RequestTimeout)
	defer cancel()

	var err error
	switch {
	case update.Message != nil && update.Message.IsCommand():
		err = b.HandleCommand(ctx, update.Message)
	case update.Message != nil:
		err = b.handleHelp(update.Message)
	case update.CallbackQuery != nil:
		err = b.HandleCallback(ctx, update.CallbackQuery)
	}

	if err != nil {
		b.log.Warn("failed to handle update", zap.Int("update_id", update.UpdateID), zap.Error(err))
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) error {
	if _, err := b.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
