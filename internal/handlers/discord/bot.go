package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session *discordgo.Session

	// Interactions are handled on discordgo's goroutines while commands register
	mu         sync.RWMutex
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	rollerService    roller.Service
	messagingService messaging.Service
	logger           *slog.Logger
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	RollerService    roller.Service
	MessagingService messaging.Service

	// Optional
	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.RollerService == nil {
		return nil, errors.New("roller service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		rollerService:    cfg.RollerService,
		messagingService: cfg.MessagingService,
		logger:           logger,
		config:           cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	diceCmd := NewDiceCommand(b.rollerService, b.messagingService, b.logger)
	if err := b.RegisterCommand(diceCmd); err != nil {
		return fmt.Errorf("failed to register dice command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	b.mu.RLock()
	commandIDs := make(map[string]string, len(b.commandIDs))
	for cmdName, cmdID := range b.commandIDs {
		commandIDs[cmdName] = cmdID
	}
	b.mu.RUnlock()

	for cmdName, cmdID := range commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered for GuildID when
// set, otherwise globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.addCommand(cmd, createdCmd.ID)
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild", b.config.GuildID)

	return nil
}

// addCommand stores the command handler and its ID
func (b *Bot) addCommand(cmd CommandHandler, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = id
}

// command looks up a registered handler by name
func (b *Bot) command(name string) (CommandHandler, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	h, ok := b.commands[name]
	return h, ok
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.command(name); ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction", "error", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonRollAgain:
		h, _ := b.command(DiceCommandName)
		cmd, ok := h.(*DiceCommand)
		if !ok {
			return RespondWithError(s, i, "The dice command is not registered.")
		}
		return cmd.roll(context.Background(), s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}
