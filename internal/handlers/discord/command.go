package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorPrime    = 0x00ff00
	colorNotPrime = 0xffa500
	colorInfo     = 0x3498db
	colorError    = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// Respond sends data as a new message, or edits the message in place when the interaction came
// from one of its buttons
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType(i),
		Data: data,
	})
}

// RespondWithError sends an ephemeral error embed
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderErrorEmbed(errorMessage)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func responseType(i *discordgo.InteractionCreate) discordgo.InteractionResponseType {
	if i.Type == discordgo.InteractionMessageComponent {
		return discordgo.InteractionResponseUpdateMessage
	}
	return discordgo.InteractionResponseChannelMessageWithSource
}

// player returns the id and display name of whoever triggered the interaction. Guild
// interactions carry a Member, direct messages only a User.
func player(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}

	if i.User != nil {
		return i.User.ID, i.User.Username
	}

	return "", ""
}
