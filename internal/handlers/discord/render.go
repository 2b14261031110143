package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/primedice/internal/models"
	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// renderRollResponse builds the roll embed with a button to roll again
func renderRollResponse(roll *models.Roll, msg *messaging.GetRollResultMessageOutput) *discordgo.InteractionResponseData {
	color := colorNotPrime
	if roll.IsPrime {
		color = colorPrime
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: fmt.Sprintf("%s\n\n*%s*", msg.Outcome, msg.Comment),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Roll",
				Value:  fmt.Sprintf("%d", roll.Value),
				Inline: true,
			},
			{
				Name:   "Prime",
				Value:  yesNo(roll.IsPrime),
				Inline: true,
			},
		},
	}

	if roll.PlayerName != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Rolled by %s", roll.PlayerName)}
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: rollAgainComponents(),
	}
}

func rollAgainComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Roll Again",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonRollAgain,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}

// renderPrimeResponse builds the answer to /dice prime
func renderPrimeResponse(n int64, isPrime bool, msg *messaging.GetPrimeCheckMessageOutput) *discordgo.InteractionResponseData {
	color := colorNotPrime
	if isPrime {
		color = colorPrime
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("Is %d prime?", n),
				Description: msg.Message,
				Color:       color,
			},
		},
	}
}

// renderStatsResponse builds the channel stats embed
func renderStatsResponse(msg *messaging.GetStatsMessageOutput) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Summary,
		Color:       colorInfo,
	}

	if len(msg.Lines) > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{
			{
				Name:  "Faces",
				Value: strings.Join(msg.Lines, "\n"),
			},
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

func renderErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
