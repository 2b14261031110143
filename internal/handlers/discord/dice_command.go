package discord

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/bwmarrin/discordgo"
)

// DiceCommandName is the slash command name
const DiceCommandName = "dice"

// Button IDs
const (
	ButtonRollAgain = "roll_again"
)

// Subcommands of /dice
const (
	subcommandRoll  = "roll"
	subcommandPrime = "prime"
	subcommandStats = "stats"
)

// DiceCommand handles the /dice command
type DiceCommand struct {
	BaseCommand
	rollerService    roller.Service
	messagingService messaging.Service
	logger           *slog.Logger
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(rollerService roller.Service, messagingService messaging.Service, logger *slog.Logger) *DiceCommand {
	if logger == nil {
		logger = slog.Default()
	}

	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        DiceCommandName,
			Description: "Roll a dice and find out if it's prime",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRoll,
					Description: "Roll a six-sided dice",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandPrime,
					Description: "Check whether a number is prime",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "n",
							Description: "The number to check",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStats,
					Description: "Show how the dice have landed in this channel",
				},
			},
		},
		rollerService:    rollerService,
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]

	switch sub.Name {
	case subcommandRoll:
		return c.roll(ctx, s, i)
	case subcommandPrime:
		return c.prime(ctx, s, i, optionString(sub.Options, "n"))
	case subcommandStats:
		return c.stats(ctx, s, i)
	default:
		return RespondWithError(s, i, "Unknown subcommand")
	}
}

// roll serves both /dice roll and the roll again button
func (c *DiceCommand) roll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	playerID, playerName := player(i)

	rollOutput, err := c.rollerService.RollAndCheck(ctx, &roller.RollAndCheckInput{
		ChannelID:  i.ChannelID,
		PlayerID:   playerID,
		PlayerName: playerName,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	msgOutput, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: playerName,
		RollValue:  rollOutput.Roll.Value,
		IsPrime:    rollOutput.Roll.IsPrime,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return Respond(s, i, renderRollResponse(rollOutput.Roll, msgOutput))
}

func (c *DiceCommand) prime(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, text string) error {
	output, err := c.rollerService.CheckPrime(ctx, &roller.CheckPrimeInput{Text: text})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	msgOutput, err := c.messagingService.GetPrimeCheckMessage(ctx, &messaging.GetPrimeCheckMessageInput{
		N:       output.N,
		IsPrime: output.IsPrime,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return Respond(s, i, renderPrimeResponse(output.N, output.IsPrime, msgOutput))
}

func (c *DiceCommand) stats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.rollerService.GetStats(ctx, &roller.GetStatsInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	msgOutput, err := c.messagingService.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Stats: output.Stats,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return Respond(s, i, renderStatsResponse(msgOutput))
}

// respondWithError turns err into friendly text for the user
func (c *DiceCommand) respondWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	c.logger.WarnContext(ctx, "dice command failed", "channel", i.ChannelID, "error", err)

	msgOutput, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithError(s, i, msgOutput.Message)
}

func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
