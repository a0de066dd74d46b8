package discord

import (
	"github.com/bwmarrin/discordgo"
)

func (b *Bot) isAdmin(userID string) bool {
	_, ok := b.adminIDs[userID]
	return ok
}

func (b *Bot) respondMessage(i *discordgo.Interaction, msg string, ephemeral bool) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := b.api.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   flags,
		},
	})
	if err != nil {
		b.logger.Error("failed to respond to interaction: %v", err)
	}
}

func (b *Bot) ensureAdmin(i *discordgo.Interaction, handler func(*discordgo.Interaction)) {
	if !b.isAdmin(interactionUserID(i)) {
		b.respondMessage(i, forbiddenMessage, true)
		return
	}
	handler(i)
}

func (b *Bot) ensureChannel(i *discordgo.Interaction, handler func(*discordgo.Interaction)) {
	if b.allowedChannelID != "" && i.ChannelID != b.allowedChannelID {
		b.respondMessage(i, wrongChannelMsg, true)
		return
	}
	handler(i)
}
