package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"sanakirja/internal/domain"
	pkgdiscord "sanakirja/pkg/discord"
)

const (
	commandTranslate = "hae"
	commandList      = "sanakirja"
	commandAdd       = "lisaa"

	optionWord = "sana"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        commandTranslate,
		Description: "Hae suomenkielisen sanan käännös / Translate a Finnish word",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionWord,
				Description: "Suomenkielinen sana / Finnish word",
				Required:    true,
			},
		},
	},
	{Name: commandList, Description: "Näytä sanakirja / Show the dictionary"},
	{Name: commandAdd, Description: "Lisää sanapari / Add a word pair"},
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := interactionLocale(i)
	data := i.ApplicationCommandData()

	switch data.Name {
	case commandTranslate:
		word := ""
		for _, opt := range data.Options {
			if opt.Name == optionWord {
				word = opt.StringValue()
			}
		}
		respondEphemeral(s, i.Interaction, h.translateReply(ctx, locale, word))
	case commandList:
		embed, errMsg := h.listEmbed(ctx, locale)
		if errMsg != "" {
			respondEphemeral(s, i.Interaction, errMsg)
			return
		}
		respondEmbed(s, i.Interaction, embed)
	case commandAdd:
		_ = s.InteractionRespond(i.Interaction, h.addPairModal(locale))
	}
}

// translateReply validates word and looks up its translation.
func (h *Handler) translateReply(ctx context.Context, locale, word string) string {
	if !domain.IsValidWord(word) {
		return pkgdiscord.DomainErrorMessage(h.translator, locale, &domain.ValidationError{Code: domain.CodeInvalidInput})
	}
	result, err := h.dictionary.Find(ctx, word)
	if err != nil {
		return pkgdiscord.DomainErrorMessage(h.translator, locale, err)
	}
	if result == domain.NoResults {
		result = h.translator.T(locale, "result.no_results", nil)
	}
	return h.translator.T(locale, "discord.translate.result", map[string]any{
		"Word":   word,
		"Result": result,
	})
}

// listEmbed renders the dictionary, or returns an error message instead.
func (h *Handler) listEmbed(ctx context.Context, locale string) (*discordgo.MessageEmbed, string) {
	pairs, err := h.dictionary.List(ctx)
	if err != nil {
		return nil, pkgdiscord.DomainErrorMessage(h.translator, locale, err)
	}
	return pkgdiscord.BuildDictionaryEmbed(pkgdiscord.DictionaryEmbed{
		Title:  h.translator.T(locale, "discord.list.title", nil),
		Empty:  h.translator.T(locale, "discord.list.empty", nil),
		Footer: h.translator.T(locale, "discord.list.footer", map[string]any{"Count": len(pairs)}),
	}, pairs), ""
}
