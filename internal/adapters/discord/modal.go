package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"sanakirja/internal/domain"
	pkgdiscord "sanakirja/pkg/discord"
)

const (
	addPairModalID = "add_pair_modal"

	inputFin = "fin"
	inputEng = "eng"
)

func (h *Handler) addPairModal(locale string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: addPairModalID,
			Title:    h.translator.T(locale, "discord.add.title", nil),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: inputFin, Label: h.translator.T(locale, "discord.add.fin_label", nil), Style: discordgo.TextInputShort, Required: true, Placeholder: "koira"},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: inputEng, Label: h.translator.T(locale, "discord.add.eng_label", nil), Style: discordgo.TextInputShort, Required: true, Placeholder: "dog"},
				}},
			},
		},
	}
}

func (h *Handler) handleAddModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ModalValues(data)
	respondEphemeral(s, i.Interaction, h.addReply(context.Background(), interactionLocale(i), values[inputFin], values[inputEng]))
}

// addReply validates and stores the pair, reporting the outcome.
func (h *Handler) addReply(ctx context.Context, locale, fin, eng string) string {
	if err := domain.ValidatePair(fin, eng); err != nil {
		return pkgdiscord.DomainErrorMessage(h.translator, locale, err)
	}
	if _, err := h.dictionary.Add(ctx, fin, eng); err != nil {
		return pkgdiscord.DomainErrorMessage(h.translator, locale, err)
	}
	return "✅ " + h.translator.T(locale, "discord.add.done", map[string]any{"Fin": fin, "Eng": eng})
}
