package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanakirja/internal/application"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/infrastructure/i18n"
	"sanakirja/internal/infrastructure/memstore"
	"sanakirja/internal/testutil"
)

func newTestHandler(t *testing.T, repo *memstore.Repository) *Handler {
	t.Helper()
	return NewHandler(application.NewDictionaryService(repo), i18n.NewTranslator("en", testutil.NewTestLogger(t)))
}

func TestTranslateReply(t *testing.T) {
	h := newTestHandler(t, memstore.New(memstore.WithPairs(entities.WordPair{Fin: "koira", Eng: "dog"})))
	ctx := context.Background()

	assert.Equal(t, "koira = dog", h.translateReply(ctx, "en-US", "koira"))
	assert.Equal(t, "talo = No results", h.translateReply(ctx, "en-US", "talo"))
	assert.Equal(t, "talo = Ei tuloksia", h.translateReply(ctx, "fi", "talo"))
	assert.Equal(t,
		"❌ Invalid input. The input must contain only alphabetic characters and be at least 2 characters long.",
		h.translateReply(ctx, "", "k"),
	)
}

func TestTranslateReply_MissingDictionary(t *testing.T) {
	h := newTestHandler(t, memstore.New())

	assert.Equal(t, "❌ Sanakirjatiedostoa ei ole olemassa.", h.translateReply(context.Background(), "fi", "koira"))
}

func TestAddReply(t *testing.T) {
	repo := memstore.New()
	h := newTestHandler(t, repo)
	ctx := context.Background()

	assert.Equal(t, "✅ Lisätty: koira = dog", h.addReply(ctx, "fi", "koira", "dog"))
	assert.Equal(t, "❌ Word pair already exists in the dictionary.", h.addReply(ctx, "en-GB", "koira", "dog"))
	assert.Equal(t, "❌ 'eng' field is required.", h.addReply(ctx, "", "kissa", ""))

	pairs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.WordPair{{Fin: "koira", Eng: "dog"}}, pairs)
}

func TestListEmbed(t *testing.T) {
	h := newTestHandler(t, memstore.New(memstore.WithPairs(
		entities.WordPair{Fin: "koira", Eng: "dog"},
		entities.WordPair{Fin: "kissa", Eng: "cat"},
	)))

	embed, errMsg := h.listEmbed(context.Background(), "fi")
	require.Empty(t, errMsg)
	assert.Equal(t, "📖 Sanakirja", embed.Title)
	assert.Equal(t, "koira = dog\nkissa = cat", embed.Description)
	assert.Equal(t, "2 sanaparia", embed.Footer.Text)

	_, errMsg = newTestHandler(t, memstore.New()).listEmbed(context.Background(), "en-US")
	assert.Equal(t, "❌ Dictionary file does not exists.", errMsg)
}

func TestAddPairModal(t *testing.T) {
	h := newTestHandler(t, memstore.New())

	resp := h.addPairModal("fi")
	assert.Equal(t, discordgo.InteractionResponseModal, resp.Type)
	assert.Equal(t, addPairModalID, resp.Data.CustomID)
	assert.Equal(t, "Lisää sanapari", resp.Data.Title)
	require.Len(t, resp.Data.Components, 2)
}

func TestInteractionLocale(t *testing.T) {
	guild := discordgo.Locale("fi")
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{GuildLocale: &guild}}
	assert.Equal(t, "fi", interactionLocale(i))

	i.Locale = discordgo.EnglishUS
	assert.Equal(t, "en-US", interactionLocale(i))
}
