package discord_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"sanakirja/internal/domain"
	"sanakirja/internal/domain/entities"
	pkgdiscord "sanakirja/pkg/discord"
)

type keyTranslator struct{}

func (keyTranslator) T(locale, key string, _ map[string]any) string {
	return locale + ":" + key
}

func TestModalValues(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "add_pair_modal",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "fin", Value: "koira"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "eng", Value: "dog"},
			}},
			&discordgo.Button{CustomID: "ignored"},
		},
	}

	assert.Equal(t, map[string]string{"fin": "koira", "eng": "dog"}, pkgdiscord.ModalValues(data))
}

func TestBuildDictionaryEmbed(t *testing.T) {
	texts := pkgdiscord.DictionaryEmbed{Title: "Sanakirja", Empty: "tyhjä", Footer: "2"}

	embed := pkgdiscord.BuildDictionaryEmbed(texts, []entities.WordPair{
		{Fin: "koira", Eng: "dog"},
		{Fin: ""},
		{Fin: "kissa", Eng: "cat"},
	})
	assert.Equal(t, "📖 Sanakirja", embed.Title)
	assert.Equal(t, "koira = dog\nkissa = cat", embed.Description)
	assert.Equal(t, "2", embed.Footer.Text)

	assert.Equal(t, "tyhjä", pkgdiscord.BuildDictionaryEmbed(texts, nil).Description)
}

func TestBuildDictionaryEmbed_Truncates(t *testing.T) {
	pairs := make([]entities.WordPair, 1000)
	for i := range pairs {
		pairs[i] = entities.WordPair{Fin: "koira", Eng: "dog"}
	}

	embed := pkgdiscord.BuildDictionaryEmbed(pkgdiscord.DictionaryEmbed{}, pairs)
	assert.LessOrEqual(t, len(embed.Description), 4096)
	assert.True(t, strings.HasSuffix(embed.Description, "…"))
}

func TestDomainErrorMessage(t *testing.T) {
	tr := keyTranslator{}

	assert.Equal(t, "❌ fi:error.word_pair_exists", pkgdiscord.DomainErrorMessage(tr, "fi", domain.ErrWordPairExists))
	assert.Equal(t, "❌ disk full", pkgdiscord.DomainErrorMessage(tr, "fi", &domain.StoreError{Err: errors.New("disk full")}))
	assert.Equal(t, "", pkgdiscord.DomainErrorMessage(tr, "fi", nil))
}
