package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"sanakirja/internal/domain/entities"
)

const (
	embedColor = 0x5865F2

	// Discord rejects embed descriptions longer than this.
	maxDescriptionLen = 4096
)

// DictionaryEmbed holds the localised texts around the listed pairs.
type DictionaryEmbed struct {
	Title  string
	Empty  string
	Footer string
}

// BuildDictionaryEmbed lists pairs one per line as "fin = eng". Lines that
// would push the description past Discord's limit are replaced by "…".
func BuildDictionaryEmbed(texts DictionaryEmbed, pairs []entities.WordPair) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, p := range pairs {
		if p.Fin == "" && p.Eng == "" {
			continue
		}
		line := p.String() + "\n"
		if b.Len()+len(line)+len("…") > maxDescriptionLen {
			b.WriteString("…")
			break
		}
		b.WriteString(line)
	}
	desc := strings.TrimSuffix(b.String(), "\n")
	if desc == "" {
		desc = texts.Empty
	}
	return &discordgo.MessageEmbed{
		Title:       "📖 " + texts.Title,
		Description: desc,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: texts.Footer},
	}
}
