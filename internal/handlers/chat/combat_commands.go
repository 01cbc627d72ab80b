package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/initiative"
)

func (h *Handler) roll(ctx context.Context, msg *Message, args string) (string, error) {
	if args == "" {
		return "", h.usage("roll 2#d20+3")
	}

	out, err := h.dice.Roll(ctx, &dice.RollInput{PlayerID: msg.AuthorID, Notation: args})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("**%s rolled:**\n%s", msg.AuthorName, out.Rendered), nil
}

// secretRoll replies to the author only, errors included
func (h *Handler) secretRoll(ctx context.Context, msg *Message, args string) (string, error) {
	if args == "" {
		return "", h.usage("sroll 1d20")
	}

	out, err := h.dice.Roll(ctx, &dice.RollInput{PlayerID: msg.AuthorID, Notation: args, Secret: true})
	if err != nil {
		return "⚠️ Error in your secret roll: " + errors.GetMessage(err), nil
	}
	return "**Your secret roll:**\n" + out.Rendered, nil
}

func (h *Handler) initiativeRoll(ctx context.Context, msg *Message, args string) (string, error) {
	if args == "" {
		return "", h.usage("init 1d20+3")
	}

	out, err := h.initiative.RollInitiative(ctx, &initiative.RollInitiativeInput{
		RoomID:   msg.ChannelID,
		PlayerID: msg.AuthorID,
		Name:     msg.AuthorName,
		Notation: args,
	})
	if err != nil {
		return "", err
	}

	quoted := "> " + strings.ReplaceAll(out.Rendered, "\n", "\n> ")
	return fmt.Sprintf("✅ **%s** joined the initiative with **%d**.\n%s", msg.AuthorName, out.Total, quoted), nil
}

func (h *Handler) initiativeList(ctx context.Context, msg *Message, _ string) (string, error) {
	out, err := h.initiative.ListInitiative(ctx, &initiative.ListInitiativeInput{RoomID: msg.ChannelID})
	if errors.IsNotFound(err) {
		return fmt.Sprintf("⚔️ The initiative list is empty. Use `%sinit <roll>` to start!", h.prefix), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("⚔️ **Initiative Order** ⚔️")
	for i, entry := range out.Entries {
		fmt.Fprintf(&b, "\n**%d.** %s - `%d`", i+1, entry.Name, entry.Score)
	}
	return b.String(), nil
}

func (h *Handler) initiativeClear(ctx context.Context, msg *Message, _ string) (string, error) {
	_, err := h.initiative.ClearInitiative(ctx, &initiative.ClearInitiativeInput{RoomID: msg.ChannelID})
	if errors.IsNotFound(err) {
		return "🤔 There is no initiative list to clear in this channel.", nil
	}
	if err != nil {
		return "", err
	}
	return "✅ The initiative list was cleared!", nil
}

func (h *Handler) help(_ context.Context, _ *Message, _ string) (string, error) {
	p := h.prefix
	lines := []string{
		"🤖 **pd.BOT commands**",
		"",
		"👤 **Character**",
		"`" + p + "register` - Create your sheet.",
		"`" + p + "register remover` - Delete your sheet.",
		"`" + p + "attribute [@user]` - Show attributes.",
		"`" + p + "attribute_push <name=value>` - Add or update attributes.",
		"`" + p + "attribute_remove <name>` - Remove attributes.",
		"`" + p + "gear` - Show your inventory.",
		"`" + p + "gear +/-<qty> <item>` - Add or remove items.",
		"`" + p + "hp` - Show your hit points.",
		"`" + p + "hp +/-<value>` - Heal or take damage.",
		"`" + p + "hp set <value>` - Set your max HP.",
		"",
		"💰 **Money**",
		"`" + p + "money [@user]` - Show a balance.",
		"`" + p + "add_money <value>` - Add money to your account.",
		"`" + p + "pop_money <value>` - Spend money from your account.",
		"",
		"⚔️ **Combat**",
		"`" + p + "roll <dice>` - Roll dice (e.g. `" + p + "roll 2#d20+3`).",
		"`" + p + "sroll <dice>` - Roll in secret, the result goes to your DMs.",
		"`" + p + "init <roll>` - Roll and join the initiative.",
		"`" + p + "init_list` - Show the initiative order.",
		"`" + p + "init_clear` - Clear the initiative list.",
	}
	return strings.Join(lines, "\n"), nil
}
