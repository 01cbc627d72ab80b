package chat

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-table/internal/confirm"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/character"
)

var (
	hpSetRegex = regexp.MustCompile(`(?i)^(set|max)\s+(\d+)$`)
	gearRegex  = regexp.MustCompile(`^([+-])?\s*(\d+)?\s*(.+)$`)
)

// register creates the author's profile, or with "remover" asks to
// delete it
func (h *Handler) register(ctx context.Context, msg *Message, args string) (string, error) {
	switch strings.ToLower(args) {
	case "":
	case "remover", "remove":
		return h.unregister(ctx, msg)
	default:
		return "", h.usage("register [remover]")
	}

	_, err := h.characters.Register(ctx, &character.RegisterInput{
		PlayerID: msg.AuthorID,
		Name:     msg.AuthorName,
	})
	if errors.IsAlreadyExists(err) {
		return "✅ You are already registered!", nil
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("🎉 Welcome, %s! You are registered. Use `%shp set <value>`.", msg.AuthorName, h.prefix), nil
}

// unregister asks for confirmation and finishes in the background so
// the follow-up message can be delivered while no lock is held
func (h *Handler) unregister(ctx context.Context, msg *Message) (string, error) {
	_, err := h.characters.GetProfile(ctx, &character.GetProfileInput{PlayerID: msg.AuthorID})
	if errors.IsNotFound(err) {
		return "🤔 You are not registered, so there is nothing to remove.", nil
	}
	if err != nil {
		return "", err
	}

	ticket := h.waiter.Begin(confirm.Key(msg.AuthorID, msg.ChannelID))
	h.background.Add(1)
	go h.finishUnregister(context.WithoutCancel(ctx), *msg, ticket)

	return fmt.Sprintf("⚠️ **Warning, %s!** This action is **irreversible**.\nType `sim` to confirm.", msg.AuthorName), nil
}

func (h *Handler) finishUnregister(ctx context.Context, msg Message, ticket *confirm.Ticket) {
	defer h.background.Done()

	result := ticket.Wait(ctx, h.confirmTimeout)
	slog.Info("Removal confirmation resolved",
		"player_id", msg.AuthorID,
		"channel_id", msg.ChannelID,
		"result", result,
	)

	var reply string
	switch err := result.Err(); {
	case errors.IsDeadlineExceeded(err):
		reply = "⏰ Time is up. The removal was canceled."
	case err != nil:
		reply = "❌ Removal canceled."
	default:
		if _, err := h.characters.Unregister(ctx, &character.UnregisterInput{PlayerID: msg.AuthorID}); err != nil {
			reply = h.renderError("register", &msg, err)
		} else {
			reply = "✅ Your data was removed."
		}
	}

	if err := h.responder.Send(ctx, msg.ChannelID, reply); err != nil {
		slog.Warn("Failed to send removal result",
			"player_id", msg.AuthorID,
			"error", err,
		)
	}
}

// target picks the first mentioned member when args name one
func target(msg *Message, args string) User {
	if args != "" && len(msg.Mentions) > 0 {
		return msg.Mentions[0]
	}
	return User{ID: msg.AuthorID, Name: msg.AuthorName}
}

func (h *Handler) attribute(ctx context.Context, msg *Message, args string) (string, error) {
	who := target(msg, args)
	out, err := h.characters.GetAttributes(ctx, &character.GetAttributesInput{PlayerID: who.ID})
	if errors.IsNotFound(err) && who.ID != msg.AuthorID {
		return fmt.Sprintf("⚠️ %s is not registered.", who.Name), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 **Attributes of %s**", who.Name)
	if len(out.Attributes) == 0 {
		b.WriteString("\nNo attributes set.")
	}
	for _, name := range sortedKeys(out.Attributes) {
		fmt.Fprintf(&b, "\n**%s:** %d", strings.ToUpper(name), out.Attributes[name])
	}
	return b.String(), nil
}

func (h *Handler) attributePush(ctx context.Context, msg *Message, args string) (string, error) {
	out, err := h.characters.UpsertAttributes(ctx, &character.UpsertAttributesInput{
		PlayerID: msg.AuthorID,
		Pairs:    character.ParseAttributePairs(args),
	})
	if errors.IsInvalidArgument(err) {
		return "", h.usage("attribute_push name=value, other=value")
	}
	if err != nil {
		return "", err
	}

	updated := make([]string, len(out.Updated))
	for i, pair := range out.Updated {
		updated[i] = fmt.Sprintf("`%s`=`%d`", strings.ToUpper(pair.Name), pair.Value)
	}
	return "✅ Attributes updated: " + strings.Join(updated, ", "), nil
}

func (h *Handler) attributeRemove(ctx context.Context, msg *Message, args string) (string, error) {
	out, err := h.characters.RemoveAttributes(ctx, &character.RemoveAttributesInput{
		PlayerID: msg.AuthorID,
		Names:    character.ParseAttributeNames(args),
	})
	if errors.IsNotFound(err) && errors.GetReason(err) != errors.ReasonNotRegistered {
		return "🤔 None of the listed attributes were found on your sheet.", nil
	}
	if err != nil {
		return "", err
	}

	removed := make([]string, len(out.Removed))
	for i, name := range out.Removed {
		removed[i] = "`" + strings.ToUpper(name) + "`"
	}
	return "🗑️ Attributes removed: " + strings.Join(removed, ", "), nil
}

// hp shows hit points, sets the maximum with "set N" or applies "+N"/"-N"
func (h *Handler) hp(ctx context.Context, msg *Message, args string) (string, error) {
	if args == "" {
		out, err := h.characters.GetHP(ctx, &character.GetHPInput{PlayerID: msg.AuthorID})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("❤️ **Hit points of %s**\n**%d / %d**\n%s",
			msg.AuthorName, out.Current, out.Max, healthBar(out.Current, out.Max)), nil
	}

	if m := hpSetRegex.FindStringSubmatch(args); m != nil {
		value, err := strconv.Atoi(m[2])
		if err != nil {
			return "", errors.OutOfRange("max HP is too large")
		}
		out, err := h.characters.SetHPMax(ctx, &character.SetHPMaxInput{PlayerID: msg.AuthorID, Max: value})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Max HP of %s set to **%d**! You were fully healed.", msg.AuthorName, out.Max), nil
	}

	delta, err := strconv.Atoi(strings.Join(strings.Fields(args), ""))
	if err != nil {
		return "", errors.InvalidArgumentf("invalid HP command, use `%shp`, `%shp set <value>` or `%shp +/-<value>`",
			h.prefix, h.prefix, h.prefix)
	}

	out, err := h.characters.AdjustHP(ctx, &character.AdjustHPInput{PlayerID: msg.AuthorID, Delta: delta})
	if err != nil {
		return "", err
	}

	var action string
	switch {
	case out.Delta > 0:
		action = fmt.Sprintf("healed **%d**", out.Delta)
	case out.Delta < 0:
		action = fmt.Sprintf("took **%d** damage", -out.Delta)
	default:
		action = "is unchanged"
	}
	return fmt.Sprintf("❤️ %s %s.\nHP is now **%d / %d**.", msg.AuthorName, action, out.Current, out.Max), nil
}

func healthBar(current, maxHP int) string {
	filled := 0
	if maxHP > 0 {
		filled = max(0, min(10, current*10/maxHP))
	}
	return "[`" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "`]"
}

// gear shows the inventory or applies "[+|-][qty] item"
func (h *Handler) gear(ctx context.Context, msg *Message, args string) (string, error) {
	if args == "" {
		out, err := h.characters.GetInventory(ctx, &character.GetInventoryInput{PlayerID: msg.AuthorID})
		if err != nil {
			return "", err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "🎒 **Inventory of %s**", msg.AuthorName)
		if len(out.Inventory) == 0 {
			b.WriteString("\nYour inventory is empty.")
		}
		for _, item := range sortedKeys(out.Inventory) {
			fmt.Fprintf(&b, "\n**%s**: `x%d`", item, out.Inventory[item])
		}
		return b.String(), nil
	}

	input, err := h.parseGear(msg.AuthorID, args)
	if err != nil {
		return "", err
	}

	out, err := h.characters.AdjustInventory(ctx, input)
	if err != nil {
		return "", err
	}

	if out.Action == character.ActionRemove {
		return fmt.Sprintf("🗑️ Removed `%d %s`. New total: `%d`.", out.Quantity, out.Item, out.Remaining), nil
	}
	return fmt.Sprintf("✅ Added `%d %s`. New total: `%d`.", out.Quantity, out.Item, out.Remaining), nil
}

func (h *Handler) parseGear(playerID, args string) (*character.AdjustInventoryInput, error) {
	m := gearRegex.FindStringSubmatch(args)
	if m == nil || strings.TrimSpace(m[3]) == "" {
		return nil, h.usage("gear +1 Potion")
	}

	input := &character.AdjustInventoryInput{
		PlayerID: playerID,
		Action:   character.ActionAdd,
		Quantity: 1,
		Item:     m[3],
	}
	if m[1] == "-" {
		input.Action = character.ActionRemove
	}
	if m[2] != "" {
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.OutOfRange("quantity is too large")
		}
		if qty < 1 {
			return nil, errors.InvalidArgument("quantity must be at least 1")
		}
		input.Quantity = qty
	}
	return input, nil
}

func (h *Handler) money(ctx context.Context, msg *Message, args string) (string, error) {
	who := target(msg, args)
	out, err := h.characters.GetMoney(ctx, &character.GetMoneyInput{PlayerID: who.ID})
	if errors.IsNotFound(err) && who.ID != msg.AuthorID {
		return fmt.Sprintf("⚠️ %s is not registered.", who.Name), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("💰 **%s** has **%d** coins.", who.Name, out.Balance), nil
}

func (h *Handler) addMoney(ctx context.Context, msg *Message, args string) (string, error) {
	amount, err := strconv.Atoi(args)
	if err != nil {
		return "", h.usage("add_money <amount>")
	}

	out, err := h.characters.AddMoney(ctx, &character.AddMoneyInput{PlayerID: msg.AuthorID, Amount: amount})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("💸 Added **%d** coins. Your new balance is **%d**.", amount, out.Balance), nil
}

func (h *Handler) popMoney(ctx context.Context, msg *Message, args string) (string, error) {
	amount, err := strconv.Atoi(args)
	if err != nil {
		return "", h.usage("pop_money <amount>")
	}

	out, err := h.characters.SpendMoney(ctx, &character.SpendMoneyInput{PlayerID: msg.AuthorID, Amount: amount})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("💸 Removed **%d** coins. Your new balance is **%d**.", amount, out.Balance), nil
}

func sortedKeys(m map[string]int) []string {
	return slices.Sorted(maps.Keys(m))
}
