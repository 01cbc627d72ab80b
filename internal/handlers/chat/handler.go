// Package chat maps prefixed chat commands onto the orchestrators and
// renders their results as replies.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/KirkDiggler/rpg-table/internal/confirm"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/initiative"
)

// DefaultPrefix starts every command
const DefaultPrefix = "pd."

// HandlerConfig holds dependencies for the chat handler
type HandlerConfig struct {
	CharacterService  character.Service
	InitiativeService initiative.Service
	DiceService       dice.Service
	Waiter            *confirm.Waiter
	Responder         Responder

	// Prefix defaults to DefaultPrefix
	Prefix string
	// ConfirmTimeout defaults to confirm.DefaultTimeout
	ConfirmTimeout time.Duration
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.InitiativeService == nil {
		vb.RequiredField("InitiativeService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.Waiter == nil {
		vb.RequiredField("Waiter")
	}
	if c.Responder == nil {
		vb.RequiredField("Responder")
	}
	return vb.Build()
}

// command runs one chat command and returns the reply text
type command struct {
	run func(ctx context.Context, msg *Message, args string) (string, error)
	// direct replies, errors included, go to the author only
	direct bool
}

// Handler dispatches chat messages
type Handler struct {
	characters character.Service
	initiative initiative.Service
	dice       dice.Service
	waiter     *confirm.Waiter
	responder  Responder

	prefix         string
	confirmTimeout time.Duration
	commands       map[string]command

	// background tracks confirmation waits still running
	background sync.WaitGroup
}

// NewHandler creates a new chat handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		characters:     cfg.CharacterService,
		initiative:     cfg.InitiativeService,
		dice:           cfg.DiceService,
		waiter:         cfg.Waiter,
		responder:      cfg.Responder,
		prefix:         strings.ToLower(strings.TrimSpace(cfg.Prefix)),
		confirmTimeout: cfg.ConfirmTimeout,
	}
	if h.prefix == "" {
		h.prefix = DefaultPrefix
	}
	if h.confirmTimeout <= 0 {
		h.confirmTimeout = confirm.DefaultTimeout
	}

	h.commands = map[string]command{
		"help":             {run: h.help},
		"register":         {run: h.register},
		"attribute":        {run: h.attribute},
		"attribute_push":   {run: h.attributePush},
		"attribute_remove": {run: h.attributeRemove},
		"hp":               {run: h.hp},
		"gear":             {run: h.gear},
		"money":            {run: h.money},
		"add_money":        {run: h.addMoney},
		"pop_money":        {run: h.popMoney},
		"roll":             {run: h.roll},
		"sroll":            {run: h.secretRoll, direct: true},
		"init":             {run: h.initiativeRoll},
		"init_list":        {run: h.initiativeList},
		"init_clear":       {run: h.initiativeClear},
	}

	return h, nil
}

// Prefix returns the command prefix
func (h *Handler) Prefix() string {
	return h.prefix
}

// Handle processes one message. A message from a player with a pending
// confirmation in the same channel answers it and is not parsed as a
// command. Messages without the prefix and unknown commands are ignored.
// The returned error reports a failed reply only.
func (h *Handler) Handle(ctx context.Context, msg *Message) error {
	if msg == nil {
		return errors.InvalidArgument("message is required")
	}

	if h.waiter.Deliver(confirm.Key(msg.AuthorID, msg.ChannelID), msg.Content) {
		return nil
	}

	name, args, ok := h.parse(msg.Content)
	if !ok {
		return nil
	}
	cmd, ok := h.commands[name]
	if !ok {
		slog.Debug("Ignoring unknown command", "command", name, "author_id", msg.AuthorID)
		return nil
	}

	reply, err := cmd.run(ctx, msg, args)
	if err != nil {
		reply = h.renderError(name, msg, err)
	}
	if reply == "" {
		return nil
	}

	if cmd.direct {
		if err := h.responder.SendDirect(ctx, msg.AuthorID, reply); err != nil {
			// never fall back to the channel: the reply is private
			slog.Warn("Failed to send direct reply",
				"command", name,
				"author_id", msg.AuthorID,
				"error", err,
			)
		}
		return nil
	}

	if err := h.responder.Send(ctx, msg.ChannelID, reply); err != nil {
		return errors.Wrapf(err, "failed to reply to %s", name)
	}
	return nil
}

// Wait blocks until every background confirmation has finished
func (h *Handler) Wait() {
	h.background.Wait()
}

// parse splits "pd.cmd args" into the lowercased command name and the
// remaining text
func (h *Handler) parse(content string) (name, args string, ok bool) {
	content = strings.TrimSpace(content)
	if len(content) < len(h.prefix) || !strings.EqualFold(content[:len(h.prefix)], h.prefix) {
		return "", "", false
	}

	rest := content[len(h.prefix):]
	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		return strings.ToLower(rest), "", rest != ""
	}
	return strings.ToLower(rest[:end]), strings.TrimSpace(rest[end:]), true
}

func (h *Handler) renderError(name string, msg *Message, err error) string {
	code := errors.GetCode(err)
	if !code.Recoverable() {
		slog.Error("Command failed",
			"command", name,
			"author_id", msg.AuthorID,
			"channel_id", msg.ChannelID,
			"code", code,
			"error", err,
		)
		if code == errors.CodeUnavailable {
			return "💾 " + errors.GetMessage(err)
		}
		return "⚠️ Something went wrong, please try again later."
	}

	switch {
	case errors.GetReason(err) == errors.ReasonNotRegistered:
		return fmt.Sprintf("⚠️ You are not registered. Use `%sregister` first.", h.prefix)
	case errors.IsNotFound(err), errors.IsFailedPrecondition(err):
		return "🤔 " + errors.GetMessage(err)
	default:
		return "❌ " + errors.GetMessage(err)
	}
}

func (h *Handler) usage(format string, args ...any) error {
	return errors.InvalidArgumentf("invalid format, use `%s"+format+"`", append([]any{h.prefix}, args...)...)
}
