package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-table/internal/handlers/chat"
)

var (
	consoleAuthorID   string
	consoleAuthorName string
	consoleChannelID  string
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Chat with the bot on stdin/stdout",
	Long: `Read one chat message per line from stdin and print the replies.

A line of the form "@id:Name message" sends the message as another player,
which makes it possible to try initiative and mentions from one terminal.`,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&consoleAuthorID, "author-id", "console", "player ID for plain lines")
	consoleCmd.Flags().StringVar(&consoleAuthorName, "author-name", "Player", "display name for plain lines")
	consoleCmd.Flags().StringVar(&consoleChannelID, "channel", "console", "channel every message is sent to")
}

func runConsole(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	knownNames.Store(consoleAuthorID, consoleAuthorName)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, &consoleResponder{out: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	// The scanner is not part of the group: a blocked read on stdin must
	// not hold up shutdown.
	lines := make(chan string)
	go scanLines(cmd.InOrStdin(), lines)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				msg := consoleMessage(line)
				if msg == nil {
					continue
				}
				if err := a.handler.Handle(gctx, msg); err != nil {
					slog.Error("Failed to handle message", "error", err)
				}
			}
		}
	})

	slog.Info("Console ready", "prefix", a.handler.Prefix(), "channel", consoleChannelID)
	runErr := g.Wait()

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.close(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func scanLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		slog.Error("Failed to read input", "error", err)
	}
}

// consoleMessage turns a line into a message, honoring an "@id:Name" author
// override. Mentions of the form <@id> are resolved against the name given
// in the last override for that ID.
func consoleMessage(line string) *chat.Message {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	msg := &chat.Message{
		AuthorID:   consoleAuthorID,
		AuthorName: consoleAuthorName,
		ChannelID:  consoleChannelID,
		Content:    line,
	}

	if strings.HasPrefix(line, "@") {
		head, rest, ok := strings.Cut(line[1:], " ")
		id, name, named := strings.Cut(head, ":")
		if ok && named && id != "" && name != "" {
			msg.AuthorID = id
			msg.AuthorName = name
			msg.Content = strings.TrimSpace(rest)
			knownNames.Store(id, name)
		}
	}

	for _, field := range strings.Fields(msg.Content) {
		if !strings.HasPrefix(field, "<@") || !strings.HasSuffix(field, ">") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(field, "<@"), ">")
		name := id
		if known, ok := knownNames.Load(id); ok {
			name = known.(string)
		}
		msg.Mentions = append(msg.Mentions, chat.User{ID: id, Name: name})
	}
	return msg
}

var knownNames sync.Map

// consoleResponder prints replies; direct ones are marked with the recipient
type consoleResponder struct {
	mu  sync.Mutex
	out io.Writer
}

func (r *consoleResponder) Send(_ context.Context, channelID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.out, "[#%s]\n%s\n\n", channelID, text)
	return err
}

func (r *consoleResponder) SendDirect(_ context.Context, userID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.out, "[dm @%s]\n%s\n\n", userID, text)
	return err
}
