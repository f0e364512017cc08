package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"multiledger/internal/logger"
	"multiledger/internal/model/messages"
)

const timeoutSeconds = 30

// Client is the line-oriented collaborator surface: one command in, one
// reply out. The engine itself never talks to the terminal.
type Client struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Client {
	return &Client{in: in, out: out}
}

func (c *Client) SendMessage(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	if err != nil {
		return errors.Wrap(err, "writing reply")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	logger.Info("Start listening for commands")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for commands")
			return
		case line, ok := <-lines:
			if !ok {
				logger.Info("Input closed, stop listening")
				return
			}
			c.listenOnce(ctx, line, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, line string, msgModel *messages.Service) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{Text: line})
	if err != nil {
		logger.Error("error processing command:", zap.Error(err))
	}
}
