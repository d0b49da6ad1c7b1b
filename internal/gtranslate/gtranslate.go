// Package gtranslate implements the online translation collaborator
// on top of the Google Translate v2 API.
package gtranslate

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/FocuswithJustin/mtmeld/core/errors"
	"github.com/FocuswithJustin/mtmeld/internal/logging"
)

// apiKeyEnv names the environment variable consulted for an API key.
// Without it the client falls back to Application Default Credentials.
const apiKeyEnv = "GOOGLE_API_KEY"

// Client translates single lines into one fixed target language.
type Client struct {
	client *translate.Client
	target language.Tag
}

// New builds the collaborator for a target language code. A failure
// here means the collaborator is unavailable for the whole run;
// nothing is retried mid-stream.
func New(ctx context.Context, lang string) (*Client, error) {
	target, err := language.Parse(lang)
	if err != nil {
		return nil, errors.NewCollaborator(errors.CollaboratorTranslate,
			fmt.Sprintf("unrecognized language code %q", lang), err)
	}

	var opts []option.ClientOption
	if key := os.Getenv(apiKeyEnv); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.NewCollaborator(errors.CollaboratorTranslate, "", err)
	}

	logging.CollaboratorReady("google translate", target.String())
	return &Client{client: client, target: target}, nil
}

// Translate translates one line of plain text and returns the single
// result. The call blocks until the service answers; there is no
// timeout layered on top of ctx.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	res, err := c.client.Translate(ctx, []string{text}, c.target, &translate.Options{
		Format: translate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("translate %q: %w", text, err)
	}
	if len(res) == 0 {
		return "", fmt.Errorf("translate %q: empty response", text)
	}
	return res[0].Text, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}
