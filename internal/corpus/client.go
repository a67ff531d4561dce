package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// ErrSourceUnavailable is returned when the messages endpoint cannot be
// reached or answers with a non-success status.
var ErrSourceUnavailable = errors.New("message source unavailable")

// ErrProtocol is returned when a response cannot be parsed into the
// expected {items, total} shape.
var ErrProtocol = errors.New("message source protocol error")

const defaultPageLimit = 1000

// Client fetches the full message corpus from the paginated messages endpoint.
type Client struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for the given base URL. Redirects are followed
// by the default transport, matching the upstream endpoint's behavior of
// redirecting the bare path.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		pageLimit: defaultPageLimit,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchAll retrieves every message, paging with skip/limit cursors until the
// server-reported total is reached or a page comes back empty.
//
// The reported total is not trusted unconditionally: page count is capped at
// firstTotal/limit + 2, so a server whose total fluctuates (or lies) cannot
// hold the fetch in an infinite loop.
func (c *Client) FetchAll(ctx context.Context) (models.Corpus, error) {
	var corpus models.Corpus

	skip := 0
	maxPages := -1 // unknown until the first page reports a total
	for page := 0; maxPages < 0 || page < maxPages; page++ {
		pageData, err := c.fetchPage(ctx, skip)
		if err != nil {
			return nil, err
		}

		if maxPages < 0 {
			maxPages = pageData.Total/c.pageLimit + 2
		}

		if len(pageData.Items) == 0 {
			break
		}

		for _, msg := range pageData.Items {
			if msg.ID == "" {
				msg.ID = uuid.NewString()
			}
			corpus = append(corpus, msg)
		}

		if len(corpus) >= pageData.Total {
			break
		}
		skip += c.pageLimit
	}

	c.logger.Info("fetched message corpus",
		zap.Int("messages", len(corpus)),
		zap.String("source", c.baseURL))

	return corpus, nil
}

func (c *Client) fetchPage(ctx context.Context, skip int) (*models.MessagesPage, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrSourceUnavailable, c.baseURL, err)
	}
	q := reqURL.Query()
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(c.pageLimit))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: messages endpoint returned status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var page models.MessagesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decoding page at skip=%d: %v", ErrProtocol, skip, err)
	}

	return &page, nil
}
