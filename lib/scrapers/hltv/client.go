package hltv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hltvstats/lib/telemetry"
	"log/slog"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const (
	DefaultBaseUrl   = "http://www.hltv.org"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// the legacy team match history page
const matchHistoryPageId = "188"

// every match on the history page sits in a div with exactly this inline style
const matchSectionSelector = `div[style="padding-left:5px;padding-top:5px;"]`

var errEmptyTeamId = errors.New("team id is empty")
var errEmptyBody = errors.New("response body is empty")

type ClientOptions struct {
	BaseUrl   string
	Timeout   time.Duration
	UserAgent string
	// RequiredPlayers limits the history to matches played by the current
	// lineup.
	RequiredPlayers bool
	// CloudflareBypass swaps in a transport that mimics a browser TLS
	// handshake.
	CloudflareBypass bool
}

type Client struct {
	Http            *resty.Client
	requiredPlayers bool
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(0)
	client.SetHeader("user-agent", opts.UserAgent)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	telemetry.InstrumentResty(client, "hltvstats/scrapers/hltv/http")

	return &Client{
		Http:            client,
		requiredPlayers: opts.RequiredPlayers,
	}
}

// FetchMatches downloads the match history page of a team and returns its
// match sections in page order (most recent first). A page without any
// match sections is not an error.
func (c *Client) FetchMatches(ctx context.Context, teamId string) ([]RawMatchNode, error) {
	ctx, span := tracer.Start(ctx, "client:FetchMatches")
	defer span.End()
	span.SetAttributes(attribute.String("team_id", teamId))

	start := time.Now()

	if teamId == "" {
		span.SetStatus(codes.Error, "empty team id")
		return nil, &FetchError{TeamId: teamId, Err: errEmptyTeamId}
	}

	req := c.Http.R().
		SetContext(ctx).
		SetQueryParam("pageid", matchHistoryPageId).
		SetQueryParam("teamid", teamId)
	if c.requiredPlayers {
		req.SetQueryParam("requiredPlayers", "5")
	}

	res, err := req.Get("/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, &FetchError{TeamId: teamId, Err: err}
	}
	if !res.IsSuccess() {
		err = fmt.Errorf("unexpected status %s", res.Status())
		span.SetStatus(codes.Error, "non-2xx response")
		return nil, &FetchError{TeamId: teamId, StatusCode: res.StatusCode(), Err: err}
	}
	if len(bytes.TrimSpace(res.Body())) == 0 {
		span.SetStatus(codes.Error, "empty body")
		return nil, &FetchError{TeamId: teamId, StatusCode: res.StatusCode(), Err: errEmptyBody}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, &FetchError{TeamId: teamId, StatusCode: res.StatusCode(), Err: err}
	}

	sections := doc.Find(matchSectionSelector)
	nodes := make([]RawMatchNode, 0, sections.Length())
	for _, n := range sections.Nodes {
		nodes = append(nodes, RawMatchNode{Node: n})
	}

	teamAttr := metric.WithAttributes(attribute.String("team_id", teamId))
	matchesFetched.Add(ctx, int64(len(nodes)), teamAttr)
	fetchDuration.Record(ctx, time.Since(start).Seconds(), teamAttr)

	slog.DebugContext(ctx, "fetched match history", "team_id", teamId, "matches", len(nodes))
	span.SetAttributes(attribute.Int("matches", len(nodes)))

	return nodes, nil
}

// FetchRecords fetches the history page of a team and builds a record for
// every match section, in page order. The first section that fails to
// build aborts the whole fetch, a partial history is never returned.
func (c *Client) FetchRecords(ctx context.Context, teamId string) ([]MatchRecord, error) {
	ctx, span := tracer.Start(ctx, "client:FetchRecords")
	defer span.End()

	nodes, err := c.FetchMatches(ctx, teamId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch matches")
		return nil, err
	}

	return BuildRecords(nodes)
}

// BuildRecords builds every node in order, stopping at the first failure.
func BuildRecords(nodes []RawMatchNode) ([]MatchRecord, error) {
	records := make([]MatchRecord, 0, len(nodes))
	for i, n := range nodes {
		record, err := BuildRecord(n)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
