package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/metrics"
	"github.com/justsurfingit/internhunt/internal/models"
	"go.uber.org/zap"
)

const (
	defaultQuery    = "internship"
	serpAPIEngine   = "google_jobs"
	serpAPIPath     = "/search.json"
	providerSerpAPI = "serpapi"
)

type SearchQuery struct {
	Query    string
	Location string
	Company  string
	Tag      string
}

// SearchCache stores normalized results per query string.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]models.JobPosting, bool)
	Set(ctx context.Context, query string, jobs []models.JobPosting)
}

// serpJob is the provider's wire shape. Only the fields we surface are read.
type serpJob struct {
	JobID        string   `json:"job_id"`
	Title        string   `json:"title"`
	CompanyName  string   `json:"company_name"`
	Location     string   `json:"location"`
	Via          string   `json:"via"`
	Description  string   `json:"description"`
	Extensions   []string `json:"extensions"`
	ApplyOptions []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"apply_options"`
	RelatedLinks []struct {
		Link string `json:"link"`
		Text string `json:"text"`
	} `json:"related_links"`
}

type JobSearchService struct {
	client *resty.Client
	apiKey string
	cache  SearchCache
	logger *zap.Logger
}

func NewJobSearchService(client *resty.Client, apiKey string, cache SearchCache, logger *zap.Logger) *JobSearchService {
	return &JobSearchService{client: client, apiKey: apiKey, cache: cache, logger: logger}
}

func (s *JobSearchService) Search(ctx context.Context, query SearchQuery) ([]models.JobPosting, error) {
	if s.apiKey == "" {
		return nil, apperr.Config("Missing SERPAPI_KEY in environment variables.")
	}

	q := strings.TrimSpace(query.Query)
	if q == "" {
		q = defaultQuery
	}

	jobs, ok := s.cached(ctx, q)
	if !ok {
		var err error
		jobs, err = s.fetch(ctx, q)
		metrics.ObserveUpstream(providerSerpAPI, err)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(ctx, cacheKey(q), jobs)
		}
	}

	return FilterJobs(jobs, query), nil
}

func (s *JobSearchService) cached(ctx context.Context, q string) ([]models.JobPosting, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, cacheKey(q))
}

func cacheKey(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

func (s *JobSearchService) fetch(ctx context.Context, q string) ([]models.JobPosting, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"engine":  serpAPIEngine,
			"q":       q,
			"api_key": s.apiKey,
		}).
		Get(serpAPIPath)
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch from SerpAPI.", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apperr.Upstream("Failed to fetch from SerpAPI.",
			fmt.Errorf("serpapi status %d", resp.StatusCode())).WithDetails(string(resp.Body()))
	}

	var body struct {
		Error       string          `json:"error"`
		JobsResults json.RawMessage `json:"jobs_results"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, apperr.Upstream("Malformed response from SerpAPI.", err)
	}
	if len(body.JobsResults) == 0 || string(body.JobsResults) == "null" {
		if body.Error != "" {
			s.logger.Info("serpapi returned no results", zap.String("query", q), zap.String("reason", body.Error))
		}
		return []models.JobPosting{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body.JobsResults, &raw); err != nil {
		return nil, apperr.Upstream("Malformed response from SerpAPI.", err)
	}

	jobs := make([]models.JobPosting, 0, len(raw))
	for i, item := range raw {
		job, err := decodePosting(item)
		if err != nil {
			s.logger.Warn("dropping malformed posting",
				zap.String("query", q),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

var errMissingField = errors.New("missing required field")

func decodePosting(raw json.RawMessage) (models.JobPosting, error) {
	var wire serpJob
	if err := json.Unmarshal(raw, &wire); err != nil {
		return models.JobPosting{}, err
	}

	switch {
	case wire.JobID == "":
		return models.JobPosting{}, fmt.Errorf("%w: job_id", errMissingField)
	case wire.Title == "":
		return models.JobPosting{}, fmt.Errorf("%w: title", errMissingField)
	case wire.CompanyName == "":
		return models.JobPosting{}, fmt.Errorf("%w: company_name", errMissingField)
	}

	job := models.JobPosting{
		JobID:        wire.JobID,
		Title:        wire.Title,
		CompanyName:  wire.CompanyName,
		Location:     wire.Location,
		Via:          wire.Via,
		Description:  wire.Description,
		Extensions:   make([]string, 0, len(wire.Extensions)),
		ApplyOptions: []models.ApplyOption{},
	}
	for _, ext := range wire.Extensions {
		job.Extensions = append(job.Extensions, FormatExtension(ext, wire.Location))
	}
	for _, opt := range wire.ApplyOptions {
		if opt.Link == "" {
			return models.JobPosting{}, fmt.Errorf("%w: apply_options.link", errMissingField)
		}
		job.ApplyOptions = append(job.ApplyOptions, models.ApplyOption{URL: opt.Link, Label: opt.Title})
	}
	if len(job.ApplyOptions) == 0 {
		for _, l := range wire.RelatedLinks {
			if l.Link != "" {
				job.ApplyOptions = append(job.ApplyOptions, models.ApplyOption{URL: l.Link, Label: l.Text})
			}
		}
	}
	return job, nil
}

// FilterJobs keeps the postings matching every non-empty filter.
func FilterJobs(jobs []models.JobPosting, query SearchQuery) []models.JobPosting {
	out := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if query.Location != "" && !contains(strings.ToLower(job.Location), query.Location) {
			continue
		}
		if query.Company != "" && !contains(strings.ToLower(job.CompanyName), query.Company) {
			continue
		}
		if query.Tag != "" && !hasTag(job.Extensions, query.Tag) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func hasTag(extensions []string, tag string) bool {
	for _, ext := range extensions {
		if contains(strings.ToLower(ext), tag) {
			return true
		}
	}
	return false
}

var (
	salaryKeywords = []string{"a year", "an hour", "a month", "per year", "per hour"}
	currencySymbol = regexp.MustCompile(`[$₹£€]`)
	leadingDigit   = regexp.MustCompile(`^\d`)
)

// FormatExtension prefixes a currency symbol onto salary tags that lack one.
func FormatExtension(ext, location string) string {
	lower := strings.ToLower(ext)
	hasKeyword := false
	for _, kw := range salaryKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword || currencySymbol.MatchString(ext) || !leadingDigit.MatchString(ext) {
		return ext
	}
	if isIndia(location) {
		return "₹" + ext
	}
	return "$" + ext
}

func isIndia(location string) bool {
	for _, part := range strings.FieldsFunc(strings.ToLower(location), func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		if part == "india" || part == "in" {
			return true
		}
	}
	return false
}
