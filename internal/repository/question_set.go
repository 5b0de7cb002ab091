package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptySourceID       = errors.New("empty source id")
	ErrEmptyQuestionSet    = errors.New("question set is empty")
	ErrUnsupportedBaseURL  = errors.New("unsupported quiz base url")
	ErrQuestionSetTooLarge = errors.New("question set too large")
)

// maxQuestionSetBytes bounds the size of a single question-set document.
const maxQuestionSetBytes = 8 << 20

// StatusError is returned when the source answers with a non-success status.
type StatusError struct {
	Code       int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load quiz data (%d): %s", e.Code, e.StatusText)
}

// QuestionSetRepository fetches question sets by source id, resolved against a
// base location. The base is either an http(s) URL or a local directory.
type QuestionSetRepository struct {
	client   *http.Client
	baseURL  *url.URL
	baseDir  string
	maxBytes int64
	group    singleflight.Group
}

// NewQuestionSetRepository creates a repository for the given base location.
func NewQuestionSetRepository(client *http.Client, base string) (*QuestionSetRepository, error) {
	if client == nil {
		client = http.DefaultClient
	}

	r := &QuestionSetRepository{client: client, maxBytes: maxQuestionSetBytes}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse quiz base url: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		r.baseURL = u
	case "file":
		r.baseDir = u.Path
	case "":
		r.baseDir = base
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBaseURL, base)
	}

	return r, nil
}

// Location returns where sourceID is read from.
func (r *QuestionSetRepository) Location(sourceID string) string {
	clean := path.Clean("/" + sourceID)
	if r.baseURL != nil {
		return r.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(clean, "/")}).String()
	}
	return filepath.Join(r.baseDir, filepath.FromSlash(clean))
}

// Fetch returns the question set for sourceID exactly as the source holds it.
// Concurrent fetches of the same source share one request.
func (r *QuestionSetRepository) Fetch(ctx context.Context, sourceID string) ([]entities.Question, error) {
	if sourceID == "" {
		return nil, ErrEmptySourceID
	}

	loc := r.Location(sourceID)
	ch := r.group.DoChan(loc, func() (any, error) {
		return r.fetch(context.WithoutCancel(ctx), loc)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]entities.Question), nil
	}
}

func (r *QuestionSetRepository) fetch(ctx context.Context, loc string) ([]entities.Question, error) {
	var (
		data []byte
		err  error
	)
	if r.baseURL != nil {
		data, err = r.get(ctx, loc)
	} else {
		data, err = r.readFile(loc)
	}
	if err != nil {
		return nil, err
	}

	return decodeQuestionSet(data)
}

func (r *QuestionSetRepository) get(ctx context.Context, loc string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, StatusText: statusText(resp)}
	}

	return r.readLimited(resp.Body)
}

func (r *QuestionSetRepository) readFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.readLimited(f)
}

// readLimited reads one byte past the limit so an oversized document is reported
// instead of being cut into invalid JSON.
func (r *QuestionSetRepository) readLimited(src io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(src, r.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > r.maxBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrQuestionSetTooLarge, r.maxBytes)
	}
	return data, nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func decodeQuestionSet(data []byte) ([]entities.Question, error) {
	var questions []entities.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question set: %w", err)
	}

	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	if err := entities.ValidateQuestionSet(questions); err != nil {
		return nil, fmt.Errorf("invalid question set: %w", err)
	}

	return questions, nil
}
