package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/packlens/backend/internal/domain"
	"github.com/packlens/backend/internal/logging"
	"github.com/packlens/backend/internal/multipack"
)

var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// Default limits used when the config leaves them unset
const (
	defaultCacheTTL       = time.Hour
	defaultMaxBatchSize   = 100
	defaultMaxTitleLength = 512
)

// TitleClassifier is the part of the multipack classifier the service needs
type TitleClassifier interface {
	Classify(title string) multipack.Decision
	Rules() []multipack.Rule
	Matcher() *multipack.Matcher
}

// ClassificationServiceConfig holds configuration for the classification service
type ClassificationServiceConfig struct {
	CacheTTL       time.Duration
	MaxBatchSize   int
	MaxTitleLength int
}

// ClassificationService classifies product titles with an optional result cache
type ClassificationService struct {
	classifier     TitleClassifier
	cache          domain.ClassificationCache
	cacheTTL       time.Duration
	maxBatchSize   int
	maxTitleLength int
	now            func() time.Time
	logger         zerolog.Logger
}

// NewClassificationService creates a new classification service. cache may be nil.
func NewClassificationService(
	classifier TitleClassifier,
	cache domain.ClassificationCache,
	config ClassificationServiceConfig,
) *ClassificationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}
	maxBatchSize := config.MaxBatchSize
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}
	maxTitleLength := config.MaxTitleLength
	if maxTitleLength <= 0 {
		maxTitleLength = defaultMaxTitleLength
	}

	return &ClassificationService{
		classifier:     classifier,
		cache:          cache,
		cacheTTL:       cacheTTL,
		maxBatchSize:   maxBatchSize,
		maxTitleLength: maxTitleLength,
		now:            time.Now,
		logger:         logging.GetLogger("classification"),
	}
}

// Classify decides whether one title is a multi-pack.
// Flow: validate -> check cache -> classify -> cache -> return
func (s *ClassificationService) Classify(ctx context.Context, title string) (*domain.Classification, error) {
	if utf8.RuneCountInString(title) > s.maxTitleLength {
		return nil, domain.ErrTitleTooLong
	}

	cacheKey := generateCacheKey(title)

	if cached, ok := s.getFromCache(ctx, cacheKey); ok {
		cached.Title = multipack.Normalize(title)
		cached.Source = domain.SourceCache
		return cached, nil
	}

	decision := s.classifier.Classify(title)
	result := &domain.Classification{
		Title:        decision.Title,
		Multipack:    decision.Multipack,
		Rule:         decision.Rule,
		Fragment:     decision.Fragment,
		Source:       domain.SourceClassifier,
		ClassifiedAt: s.now(),
	}

	s.logger.Debug().
		Str("title", result.Title).
		Bool("multipack", result.Multipack).
		Str("rule", result.Rule).
		Msg("Classified title")

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("key", cacheKey).Msg("Failed to cache classification")
		}
	}

	return result, nil
}

// ClassifyBatch classifies titles in request order. It stops early when ctx is done.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, titles []string) ([]domain.Classification, error) {
	if len(titles) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if len(titles) > s.maxBatchSize {
		return nil, domain.ErrBatchTooLarge
	}

	start := time.Now()
	defer logging.LogDuration(s.logger, start, "classify_batch")

	results := make([]domain.Classification, 0, len(titles))
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.Classify(ctx, title)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	return results, nil
}

// Rules lists the rule names in evaluation order
func (s *ClassificationService) Rules() []string {
	rules := s.classifier.Rules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

// FragmentCount returns the number of alternatives in the pattern library
func (s *ClassificationService) FragmentCount() int {
	return s.classifier.Matcher().Len()
}

// MaxBatchSize returns the largest batch ClassifyBatch accepts
func (s *ClassificationService) MaxBatchSize() int {
	return s.maxBatchSize
}

// generateCacheKey creates a normalized cache key from a title.
// Format: "multipack:{normalized_title}"
func generateCacheKey(title string) string {
	return "multipack:" + normalizeForCacheKey(title)
}

// normalizeForCacheKey folds case and whitespace runs, which the classifier ignores
func normalizeForCacheKey(s string) string {
	result := strings.ToLower(multipack.Normalize(s))
	return multipleSpacesRegex.ReplaceAllString(result, " ")
}

// getFromCache retrieves a classification from cache; any error counts as a miss
func (s *ClassificationService) getFromCache(ctx context.Context, key string) (*domain.Classification, bool) {
	if s.cache == nil {
		return nil, false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("key", key).Msg("Cache lookup failed")
		}
		return nil, false
	}
	return cached, true
}
