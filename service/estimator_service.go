package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lanka-finance/domain"
	"lanka-finance/repository"
)

// EstimatorService memoizes the search-heavy calculations. Results depend only
// on their numeric inputs, so the cache key is the input tuple.
type EstimatorService struct {
	calc  *Calculator
	cache repository.CacheRepository
	ttl   time.Duration
}

func NewEstimatorService(calc *Calculator, cache repository.CacheRepository, ttl time.Duration) *EstimatorService {
	return &EstimatorService{calc: calc, cache: cache, ttl: ttl}
}

func (s *EstimatorService) Calculator() *Calculator {
	return s.calc
}

func (s *EstimatorService) Estimate(ctx context.Context, input domain.EstimationInput) domain.EstimationResult {
	applicant := input.ApplicantType
	if applicant != domain.ApplicantJoint {
		applicant = domain.ApplicantSingle
	}
	key := fmt.Sprintf("estimate:%g:%g:%g:%d:%s",
		input.HouseCost, input.DownPayment, input.InterestRate, input.TermYears, applicant)

	var result domain.EstimationResult
	if s.lookup(ctx, key, &result) {
		return result
	}

	result = s.calc.Estimate(input)
	s.store(ctx, key, result)
	return result
}

func (s *EstimatorService) RequiredSalary(ctx context.Context, target float64) float64 {
	key := fmt.Sprintf("required:%g", target)

	var salary float64
	if s.lookup(ctx, key, &salary) {
		return salary
	}

	salary = s.calc.RequiredSalary(target)
	s.store(ctx, key, salary)
	return salary
}

func (s *EstimatorService) lookup(ctx context.Context, key string, dst any) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.WithError(err).WithField("key", key).Warn("discarding undecodable cache entry")
		return false
	}
	log.WithField("key", key).Debug("cache hit")
	return true
}

// store is best effort.
func (s *EstimatorService) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to encode cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to save cache entry")
	}
}
