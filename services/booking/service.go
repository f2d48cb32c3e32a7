package booking

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"showphaze/models"
	"showphaze/services/catalog"
	"showphaze/utils"
)

// NewFormatterService builds the default formatter backed by the given
// position source.
func NewFormatterService(positions catalog.PositionSource) *DefaultFormatterService {
	return &DefaultFormatterService{Positions: positions}
}

// nameResolution is the outcome of one distinct position name's lookup+match.
type nameResolution struct {
	position   *models.CatalogPosition
	candidates int
}

// FormatBookingRecords expands the parameter bag, resolves each distinct
// position name against the catalog, and assembles one record per slot.
//
// Failures are recovered per name: a failed lookup or an unmatched name still
// produces placeholder records for its slots. Only when no name yields any
// catalog candidate at all does the call fail with ErrNoPositionData.
func (s *DefaultFormatterService) FormatBookingRecords(ctx context.Context, params models.BookingParams) ([]models.BookingRecord, error) {
	logger := utils.GetLogger()

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid booking params: %w", err)
	}

	expanded := expandParams(params)
	startDates := groupStartDates(params)

	resolutions := s.resolvePositions(ctx, params.PositionNames)

	anyCandidates := false
	groups := make([]resolvedGroup, 0, len(params.PositionNames))
	for i, name := range params.PositionNames {
		res := resolutions[name]
		if res.candidates > 0 {
			anyCandidates = true
		}
		groups = append(groups, resolvedGroup{
			name:      name,
			quantity:  params.Quantities[i],
			startDate: startDates[i],
			position:  res.position,
		})
	}

	if !anyCandidates {
		logger.Warn("catalog returned no candidates for any requested position",
			zap.Strings("positions", params.PositionNames))
		return nil, ErrNoPositionData
	}

	records := assembleRecords(groups, expanded)
	logger.Info("formatted booking records",
		zap.Int("groups", len(groups)), zap.Int("records", len(records)))
	return records, nil
}

// resolvePositions looks up and fuzzy-matches every distinct position name.
// Lookups are independent and run concurrently; a failure for one name only
// degrades that name to "no match".
func (s *DefaultFormatterService) resolvePositions(ctx context.Context, names []string) map[string]nameResolution {
	logger := utils.GetLogger()

	distinct := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			distinct = append(distinct, n)
		}
	}

	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		resolutions = make(map[string]nameResolution, len(distinct))
	)

	for _, name := range distinct {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			res := nameResolution{}
			candidates, err := s.Positions.FetchPositionsByName(ctx, name)
			if err != nil {
				logger.Warn("position lookup failed, degrading to no match",
					zap.String("position", name), zap.Error(err))
			} else {
				res.candidates = len(candidates)
				if pos, ok := catalog.BestMatch(name, candidates); ok {
					res.position = &pos
				} else if len(candidates) > 0 {
					logger.Info("no candidate scored above threshold",
						zap.String("position", name), zap.Int("candidates", len(candidates)))
				}
			}

			mu.Lock()
			resolutions[name] = res
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	return resolutions
}
