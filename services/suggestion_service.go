package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/models"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/roster"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
)

// DefaultSuggestionCacheTTL bounds how stale a cached partner ranking can be.
const DefaultSuggestionCacheTTL = 5 * time.Minute

// SuggestionService ranks recently-played partners for invite suggestions.
// The Redis client is optional; without it every request recomputes.
type SuggestionService struct {
	Dynamo   *DynamoService
	Redis    *redis.Client
	CacheTTL time.Duration
}

// GetRecentPartners returns the player's partners from past matches, ranked
// by most recent shared match, at most limit entries (0 means no cap).
func (s *SuggestionService) GetRecentPartners(ctx context.Context, userID string, limit int) ([]roster.RankedPlayer, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	if cached, ok := s.cachedPartners(ctx, userID); ok {
		return capPartners(cached, limit), nil
	}

	items, err := s.Dynamo.ScanItems(ctx, models.Match{}.TableName(),
		"#s <> :cancelled",
		map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: models.MatchStatusCancelled},
		},
		map[string]string{"#s": "status"},
	)
	if err != nil {
		return nil, err
	}
	var matches []map[string]interface{}
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}

	selfIDs := roster.MemberIdentitySet(map[string]interface{}{"id": userID})
	shared := make([]map[string]interface{}, 0, len(matches))
	for _, match := range matches {
		if roster.MatchIncludesMember(match, selfIDs) {
			shared = append(shared, match)
		}
	}

	partners := roster.SuggestPartners(shared, selfIDs)
	s.cachePartners(ctx, userID, partners)
	return capPartners(partners, limit), nil
}

// InvalidatePartners drops a player's cached ranking, e.g. after they join
// or leave a match.
func (s *SuggestionService) InvalidatePartners(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, partnersCacheKey(userID)).Err(); err != nil {
		log.Printf("Failed to invalidate partner cache for %s: %v", userID, err)
	}
}

func (s *SuggestionService) cachedPartners(ctx context.Context, userID string) ([]roster.RankedPlayer, bool) {
	if s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(ctx, partnersCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Partner cache read failed for %s: %v", userID, err)
		}
		return nil, false
	}
	var partners []roster.RankedPlayer
	if err := json.Unmarshal(raw, &partners); err != nil {
		log.Printf("Discarding unreadable partner cache for %s: %v", userID, err)
		return nil, false
	}
	return partners, true
}

func (s *SuggestionService) cachePartners(ctx context.Context, userID string, partners []roster.RankedPlayer) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(partners)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = DefaultSuggestionCacheTTL
	}
	if err := s.Redis.Set(ctx, partnersCacheKey(userID), raw, ttl).Err(); err != nil {
		log.Printf("Partner cache write failed for %s: %v", userID, err)
	}
}

func partnersCacheKey(userID string) string {
	return "partners:" + userID
}

func capPartners(partners []roster.RankedPlayer, limit int) []roster.RankedPlayer {
	if limit > 0 && len(partners) > limit {
		return partners[:limit]
	}
	return partners
}
