package controlpanel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
)

// TierLookup resolves the configured tier of an external plan id. The second
// return is false when no tier is configured for that plan.
type TierLookup func(externalPlanID string) (int, bool)

// SubscriptionSyncer ensures exactly one remote subscription exists for a
// service record, with the correct plan. Existence is always verified by
// listing the account's subscriptions; the panel's get-by-id endpoint returns
// unreliable 404s and is not used.
type SubscriptionSyncer struct {
	client Client
	now    func() time.Time
}

// NewSubscriptionSyncer creates a subscription syncer on top of a panel client.
func NewSubscriptionSyncer(client Client) *SubscriptionSyncer {
	return &SubscriptionSyncer{client: client, now: time.Now}
}

// Ensure drives the remote subscription for one service record towards the
// resolved plan. The remembered subscription id is read from and written back
// into meta; persisting meta afterwards is the caller's responsibility.
//
// The returned action is one of created, updated, upgrade, downgrade or
// recreated. "updated" is the idempotent steady state and issues no remote
// call beyond the list.
func (s *SubscriptionSyncer) Ensure(ctx context.Context, accountID string, meta map[string]string, planID string, tierFor TierLookup) (SubscriptionResult, error) {
	result := SubscriptionResult{AccountID: accountID}

	remembered := strings.TrimSpace(meta[models.MetaKeySubscriptionID])
	if remembered == "" {
		sub, err := s.client.CreateSubscription(ctx, accountID, planID)
		if err != nil {
			return result, fmt.Errorf("create subscription: %w", err)
		}
		result.SubscriptionID = sub.ID
		result.Action = ActionCreated
		s.remember(meta, sub.ID)
		return result, nil
	}

	subs, err := s.client.ListSubscriptions(ctx, accountID)
	if err != nil {
		return result, fmt.Errorf("list subscriptions: %w", err)
	}

	existing := findSubscription(subs, remembered)
	if existing == nil {
		// The remote subscription was deleted out-of-band; the stale id is
		// discarded and a fresh one created.
		sub, err := s.client.CreateSubscription(ctx, accountID, planID)
		if err != nil {
			return result, fmt.Errorf("recreate subscription: %w", err)
		}
		result.SubscriptionID = sub.ID
		result.Action = ActionRecreated
		s.remember(meta, sub.ID)
		return result, nil
	}

	if samePlan(existing.PlanID, planID) {
		result.SubscriptionID = existing.ID
		result.Action = ActionUpdated
		s.remember(meta, existing.ID)
		return result, nil
	}

	if err := s.client.UpdateSubscription(ctx, accountID, existing.ID, planID); err != nil {
		return result, fmt.Errorf("update subscription plan: %w", err)
	}
	result.SubscriptionID = existing.ID
	result.Action = planChangeDirection(existing.PlanID, planID, tierFor)
	s.remember(meta, existing.ID)
	return result, nil
}

func (s *SubscriptionSyncer) remember(meta map[string]string, subscriptionID string) {
	meta[models.MetaKeySubscriptionID] = subscriptionID
	meta[models.MetaKeyExternalSubscriptionID] = subscriptionID
	meta[models.MetaKeySubscriptionSyncedAt] = s.now().UTC().Format(time.RFC3339)
}

func findSubscription(subs []Subscription, id string) *Subscription {
	for i := range subs {
		if strings.TrimSpace(subs[i].ID) == id {
			return &subs[i]
		}
	}
	return nil
}

// samePlan compares plan ids numerically when both parse, otherwise as
// trimmed strings.
func samePlan(a, b string) bool {
	na, errA := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	nb, errB := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if errA == nil && errB == nil {
		return na == nb
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// planChangeDirection labels a plan change as upgrade or downgrade. Explicit
// mapping tiers win when both plans carry one; otherwise the external plan
// ids are compared numerically, which mirrors how the panel happens to assign
// ids to its plan ladder. When neither signal is usable the change is labeled
// an upgrade.
func planChangeDirection(currentPlanID, newPlanID string, tierFor TierLookup) string {
	if tierFor != nil {
		curTier, okCur := tierFor(currentPlanID)
		newTier, okNew := tierFor(newPlanID)
		if okCur && okNew {
			if newTier > curTier {
				return ActionUpgrade
			}
			return ActionDowngrade
		}
	}

	cur, errCur := strconv.ParseInt(strings.TrimSpace(currentPlanID), 10, 64)
	next, errNext := strconv.ParseInt(strings.TrimSpace(newPlanID), 10, 64)
	if errCur == nil && errNext == nil {
		if next > cur {
			return ActionUpgrade
		}
		return ActionDowngrade
	}
	return ActionUpgrade
}
