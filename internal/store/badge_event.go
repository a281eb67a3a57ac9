package store

import (
	"context"
	"fmt"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	entbadgeevent "github.com/nishantk77/skillpath-ascend-together/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetBadgeName(data.BadgeName).
		SetBadgeType(data.BadgeType).
		SetTier(data.Tier).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error) {
	query := r.client.BadgeEvent.Query().
		Order(ent.Desc(entbadgeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(entbadgeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(entbadgeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(entbadgeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(entbadgeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeEventRecord, len(events))
	for i, e := range events {
		records[i] = BadgeEventRecord{
			UserID:    e.UserID,
			BadgeName: e.BadgeName,
			BadgeType: e.BadgeType,
			Tier:      e.Tier,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
