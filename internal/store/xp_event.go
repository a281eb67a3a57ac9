package store

import (
	"context"
	"fmt"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	entxpevent "github.com/nishantk77/skillpath-ascend-together/ent/xpevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendXP(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetPoints(data.Points).
		SetReason(data.Reason)

	if data.SkillID != nil {
		builder = builder.SetSkillID(*data.SkillID)
	}
	if data.ModuleID != nil {
		builder = builder.SetModuleID(*data.ModuleID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryXP(ctx context.Context, opts QueryOpts) ([]XPEventRecord, error) {
	query := r.client.XPEvent.Query().
		Order(ent.Desc(entxpevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(entxpevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(entxpevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(entxpevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(entxpevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query xp events: %w", err)
	}

	records := make([]XPEventRecord, len(events))
	for i, e := range events {
		records[i] = XPEventRecord{
			UserID:    e.UserID,
			Points:    e.Points,
			Reason:    e.Reason,
			SkillID:   e.SkillID,
			ModuleID:  e.ModuleID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
