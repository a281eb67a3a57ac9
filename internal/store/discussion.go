package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	entdiscussion "github.com/nishantk77/skillpath-ascend-together/ent/discussion"
	entreply "github.com/nishantk77/skillpath-ascend-together/ent/reply"
)

// Discussion is a thread scoped to a (skill, module) pair.
type Discussion struct {
	ID        string
	SkillID   string
	ModuleID  string
	UserID    string
	UserName  string
	Title     string
	Content   string
	CreatedAt time.Time
	Replies   []Reply
}

// Reply is one answer within a discussion thread.
type Reply struct {
	ID           string
	DiscussionID string
	UserID       string
	UserName     string
	Content      string
	CreatedAt    time.Time
}

// DiscussionRepo manages discussion threads and their replies.
type DiscussionRepo interface {
	// All returns every thread, oldest first, with replies ordered by
	// creation time.
	All(ctx context.Context) ([]Discussion, error)

	// ByID returns one thread. Returns ErrNotFound if absent.
	ByID(ctx context.Context, id string) (*Discussion, error)

	// BySkill returns the threads for a skill.
	BySkill(ctx context.Context, skillID string) ([]Discussion, error)

	// ByModule returns the threads for a module.
	ByModule(ctx context.Context, moduleID string) ([]Discussion, error)

	// Create stores a new thread.
	Create(ctx context.Context, d *Discussion) error

	// AddReply appends a reply to a thread. Returns ErrNotFound when the
	// thread does not exist.
	AddReply(ctx context.Context, discussionID string, rep *Reply) error
}

type discussionRepo struct {
	client *ent.Client
}

func withReplies(q *ent.DiscussionQuery) *ent.DiscussionQuery {
	return q.WithReplies(func(rq *ent.ReplyQuery) {
		rq.Order(ent.Asc(entreply.FieldCreatedAt))
	})
}

func (r *discussionRepo) All(ctx context.Context) ([]Discussion, error) {
	rows, err := withReplies(r.client.Discussion.Query()).
		Order(ent.Asc(entdiscussion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query discussions: %w", err)
	}
	return entDiscussionsToDiscussions(rows), nil
}

func (r *discussionRepo) ByID(ctx context.Context, id string) (*Discussion, error) {
	row, err := withReplies(r.client.Discussion.Query().Where(entdiscussion.ID(id))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("discussion %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query discussion: %w", err)
	}
	d := entDiscussionToDiscussion(row)
	return &d, nil
}

func (r *discussionRepo) BySkill(ctx context.Context, skillID string) ([]Discussion, error) {
	rows, err := withReplies(r.client.Discussion.Query().Where(entdiscussion.SkillID(skillID))).
		Order(ent.Asc(entdiscussion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query discussions for skill: %w", err)
	}
	return entDiscussionsToDiscussions(rows), nil
}

func (r *discussionRepo) ByModule(ctx context.Context, moduleID string) ([]Discussion, error) {
	rows, err := withReplies(r.client.Discussion.Query().Where(entdiscussion.ModuleID(moduleID))).
		Order(ent.Asc(entdiscussion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query discussions for module: %w", err)
	}
	return entDiscussionsToDiscussions(rows), nil
}

func (r *discussionRepo) Create(ctx context.Context, d *Discussion) error {
	_, err := r.client.Discussion.Create().
		SetID(d.ID).
		SetSkillID(d.SkillID).
		SetModuleID(d.ModuleID).
		SetUserID(d.UserID).
		SetUserName(d.UserName).
		SetTitle(d.Title).
		SetContent(d.Content).
		SetCreatedAt(d.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create discussion: %w", err)
	}
	return nil
}

func (r *discussionRepo) AddReply(ctx context.Context, discussionID string, rep *Reply) error {
	exists, err := r.client.Discussion.Query().
		Where(entdiscussion.ID(discussionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check discussion: %w", err)
	}
	if !exists {
		return fmt.Errorf("discussion %s: %w", discussionID, ErrNotFound)
	}

	_, err = r.client.Reply.Create().
		SetID(rep.ID).
		SetUserID(rep.UserID).
		SetUserName(rep.UserName).
		SetContent(rep.Content).
		SetCreatedAt(rep.CreatedAt).
		SetDiscussionID(discussionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create reply: %w", err)
	}
	return nil
}

func entDiscussionToDiscussion(row *ent.Discussion) Discussion {
	d := Discussion{
		ID:        row.ID,
		SkillID:   row.SkillID,
		ModuleID:  row.ModuleID,
		UserID:    row.UserID,
		UserName:  row.UserName,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
	for _, rep := range row.Edges.Replies {
		d.Replies = append(d.Replies, Reply{
			ID:           rep.ID,
			DiscussionID: row.ID,
			UserID:       rep.UserID,
			UserName:     rep.UserName,
			Content:      rep.Content,
			CreatedAt:    rep.CreatedAt,
		})
	}
	return d
}

func entDiscussionsToDiscussions(rows []*ent.Discussion) []Discussion {
	out := make([]Discussion, len(rows))
	for i, row := range rows {
		out[i] = entDiscussionToDiscussion(row)
	}
	return out
}
