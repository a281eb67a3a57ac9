// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nishantk77/skillpath-ascend-together/ent/badge"
	"github.com/nishantk77/skillpath-ascend-together/ent/badgeevent"
	"github.com/nishantk77/skillpath-ascend-together/ent/discussion"
	"github.com/nishantk77/skillpath-ascend-together/ent/module"
	"github.com/nishantk77/skillpath-ascend-together/ent/reply"
	"github.com/nishantk77/skillpath-ascend-together/ent/schema"
	"github.com/nishantk77/skillpath-ascend-together/ent/session"
	"github.com/nishantk77/skillpath-ascend-together/ent/skill"
	"github.com/nishantk77/skillpath-ascend-together/ent/user"
	"github.com/nishantk77/skillpath-ascend-together/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeFields := schema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescName is the schema descriptor for name field.
	badgeDescName := badgeFields[1].Descriptor()
	// badge.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badge.NameValidator = badgeDescName.Validators[0].(func(string) error)
	// badgeDescBadgeType is the schema descriptor for badge_type field.
	badgeDescBadgeType := badgeFields[3].Descriptor()
	// badge.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badge.BadgeTypeValidator = badgeDescBadgeType.Validators[0].(func(string) error)
	// badgeDescDateEarned is the schema descriptor for date_earned field.
	badgeDescDateEarned := badgeFields[5].Descriptor()
	// badge.DefaultDateEarned holds the default value on creation for the date_earned field.
	badge.DefaultDateEarned = badgeDescDateEarned.Default.(func() time.Time)
	// badgeDescID is the schema descriptor for id field.
	badgeDescID := badgeFields[0].Descriptor()
	// badge.IDValidator is a validator for the "id" field. It is called by the builders before save.
	badge.IDValidator = badgeDescID.Validators[0].(func(string) error)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescUserID is the schema descriptor for user_id field.
	badgeeventDescUserID := badgeeventFields[0].Descriptor()
	// badgeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	badgeevent.UserIDValidator = badgeeventDescUserID.Validators[0].(func(string) error)
	// badgeeventDescBadgeName is the schema descriptor for badge_name field.
	badgeeventDescBadgeName := badgeeventFields[1].Descriptor()
	// badgeevent.BadgeNameValidator is a validator for the "badge_name" field. It is called by the builders before save.
	badgeevent.BadgeNameValidator = badgeeventDescBadgeName.Validators[0].(func(string) error)
	// badgeeventDescBadgeType is the schema descriptor for badge_type field.
	badgeeventDescBadgeType := badgeeventFields[2].Descriptor()
	// badgeevent.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badgeevent.BadgeTypeValidator = badgeeventDescBadgeType.Validators[0].(func(string) error)
	discussionFields := schema.Discussion{}.Fields()
	_ = discussionFields
	// discussionDescSkillID is the schema descriptor for skill_id field.
	discussionDescSkillID := discussionFields[1].Descriptor()
	// discussion.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	discussion.SkillIDValidator = discussionDescSkillID.Validators[0].(func(string) error)
	// discussionDescModuleID is the schema descriptor for module_id field.
	discussionDescModuleID := discussionFields[2].Descriptor()
	// discussion.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	discussion.ModuleIDValidator = discussionDescModuleID.Validators[0].(func(string) error)
	// discussionDescUserID is the schema descriptor for user_id field.
	discussionDescUserID := discussionFields[3].Descriptor()
	// discussion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	discussion.UserIDValidator = discussionDescUserID.Validators[0].(func(string) error)
	// discussionDescUserName is the schema descriptor for user_name field.
	discussionDescUserName := discussionFields[4].Descriptor()
	// discussion.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	discussion.UserNameValidator = discussionDescUserName.Validators[0].(func(string) error)
	// discussionDescTitle is the schema descriptor for title field.
	discussionDescTitle := discussionFields[5].Descriptor()
	// discussion.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	discussion.TitleValidator = discussionDescTitle.Validators[0].(func(string) error)
	// discussionDescContent is the schema descriptor for content field.
	discussionDescContent := discussionFields[6].Descriptor()
	// discussion.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	discussion.ContentValidator = discussionDescContent.Validators[0].(func(string) error)
	// discussionDescCreatedAt is the schema descriptor for created_at field.
	discussionDescCreatedAt := discussionFields[7].Descriptor()
	// discussion.DefaultCreatedAt holds the default value on creation for the created_at field.
	discussion.DefaultCreatedAt = discussionDescCreatedAt.Default.(func() time.Time)
	// discussionDescID is the schema descriptor for id field.
	discussionDescID := discussionFields[0].Descriptor()
	// discussion.IDValidator is a validator for the "id" field. It is called by the builders before save.
	discussion.IDValidator = discussionDescID.Validators[0].(func(string) error)
	moduleFields := schema.Module{}.Fields()
	_ = moduleFields
	// moduleDescTitle is the schema descriptor for title field.
	moduleDescTitle := moduleFields[1].Descriptor()
	// module.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	module.TitleValidator = moduleDescTitle.Validators[0].(func(string) error)
	// moduleDescDescription is the schema descriptor for description field.
	moduleDescDescription := moduleFields[2].Descriptor()
	// module.DefaultDescription holds the default value on creation for the description field.
	module.DefaultDescription = moduleDescDescription.Default.(string)
	// moduleDescWeek is the schema descriptor for week field.
	moduleDescWeek := moduleFields[3].Descriptor()
	// module.DefaultWeek holds the default value on creation for the week field.
	module.DefaultWeek = moduleDescWeek.Default.(int)
	// module.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	module.WeekValidator = moduleDescWeek.Validators[0].(func(int) error)
	// moduleDescStatus is the schema descriptor for status field.
	moduleDescStatus := moduleFields[4].Descriptor()
	// module.DefaultStatus holds the default value on creation for the status field.
	module.DefaultStatus = moduleDescStatus.Default.(string)
	// moduleDescEstimatedHours is the schema descriptor for estimated_hours field.
	moduleDescEstimatedHours := moduleFields[6].Descriptor()
	// module.DefaultEstimatedHours holds the default value on creation for the estimated_hours field.
	module.DefaultEstimatedHours = moduleDescEstimatedHours.Default.(int)
	// moduleDescXpReward is the schema descriptor for xp_reward field.
	moduleDescXpReward := moduleFields[7].Descriptor()
	// module.DefaultXpReward holds the default value on creation for the xp_reward field.
	module.DefaultXpReward = moduleDescXpReward.Default.(int)
	// module.XpRewardValidator is a validator for the "xp_reward" field. It is called by the builders before save.
	module.XpRewardValidator = moduleDescXpReward.Validators[0].(func(int) error)
	// moduleDescID is the schema descriptor for id field.
	moduleDescID := moduleFields[0].Descriptor()
	// module.IDValidator is a validator for the "id" field. It is called by the builders before save.
	module.IDValidator = moduleDescID.Validators[0].(func(string) error)
	replyFields := schema.Reply{}.Fields()
	_ = replyFields
	// replyDescUserID is the schema descriptor for user_id field.
	replyDescUserID := replyFields[1].Descriptor()
	// reply.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reply.UserIDValidator = replyDescUserID.Validators[0].(func(string) error)
	// replyDescUserName is the schema descriptor for user_name field.
	replyDescUserName := replyFields[2].Descriptor()
	// reply.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	reply.UserNameValidator = replyDescUserName.Validators[0].(func(string) error)
	// replyDescContent is the schema descriptor for content field.
	replyDescContent := replyFields[3].Descriptor()
	// reply.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	reply.ContentValidator = replyDescContent.Validators[0].(func(string) error)
	// replyDescCreatedAt is the schema descriptor for created_at field.
	replyDescCreatedAt := replyFields[4].Descriptor()
	// reply.DefaultCreatedAt holds the default value on creation for the created_at field.
	reply.DefaultCreatedAt = replyDescCreatedAt.Default.(func() time.Time)
	// replyDescID is the schema descriptor for id field.
	replyDescID := replyFields[0].Descriptor()
	// reply.IDValidator is a validator for the "id" field. It is called by the builders before save.
	reply.IDValidator = replyDescID.Validators[0].(func(string) error)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[0].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[1].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[1].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescDescription is the schema descriptor for description field.
	skillDescDescription := skillFields[2].Descriptor()
	// skill.DefaultDescription holds the default value on creation for the description field.
	skill.DefaultDescription = skillDescDescription.Default.(string)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[3].Descriptor()
	// skill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	skill.CategoryValidator = skillDescCategory.Validators[0].(func(string) error)
	// skillDescDifficulty is the schema descriptor for difficulty field.
	skillDescDifficulty := skillFields[4].Descriptor()
	// skill.DefaultDifficulty holds the default value on creation for the difficulty field.
	skill.DefaultDifficulty = skillDescDifficulty.Default.(string)
	// skillDescEstimatedWeeks is the schema descriptor for estimated_weeks field.
	skillDescEstimatedWeeks := skillFields[5].Descriptor()
	// skill.DefaultEstimatedWeeks holds the default value on creation for the estimated_weeks field.
	skill.DefaultEstimatedWeeks = skillDescEstimatedWeeks.Default.(int)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.IDValidator is a validator for the "id" field. It is called by the builders before save.
	skill.IDValidator = skillDescID.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.DefaultPasswordHash holds the default value on creation for the password_hash field.
	user.DefaultPasswordHash = userDescPasswordHash.Default.(string)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[4].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescXp is the schema descriptor for xp field.
	userDescXp := userFields[5].Descriptor()
	// user.DefaultXp holds the default value on creation for the xp field.
	user.DefaultXp = userDescXp.Default.(int)
	// user.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	user.XpValidator = userDescXp.Validators[0].(func(int) error)
	// userDescWeeklyTime is the schema descriptor for weekly_time field.
	userDescWeeklyTime := userFields[7].Descriptor()
	// user.DefaultWeeklyTime holds the default value on creation for the weekly_time field.
	user.DefaultWeeklyTime = userDescWeeklyTime.Default.(int)
	// userDescJoinDate is the schema descriptor for join_date field.
	userDescJoinDate := userFields[9].Descriptor()
	// user.DefaultJoinDate holds the default value on creation for the join_date field.
	user.DefaultJoinDate = userDescJoinDate.Default.(func() time.Time)
	// userDescCurrentStreak is the schema descriptor for current_streak field.
	userDescCurrentStreak := userFields[11].Descriptor()
	// user.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	user.DefaultCurrentStreak = userDescCurrentStreak.Default.(int)
	// user.CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	user.CurrentStreakValidator = userDescCurrentStreak.Validators[0].(func(int) error)
	// userDescLongestStreak is the schema descriptor for longest_streak field.
	userDescLongestStreak := userFields[12].Descriptor()
	// user.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	user.DefaultLongestStreak = userDescLongestStreak.Default.(int)
	// user.LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	user.LongestStreakValidator = userDescLongestStreak.Validators[0].(func(int) error)
	// userDescCompletedModules is the schema descriptor for completed_modules field.
	userDescCompletedModules := userFields[13].Descriptor()
	// user.DefaultCompletedModules holds the default value on creation for the completed_modules field.
	user.DefaultCompletedModules = userDescCompletedModules.Default.(int)
	// user.CompletedModulesValidator is a validator for the "completed_modules" field. It is called by the builders before save.
	user.CompletedModulesValidator = userDescCompletedModules.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.IDValidator is a validator for the "id" field. It is called by the builders before save.
	user.IDValidator = userDescID.Validators[0].(func(string) error)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescUserID is the schema descriptor for user_id field.
	xpeventDescUserID := xpeventFields[0].Descriptor()
	// xpevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	xpevent.UserIDValidator = xpeventDescUserID.Validators[0].(func(string) error)
	// xpeventDescPoints is the schema descriptor for points field.
	xpeventDescPoints := xpeventFields[1].Descriptor()
	// xpevent.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	xpevent.PointsValidator = xpeventDescPoints.Validators[0].(func(int) error)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[2].Descriptor()
	// xpevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	xpevent.ReasonValidator = xpeventDescReason.Validators[0].(func(string) error)
}
