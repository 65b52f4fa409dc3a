package bot

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forgoes/gilbert/ai"
	"github.com/forgoes/gilbert/models"
)

// GormJournal keeps handled messages in the messages table. The unique
// event_id turns Slack redeliveries into no-op inserts.
type GormJournal struct {
	db *gorm.DB
}

func NewGormJournal(db *gorm.DB) *GormJournal {
	return &GormJournal{db: db}
}

func (j *GormJournal) insert(ctx context.Context, msg *models.Message) (bool, error) {
	res := j.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(msg)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (j *GormJournal) Record(ctx context.Context, msg Message, intent Intent) (bool, error) {
	eventID := msg.EventID
	if eventID == "" {
		eventID = msg.Channel + ":" + msg.TS
	}

	m := &models.Message{
		Channel: msg.Channel,
		EventID: eventID,
		Intent:  string(intent),
		Content: StripMentions(msg.Text),
		EventTS: msg.TS,
	}
	if msg.User != "" {
		m.UserID = &msg.User
	}
	return j.insert(ctx, m)
}

func (j *GormJournal) RecordReply(ctx context.Context, channel, text, ts string) error {
	_, err := j.insert(ctx, &models.Message{
		Channel: channel,
		EventID: fmt.Sprintf("reply:%s:%s", channel, ts),
		Content: text,
		EventTS: ts,
		IsBot:   true,
	})
	return err
}

func (j *GormJournal) History(ctx context.Context, channel, ts string, n int) ([]ai.Turn, error) {
	if n <= 0 {
		return nil, nil
	}

	db := j.db.WithContext(ctx)
	subQuery := db.Model(&models.Message{}).
		Where("channel = ? AND event_ts < ? AND content IS NOT NULL AND content != ''", channel, ts).
		Order("event_ts desc").
		Limit(n)

	var msgs []models.Message
	if err := db.Table("(?) as m", subQuery).Order("event_ts asc").Find(&msgs).Error; err != nil {
		return nil, err
	}

	history := make([]ai.Turn, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, ai.Turn{FromBot: m.IsBot, Content: m.Content})
	}
	return history, nil
}

// NopJournal is used when no database is configured: every event is fresh and
// there is no history.
type NopJournal struct{}

func (NopJournal) Record(context.Context, Message, Intent) (bool, error) { return true, nil }

func (NopJournal) RecordReply(context.Context, string, string, string) error { return nil }

func (NopJournal) History(context.Context, string, string, int) ([]ai.Turn, error) { return nil, nil }
