package models

// Message is one Slack message the bot handled or sent.
type Message struct {
	Model

	Channel string  `gorm:"size:50;index;not null"`
	UserID  *string `gorm:"size:50;index" json:",omitempty"`
	EventID string  `gorm:"size:50;uniqueIndex;not null"`
	Intent  string  `gorm:"size:20"`
	Content string  `gorm:"type:text"`
	EventTS string  `gorm:"size:30;index;not null"`
	IsBot   bool
}
