package store

import "time"

type (
	Status   string
	Category string

	// Report is the unit of work: one user-filed complaint or issue.
	// SubmitterID, Category, Description, AccusedID and Evidence never
	// change after creation; Status, HandledBy and UpdatedAt mutate only
	// through Store.Update.
	Report struct {
		ID string `gorm:"primarykey;size:64"`

		SubmitterID string   `gorm:"size:20;not null;index"`
		Category    Category `gorm:"size:16;not null"`
		Description string   `gorm:"size:1000;not null"`
		AccusedID   string   `gorm:"size:20"`
		Evidence    string   `gorm:"size:512"`

		Status    Status `gorm:"size:16;not null;default:pending"`
		HandledBy string `gorm:"size:20"`

		ChannelID string `gorm:"size:20"`
		MessageID string `gorm:"size:20"`

		CreatedAt time.Time `gorm:"not null"`
		UpdatedAt time.Time `gorm:"not null"`
	}
)

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in_progress"
)

func (status Status) String() string {
	switch status {
	case StatusPending:
		return "⏳ Pending"
	case StatusAccepted:
		return "✅ Accepted"
	case StatusRejected:
		return "❌ Rejected"
	case StatusInProgress:
		return "🔄 In Progress"
	default:
		return string(status)
	}
}

const (
	CategoryRules  Category = "rules"
	CategoryPlayer Category = "player"
	CategoryBug    Category = "bug"
	CategoryInsult Category = "insult"
	CategoryScam   Category = "scam"
	CategoryOther  Category = "other"
)

func (category Category) String() string {
	switch category {
	case CategoryRules:
		return "🚫 Rules Violation"
	case CategoryPlayer:
		return "👤 Player Complaint"
	case CategoryBug:
		return "🐛 Bug/Error"
	case CategoryInsult:
		return "💬 Insult"
	case CategoryScam:
		return "🎭 Scam"
	case CategoryOther:
		return "❓ Other"
	default:
		return string(category)
	}
}

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryRules, CategoryPlayer, CategoryBug,
		CategoryInsult, CategoryScam, CategoryOther,
	}
}
