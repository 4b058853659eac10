package models

type BlogPost struct {
	BaseModel
	Title    string           `gorm:"not null"`
	Excerpt  string
	Content  string           `gorm:"type:text"`
	Author   string
	Date     string           `gorm:"type:varchar(10);index"`
	ImageURL string
	MinTier  SubscriptionTier `gorm:"column:tier;type:varchar(20);not null;default:'Free'"`
}

func (b *BlogPost) RequiredTier() SubscriptionTier { return b.MinTier }

// Blog posts have no settlement notion; a published post stays gated.
func (b *BlogPost) Settled() bool { return false }
