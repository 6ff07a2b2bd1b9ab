package models

import "time"

type Todo struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Title     string    `gorm:"not null" bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Completed bool      `gorm:"not null;default:false" bson:"completed" json:"completed"`
	CreatedAt time.Time `gorm:"index" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type TodoUpdate struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (u TodoUpdate) Apply(t *Todo) {
	setString(&t.Title, u.Title)
	setString(&t.Content, u.Content)
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
}
