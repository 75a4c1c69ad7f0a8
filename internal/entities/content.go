package entities

import "time"

type HeroSlider struct {
	ID         int64     `json:"id"`
	TitleEn    string    `json:"title_en"`
	TitleAr    string    `json:"title_ar"`
	SubtitleEn string    `json:"subtitle_en,omitempty"`
	SubtitleAr string    `json:"subtitle_ar,omitempty"`
	ImageURL   string    `json:"image_url"`
	LinkURL    string    `json:"link_url,omitempty"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type FAQ struct {
	ID         int64     `json:"id"`
	QuestionEn string    `json:"question_en"`
	QuestionAr string    `json:"question_ar"`
	AnswerEn   string    `json:"answer_en"`
	AnswerAr   string    `json:"answer_ar"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
