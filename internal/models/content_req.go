package models

type HeroSliderReq struct {
	TitleEn    string `json:"title_en" validate:"required,max=150"`
	TitleAr    string `json:"title_ar" validate:"required,max=150"`
	SubtitleEn string `json:"subtitle_en,omitempty" validate:"max=300"`
	SubtitleAr string `json:"subtitle_ar,omitempty" validate:"max=300"`
	ImageURL   string `json:"image_url" validate:"required,url"`
	LinkURL    string `json:"link_url,omitempty" validate:"omitempty,url"`
	SortOrder  int    `json:"sort_order" validate:"gte=0"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

type FAQReq struct {
	QuestionEn string `json:"question_en" validate:"required,max=300"`
	QuestionAr string `json:"question_ar" validate:"required,max=300"`
	AnswerEn   string `json:"answer_en" validate:"required,max=4000"`
	AnswerAr   string `json:"answer_ar" validate:"required,max=4000"`
	SortOrder  int    `json:"sort_order" validate:"gte=0"`
	IsActive   *bool  `json:"is_active,omitempty"`
}
