package models

type TicketReq struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	Message  string `json:"message" validate:"required,max=5000"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

type TicketReplyReq struct {
	Message string `json:"message" validate:"required,max=5000"`
}

const (
	BroadcastEmail        = "email"
	BroadcastNotification = "notification"
)

type BroadcastReq struct {
	Channel   string `json:"channel" validate:"required,oneof=email notification"`
	Audience  string `json:"audience" validate:"required,oneof=all vendors customers shipping_companies"`
	SubjectEn string `json:"subject_en" validate:"required,max=200"`
	SubjectAr string `json:"subject_ar" validate:"required,max=200"`
	BodyEn    string `json:"body_en" validate:"required,max=10000"`
	BodyAr    string `json:"body_ar" validate:"required,max=10000"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
