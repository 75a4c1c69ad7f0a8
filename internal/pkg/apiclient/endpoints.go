package apiclient

import (
	"fmt"
	"strings"
)

// Endpoints is the path map of the Sooquk backend API, relative to the base URL.
type Endpoints struct {
	Login        string
	Logout       string
	RefreshToken string
	Me           string

	Cities        string
	Districts     string
	Categories    string
	SubCategories string
	Tags          string
	Colors        string
	Sizes         string

	Orders              string
	Coupons             string
	Subscriptions       string
	VendorSubscriptions string
	VendorStatistics    string

	HeroSliders string
	FAQs        string

	Tickets   string
	ErrorLogs string

	Emails        string
	Notifications string
}

var DefaultEndpoints = Endpoints{
	Login:        "/auth/login",
	Logout:       "/auth/logout",
	RefreshToken: "/auth/refresh-token",
	Me:           "/auth/me",

	Cities:        "/cities",
	Districts:     "/districts",
	Categories:    "/categories",
	SubCategories: "/sub-categories",
	Tags:          "/tags",
	Colors:        "/colors",
	Sizes:         "/sizes",

	Orders:              "/orders",
	Coupons:             "/coupons",
	Subscriptions:       "/subscriptions",
	VendorSubscriptions: "/vendor-subscriptions",
	VendorStatistics:    "/vendor-statistics",

	HeroSliders: "/hero-sliders",
	FAQs:        "/faqs",

	Tickets:   "/tickets",
	ErrorLogs: "/error-logs",

	Emails:        "/emails/send",
	Notifications: "/notifications/send",
}

// Item returns the path of a single record under a collection path.
func Item(collection string, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimRight(collection, "/"), id)
}

// Action returns the path of a named action on a single record, e.g. /orders/7/status.
func Action(collection string, id int64, action string) string {
	return Item(collection, id) + "/" + strings.TrimLeft(action, "/")
}
