package models

import "github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
	ToastInfo    ToastKind = "info"
)

type Toast struct {
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Toast   *Toast      `json:"toast,omitempty"`
}

type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Toast     *Toast            `json:"toast,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Column is one localized table header.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PageResponse is a rendered table page.
type PageResponse struct {
	Title   string              `json:"title"`
	Dir     string              `json:"dir"`
	Locale  string              `json:"locale"`
	Columns []Column            `json:"columns"`
	Rows    interface{}         `json:"rows"`
	Meta    *apiclient.PageMeta `json:"meta,omitempty"`
	Actions []string            `json:"actions,omitempty"`
}

type NavItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}
