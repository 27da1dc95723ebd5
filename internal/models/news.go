package models

import "time"

// Author is a row of the authors table.
type Author struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"not null"`
	Bio  string
}

// TableName specifies the table name for the Author model
func (Author) TableName() string {
	return "authors"
}

// Article is a row of the articles table. The log references articles by
// path "/article/<slug>".
type Article struct {
	ID     uint      `gorm:"primarykey"`
	Author uint      `gorm:"not null;index"`
	Title  string    `gorm:"not null"`
	Slug   string    `gorm:"uniqueIndex;not null"`
	Lead   string
	Body   string
	Time   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

// Path returns the request path under which the article is served.
func (a Article) Path() string {
	return "/article/" + a.Slug
}

// LogEntry is one HTTP request recorded in the log table.
type LogEntry struct {
	ID     uint   `gorm:"primarykey"`
	Path   string `gorm:"index"`
	IP     string
	Method string
	Status string    `gorm:"index"`
	Time   time.Time `gorm:"index"`
}

// TableName specifies the table name for the LogEntry model
func (LogEntry) TableName() string {
	return "log"
}

// StatusOK is the status text the reports treat as a successful request.
const StatusOK = "200 OK"

// IsError returns true if the request did not succeed
func (l LogEntry) IsError() bool {
	return l.Status != StatusOK
}
