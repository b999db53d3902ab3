package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// Notice keys carried in the notice query parameter. Pages only show the
// fixed text of a known key.
const (
	NoticeLoginRequired = "login-required"
	NoticeRegistered    = "registered"
	NoticeEmptyExport   = "empty-export"
)

var notices = map[string]string{
	NoticeLoginRequired: "You must be logged in to view this page",
	NoticeRegistered:    "Registration successful. Please log in.",
}

// NoticeURL appends a notice key to path.
func NoticeURL(path, key string) string {
	return path + "?" + url.Values{"notice": {key}}.Encode()
}

func noticeText(c echo.Context) string {
	return notices[c.QueryParam("notice")]
}
