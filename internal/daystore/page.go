package daystore

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPage = errors.New("daystore: invalid page")

// Page selects a day relative to the store's reference date.
type Page string

const (
	PageYesterday Page = "Yesterday"
	PageToday     Page = "Today"
	PageTomorrow  Page = "Tomorrow"
)

// Pages lists every page in calendar order.
var Pages = []Page{PageYesterday, PageToday, PageTomorrow}

func (p Page) IsValid() bool {
	switch p {
	case PageYesterday, PageToday, PageTomorrow:
		return true
	default:
		return false
	}
}

// Offset is the number of days between the reference date and the page.
func (p Page) Offset() int {
	switch p {
	case PageYesterday:
		return -1
	case PageTomorrow:
		return 1
	default:
		return 0
	}
}

func (p Page) String() string {
	return string(p)
}

// Next returns the following page, staying on Tomorrow at the end.
func (p Page) Next() Page {
	switch p {
	case PageYesterday:
		return PageToday
	default:
		return PageTomorrow
	}
}

// Prev returns the preceding page, staying on Yesterday at the start.
func (p Page) Prev() Page {
	switch p {
	case PageTomorrow:
		return PageToday
	default:
		return PageYesterday
	}
}

func ParsePage(raw string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yesterday", "y":
		return PageYesterday, nil
	case "today", "t":
		return PageToday, nil
	case "tomorrow", "tm":
		return PageTomorrow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPage, raw)
	}
}
