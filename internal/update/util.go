package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/moss/internal/model"
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// parseOptionalClock returns nil for blank input.
func parseOptionalClock(raw string) (*model.ClockTime, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	ct, err := model.ParseClockTime(raw)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
