// Package stats is the daily reply counter behind the admin console's
// usage button.
package stats

import (
	"sync"
	"time"
)

type Daily struct {
	mu    sync.Mutex
	day   string
	count int
	now   func() time.Time
}

func NewDaily() *Daily {
	return &Daily{now: time.Now}
}

func (d *Daily) Inc() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roll()
	d.count++
}

// Today returns the date and the number of replies sent on it so far.
func (d *Daily) Today() (string, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roll()
	return d.day, d.count
}

// roll is called with d.mu held.
func (d *Daily) roll() {
	today := d.now().Format("2006-01-02")
	if d.day != today {
		d.day = today
		d.count = 0
	}
}
