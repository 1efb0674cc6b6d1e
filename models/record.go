// ABOUTME: Store record hooks for each entity type
// ABOUTME: Identity, timestamp stamping, and snapshot cloning used by the generic store
package models

import "time"

func (c Contact) Identity() int { return c.ID }
func (c Contact) CreatedTime() time.Time { return c.CreatedAt }
func (c Contact) Stamped(id int, created, updated time.Time) Contact {
	c.ID = id
	c.CreatedAt = created
	c.UpdatedAt = updated
	return c
}

// Clone returns a snapshot copy with its own tags slice, so callers
// cannot mutate stored state through a returned record.
func (c Contact) Clone() Contact {
	if c.Tags != nil {
		tags := make([]string, len(c.Tags))
		copy(tags, c.Tags)
		c.Tags = tags
	}
	return c
}

func (d Deal) Identity() int { return d.ID }
func (d Deal) CreatedTime() time.Time { return d.CreatedAt }
func (d Deal) Stamped(id int, created, updated time.Time) Deal {
	d.ID = id
	d.CreatedAt = created
	d.UpdatedAt = updated
	return d
}

func (d Deal) Clone() Deal {
	if d.ExpectedCloseDate != nil {
		t := *d.ExpectedCloseDate
		d.ExpectedCloseDate = &t
	}
	return d
}

func (t Task) Identity() int { return t.ID }
func (t Task) CreatedTime() time.Time { return t.CreatedAt }
func (t Task) Stamped(id int, created, updated time.Time) Task {
	t.ID = id
	t.CreatedAt = created
	t.UpdatedAt = updated
	return t
}

func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

func (a Activity) Identity() int { return a.ID }
func (a Activity) CreatedTime() time.Time { return a.CreatedAt }
func (a Activity) Stamped(id int, created, updated time.Time) Activity {
	a.ID = id
	a.CreatedAt = created
	a.UpdatedAt = updated
	return a
}

func (a Activity) Clone() Activity { return a }
