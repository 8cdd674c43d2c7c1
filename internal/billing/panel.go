package billing

import "billbook/internal/models"

// FilterPanel tracks the open/closed filter form and which record set is
// currently visible. The zero value is a closed panel showing all records.
type FilterPanel struct {
	Open       bool
	NameFilter string
	DateFilter string
	Filtered   bool
}

// Toggle opens a closed panel and closes an open one.
func (p *FilterPanel) Toggle() {
	p.Open = !p.Open
}

// Apply runs the panel's predicates over records, closes the panel and
// returns the set to display. A notice is returned when no filter was set
// or nothing matched; the full set is displayed in both cases.
func (p *FilterPanel) Apply(records []models.Record) ([]models.Record, error) {
	visible, notice := Filter(records, p.NameFilter, p.DateFilter)
	p.Open = false
	p.Filtered = notice == nil
	return visible, notice
}

// Reset clears the predicates, closes the panel and shows every record.
func (p *FilterPanel) Reset(records []models.Record) []models.Record {
	p.NameFilter = ""
	p.DateFilter = ""
	p.Open = false
	p.Filtered = false
	return records
}
